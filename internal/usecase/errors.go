package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrInternal          = errors.New("internal error")
)
