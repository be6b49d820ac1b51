package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-pool/internal/domain/candidate"
	"talent-pool/internal/domain/skill"
	"talent-pool/internal/infrastructure/stats"
	"talent-pool/internal/repository"

	"go.uber.org/zap"
)

type CandidateInput struct {
	Name      string
	Phone     string
	Education string
	SkillIDs  []int64
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
	FilterByCategory(ctx context.Context, category string) ([]candidate.Candidate, error)
	GetCandidate(ctx context.Context, id int64) (candidate.Candidate, error)
	CreateCandidate(ctx context.Context, in CandidateInput) (candidate.Candidate, error)
	UpdateCandidate(ctx context.Context, id int64, in CandidateInput) (candidate.Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error
	LinkSkill(ctx context.Context, candidateID, skillID int64) (candidate.Candidate, error)
}

type Candidate struct {
	repo   repository.CandidateRepository
	stats  stats.Fetcher
	logger *zap.Logger
}

func NewCandidateUsecase(repo repository.CandidateRepository, fetcher stats.Fetcher, logger *zap.Logger) *Candidate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Candidate{repo: repo, stats: fetcher, logger: logger}
}

func (u *Candidate) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, u.internal("list candidates", err)
	}
	u.enrich(ctx, items)
	return items, nil
}

// FilterByCategory returns every candidate for a blank category and an empty
// list for a category outside the enumeration.
func (u *Candidate) FilterByCategory(ctx context.Context, category string) ([]candidate.Candidate, error) {
	if strings.TrimSpace(category) == "" {
		return u.ListCandidates(ctx)
	}
	cat, ok := skill.ParseCategory(category)
	if !ok {
		return []candidate.Candidate{}, nil
	}

	items, err := u.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, u.internal("filter candidates", err)
	}
	u.enrich(ctx, items)
	return items, nil
}

func (u *Candidate) GetCandidate(ctx context.Context, id int64) (candidate.Candidate, error) {
	if id <= 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return candidate.Candidate{}, u.mapErr("get candidate", err)
	}
	items := []candidate.Candidate{c}
	u.enrich(ctx, items)
	return items[0], nil
}

func (u *Candidate) CreateCandidate(ctx context.Context, in CandidateInput) (candidate.Candidate, error) {
	repoIn, err := normalizeCandidateInput(in)
	if err != nil {
		return candidate.Candidate{}, err
	}
	c, err := u.repo.Create(ctx, repoIn)
	if err != nil {
		return candidate.Candidate{}, u.mapErr("create candidate", err)
	}
	return c, nil
}

// UpdateCandidate replaces the scalar fields and the whole skill set. A nil
// skill list clears every association.
func (u *Candidate) UpdateCandidate(ctx context.Context, id int64, in CandidateInput) (candidate.Candidate, error) {
	if id <= 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	repoIn, err := normalizeCandidateInput(in)
	if err != nil {
		return candidate.Candidate{}, err
	}
	c, err := u.repo.Update(ctx, id, repoIn)
	if err != nil {
		return candidate.Candidate{}, u.mapErr("update candidate", err)
	}
	return c, nil
}

func (u *Candidate) DeleteCandidate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrCandidateNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.mapErr("delete candidate", err)
	}
	return nil
}

func (u *Candidate) LinkSkill(ctx context.Context, candidateID, skillID int64) (candidate.Candidate, error) {
	if candidateID <= 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	if skillID <= 0 {
		return candidate.Candidate{}, ErrSkillNotFound
	}
	c, err := u.repo.LinkSkill(ctx, candidateID, skillID)
	if err != nil {
		return candidate.Candidate{}, u.mapErr("link skill", err)
	}
	return c, nil
}

// enrich issues a single stats lookup for the slug union of items and merges
// the result into their skill references in place.
func (u *Candidate) enrich(ctx context.Context, items []candidate.Candidate) {
	enrichCandidates(ctx, u.stats, items)
}

func enrichCandidates(ctx context.Context, fetcher stats.Fetcher, items []candidate.Candidate) {
	if fetcher == nil || len(items) == 0 {
		return
	}
	slugs := candidate.Slugs(items)
	if len(slugs) == 0 {
		return
	}
	stats.Enrich(candidate.AllSkillRefs(items), fetcher.FetchStats(ctx, slugs))
}

func normalizeCandidateInput(in CandidateInput) (repository.CandidateInput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.CandidateInput{}, ErrInvalidInput
	}
	return repository.CandidateInput{
		Name:      name,
		Phone:     strings.TrimSpace(in.Phone),
		Education: strings.TrimSpace(in.Education),
		SkillIDs:  repository.DistinctIDs(in.SkillIDs),
	}, nil
}

func (u *Candidate) mapErr(op string, err error) error {
	switch {
	case errors.Is(err, candidate.ErrNotFound):
		return ErrCandidateNotFound
	case errors.Is(err, skill.ErrNotFound):
		return ErrSkillNotFound
	default:
		return u.internal(op, err)
	}
}

func (u *Candidate) internal(op string, err error) error {
	u.logger.Error(op+" failed", zap.Error(err))
	return ErrInternal
}
