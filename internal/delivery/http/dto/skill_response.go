package dto

import (
	"talent-pool/internal/domain/skill"
	"talent-pool/internal/repository"
)

type SkillResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CandidateRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SkillDetailResponse struct {
	SkillResponse
	Candidates []CandidateRefResponse `json:"candidates"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
		Category:    string(s.Category),
	}
}

func NewSkillDetailResponse(d repository.SkillDetail) SkillDetailResponse {
	refs := make([]CandidateRefResponse, 0, len(d.Candidates))
	for _, c := range d.Candidates {
		refs = append(refs, CandidateRefResponse{ID: c.ID, Name: c.Name})
	}
	return SkillDetailResponse{SkillResponse: NewSkillResponse(d.Skill), Candidates: refs}
}
