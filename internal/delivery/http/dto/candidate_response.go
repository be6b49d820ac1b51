package dto

import (
	"time"

	"talent-pool/internal/domain/candidate"
)

// SkillRefResponse is a skill as seen through a candidate. The stats fields are
// null when the provider had nothing for the slug.
type SkillRefResponse struct {
	ID              int64      `json:"id"`
	Slug            string     `json:"slug"`
	Name            string     `json:"name"`
	CategoryKey     *string    `json:"categoryKey"`
	Description     *string    `json:"description"`
	PopularityScore *int       `json:"popularityScore"`
	AverageSalary   *int       `json:"averageSalary"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

type CandidateResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Phone     string             `json:"phone"`
	Education string             `json:"education"`
	Skills    []SkillRefResponse `json:"skills"`
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	skills := make([]SkillRefResponse, 0, len(c.Skills))
	for _, s := range c.Skills {
		if s == nil {
			continue
		}
		skills = append(skills, SkillRefResponse{
			ID:              s.ID,
			Slug:            s.Slug,
			Name:            s.Name,
			CategoryKey:     s.CategoryKey,
			Description:     s.Description,
			PopularityScore: s.PopularityScore,
			AverageSalary:   s.AverageSalary,
			UpdatedAt:       s.UpdatedAt,
		})
	}
	return CandidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Education: c.Education,
		Skills:    skills,
	}
}

func NewCandidateListResponse(items []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCandidateResponse(c))
	}
	return out
}
