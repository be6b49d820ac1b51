package candidate

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("candidate not found")

type Candidate struct {
	ID        int64
	Name      string
	Phone     string
	Education string
	Skills    []*SkillRef
}

// SkillRef is a skill as projected through a candidate's associations. The
// optional fields are only ever set by stats enrichment and are never persisted.
type SkillRef struct {
	ID   int64
	Slug string
	Name string

	CategoryKey     *string
	Description     *string
	PopularityScore *int
	AverageSalary   *int
	UpdatedAt       *time.Time
}

// Slugs returns the lower-case slug union across all candidates, in first-seen order.
func Slugs(cands []Candidate) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range cands {
		for _, s := range c.Skills {
			if s == nil {
				continue
			}
			key := normalizeSlug(s.Slug)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	return out
}

// AllSkillRefs flattens every candidate's references into one slice sharing
// the same pointers, so enrichment applies in place.
func AllSkillRefs(cands []Candidate) []*SkillRef {
	out := make([]*SkillRef, 0)
	for _, c := range cands {
		out = append(out, c.Skills...)
	}
	return out
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
