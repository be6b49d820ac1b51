package usecase

import (
	"context"
	"sync"

	"talent-pool/internal/domain/candidate"
	"talent-pool/internal/domain/skill"
	"talent-pool/internal/infrastructure/stats"
	"talent-pool/internal/repository"
)

type mockCandidateRepo struct {
	items      []candidate.Candidate
	byCategory map[skill.Category][]candidate.Candidate
	err        error

	lastInput    repository.CandidateInput
	lastCategory skill.Category
	deleted      []int64
}

func (m *mockCandidateRepo) List(context.Context) ([]candidate.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return cloneCandidates(m.items), nil
}

func (m *mockCandidateRepo) ListByCategory(_ context.Context, c skill.Category) ([]candidate.Candidate, error) {
	m.lastCategory = c
	if m.err != nil {
		return nil, m.err
	}
	return cloneCandidates(m.byCategory[c]), nil
}

func (m *mockCandidateRepo) FindByID(_ context.Context, id int64) (candidate.Candidate, error) {
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	for _, c := range cloneCandidates(m.items) {
		if c.ID == id {
			return c, nil
		}
	}
	return candidate.Candidate{}, candidate.ErrNotFound
}

func (m *mockCandidateRepo) Create(_ context.Context, in repository.CandidateInput) (candidate.Candidate, error) {
	m.lastInput = in
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	return candidate.Candidate{ID: 1, Name: in.Name, Phone: in.Phone, Education: in.Education, Skills: []*candidate.SkillRef{}}, nil
}

func (m *mockCandidateRepo) Update(_ context.Context, id int64, in repository.CandidateInput) (candidate.Candidate, error) {
	m.lastInput = in
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	return candidate.Candidate{ID: id, Name: in.Name, Skills: []*candidate.SkillRef{}}, nil
}

func (m *mockCandidateRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCandidateRepo) LinkSkill(_ context.Context, candidateID, skillID int64) (candidate.Candidate, error) {
	if m.err != nil {
		return candidate.Candidate{}, m.err
	}
	return candidate.Candidate{ID: candidateID, Skills: []*candidate.SkillRef{{ID: skillID, Slug: "java", Name: "Java"}}}, nil
}

func cloneCandidates(in []candidate.Candidate) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(in))
	for _, c := range in {
		cp := c
		cp.Skills = make([]*candidate.SkillRef, 0, len(c.Skills))
		for _, s := range c.Skills {
			ref := *s
			cp.Skills = append(cp.Skills, &ref)
		}
		out = append(out, cp)
	}
	return out
}

type countingFetcher struct {
	mu    sync.Mutex
	calls [][]string
	data  map[string]stats.Stat
}

func (f *countingFetcher) FetchStats(_ context.Context, slugs []string) map[string]stats.Stat {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string(nil), slugs...))
	if f.data == nil {
		return map[string]stats.Stat{}
	}
	return f.data
}

func popularity(slug string, score int) stats.Stat {
	return stats.Stat{Slug: slug, PopularityScore: &stats.FlexInt{Value: score, Valid: true}}
}

func ref(id int64, slug string) *candidate.SkillRef {
	return &candidate.SkillRef{ID: id, Slug: slug, Name: slug}
}
