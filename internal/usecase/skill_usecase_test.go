package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-pool/internal/domain/skill"
	"talent-pool/internal/repository"
)

type mockSkillRepo struct {
	created skill.Skill
	updated skill.Skill
	detail  repository.SkillDetail
	err     error
}

func (m *mockSkillRepo) List(context.Context) ([]skill.Skill, error) {
	return []skill.Skill{{ID: 1, Slug: "java", Name: "Java"}}, m.err
}

func (m *mockSkillRepo) FindByID(context.Context, int64) (repository.SkillDetail, error) {
	return m.detail, m.err
}

func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	m.created = s
	s.ID = 10
	s.EnsureSlug()
	return s, m.err
}

func (m *mockSkillRepo) Update(_ context.Context, s skill.Skill) (skill.Skill, error) {
	m.updated = s
	return s, m.err
}

func (m *mockSkillRepo) Delete(context.Context, int64) error { return m.err }

func TestSkillUsecase_CreateValidates(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, nil)

	if _, err := uc.CreateSkill(context.Background(), SkillInput{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := uc.CreateSkill(context.Background(), SkillInput{Name: "Go", Category: "LANG"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown category, got %v", err)
	}
	if _, err := uc.CreateSkill(context.Background(), SkillInput{Name: "Go", Slug: "!!!"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unusable slug, got %v", err)
	}
}

func TestSkillUsecase_CreateDerivesSlug(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo, nil)

	s, err := uc.CreateSkill(context.Background(), SkillInput{Name: "C++ Ninja!!", Category: "prog_lang"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Slug != "c-ninja" {
		t.Fatalf("expected slug c-ninja, got %q", s.Slug)
	}
	if repo.created.Category != skill.CategoryProgLang {
		t.Fatalf("expected PROG_LANG, got %q", repo.created.Category)
	}
}

func TestSkillUsecase_UpdateNormalisesSlug(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo, nil)

	if _, err := uc.UpdateSkill(context.Background(), 5, SkillInput{Name: "Go", Slug: "Go Lang"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updated.ID != 5 || repo.updated.Slug != "go-lang" {
		t.Fatalf("expected id 5 slug go-lang, got %+v", repo.updated)
	}
}

func TestSkillUsecase_NotFound(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: skill.ErrNotFound}, nil)

	if _, err := uc.GetSkill(context.Background(), 3); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
	if err := uc.DeleteSkill(context.Background(), 3); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
	if _, err := uc.UpdateSkill(context.Background(), 3, SkillInput{Name: "Go"}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillUsecase_ListInternalError(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: errors.New("db down")}, nil)
	if _, err := uc.ListSkills(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
