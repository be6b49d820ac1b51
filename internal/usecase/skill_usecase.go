package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-pool/internal/domain/skill"
	"talent-pool/internal/repository"

	"go.uber.org/zap"
)

type SkillInput struct {
	Slug        string
	Name        string
	Description string
	Category    string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	GetSkill(ctx context.Context, id int64) (repository.SkillDetail, error)
	CreateSkill(ctx context.Context, in SkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, id int64, in SkillInput) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type Skill struct {
	repo   repository.SkillRepository
	logger *zap.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, logger *zap.Logger) *Skill {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Skill{repo: repo, logger: logger}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, u.mapErr("list skills", err)
	}
	return items, nil
}

func (u *Skill) GetSkill(ctx context.Context, id int64) (repository.SkillDetail, error) {
	if id <= 0 {
		return repository.SkillDetail{}, ErrSkillNotFound
	}
	d, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return repository.SkillDetail{}, u.mapErr("get skill", err)
	}
	return d, nil
}

func (u *Skill) CreateSkill(ctx context.Context, in SkillInput) (skill.Skill, error) {
	s, err := skillFromInput(in)
	if err != nil {
		return skill.Skill{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return skill.Skill{}, u.mapErr("create skill", err)
	}
	return created, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id int64, in SkillInput) (skill.Skill, error) {
	if id <= 0 {
		return skill.Skill{}, ErrSkillNotFound
	}
	s, err := skillFromInput(in)
	if err != nil {
		return skill.Skill{}, err
	}
	s.ID = id
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return skill.Skill{}, u.mapErr("update skill", err)
	}
	return updated, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrSkillNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.mapErr("delete skill", err)
	}
	return nil
}

// skillFromInput requires a name and, when given, a known category. A supplied
// slug is normalised the same way a derived one is.
func skillFromInput(in SkillInput) (skill.Skill, error) {
	s := skill.Skill{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	}
	if s.Name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	if raw := strings.TrimSpace(in.Category); raw != "" {
		cat, ok := skill.ParseCategory(raw)
		if !ok {
			return skill.Skill{}, ErrInvalidInput
		}
		s.Category = cat
	}
	if raw := strings.TrimSpace(in.Slug); raw != "" {
		s.Slug = skill.Slugify(raw)
		if s.Slug == "" {
			return skill.Skill{}, ErrInvalidInput
		}
	}
	return s, nil
}

func (u *Skill) mapErr(op string, err error) error {
	if errors.Is(err, skill.ErrNotFound) {
		return ErrSkillNotFound
	}
	u.logger.Error(op+" failed", zap.Error(err))
	return ErrInternal
}
