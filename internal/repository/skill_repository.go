package repository

import (
	"context"
	"errors"
	"fmt"

	"talent-pool/internal/database"
	"talent-pool/internal/domain/skill"

	"github.com/jackc/pgx/v5"
)

type SkillDetail struct {
	Skill      skill.Skill
	Candidates []skill.CandidateRef
}

type SkillRepository interface {
	List(ctx context.Context) ([]skill.Skill, error)
	FindByID(ctx context.Context, id int64) (SkillDetail, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, slug, name, COALESCE(description, ''), COALESCE(category, '')`

func (r *PostgresSkillRepository) List(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id int64) (SkillDetail, error) {
	s, err := scanSkill(r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SkillDetail{}, skill.ErrNotFound
		}
		return SkillDetail{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name
		 FROM candidate_skills cs
		 JOIN candidates c ON c.id = cs.candidate_id
		 WHERE cs.skill_id = $1
		 ORDER BY c.id ASC`,
		id,
	)
	if err != nil {
		return SkillDetail{}, err
	}
	defer rows.Close()

	refs := make([]skill.CandidateRef, 0)
	for rows.Next() {
		var ref skill.CandidateRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return SkillDetail{}, err
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return SkillDetail{}, err
	}
	return SkillDetail{Skill: s, Candidates: refs}, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	s.EnsureSlug()
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (slug, name, description, category)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		 RETURNING id`,
		s.Slug, s.Name, s.Description, string(s.Category),
	)
	if err := row.Scan(&s.ID); err != nil {
		return skill.Skill{}, fmt.Errorf("insert skill: %w", err)
	}
	return s, nil
}

// Update replaces name, description and category. The slug only changes when
// a non-blank one is supplied.
func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills
		 SET name = $1,
		     description = NULLIF($2, ''),
		     category = NULLIF($3, ''),
		     slug = COALESCE(NULLIF($4, ''), slug)
		 WHERE id = $5
		 RETURNING `+skillColumns,
		s.Name, s.Description, string(s.Category), s.Slug, s.ID,
	)
	updated, err := scanSkill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, fmt.Errorf("update skill: %w", err)
	}
	return updated, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	var category string
	if err := row.Scan(&s.ID, &s.Slug, &s.Name, &s.Description, &category); err != nil {
		return skill.Skill{}, err
	}
	s.Category = skill.Category(category)
	return s, nil
}

var _ SkillRepository = (*PostgresSkillRepository)(nil)
