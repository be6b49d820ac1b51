package repository

import (
	"context"
	"errors"
	"fmt"

	"talent-pool/internal/database"
	"talent-pool/internal/domain/candidate"
	"talent-pool/internal/domain/skill"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type CandidateInput struct {
	Name      string
	Phone     string
	Education string
	SkillIDs  []int64
}

type CandidateRepository interface {
	List(ctx context.Context) ([]candidate.Candidate, error)
	ListByCategory(ctx context.Context, category skill.Category) ([]candidate.Candidate, error)
	FindByID(ctx context.Context, id int64) (candidate.Candidate, error)
	Create(ctx context.Context, in CandidateInput) (candidate.Candidate, error)
	Update(ctx context.Context, id int64, in CandidateInput) (candidate.Candidate, error)
	Delete(ctx context.Context, id int64) error
	LinkSkill(ctx context.Context, candidateID, skillID int64) (candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func candidateSelect() sq.SelectBuilder {
	return psql.
		Select("c.id", "c.name", "COALESCE(c.phone, '')", "COALESCE(c.education, '')").
		From("candidates c").
		OrderBy("c.id ASC")
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	return loadCandidates(ctx, r.db, candidateSelect())
}

func (r *PostgresCandidateRepository) ListByCategory(ctx context.Context, category skill.Category) ([]candidate.Candidate, error) {
	q := candidateSelect().Where(sq.Expr(
		`EXISTS (SELECT 1 FROM candidate_skills cs JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.candidate_id = c.id AND s.category = ?)`,
		string(category),
	))
	return loadCandidates(ctx, r.db, q)
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id int64) (candidate.Candidate, error) {
	return findCandidate(ctx, r.db, id)
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, in CandidateInput) (candidate.Candidate, error) {
	var id int64
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO candidates (name, phone, education)
			 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
			 RETURNING id`,
			in.Name, in.Phone, in.Education,
		)
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
		return replaceSkills(ctx, tx, id, in.SkillIDs)
	})
	if err != nil {
		return candidate.Candidate{}, err
	}
	return findCandidate(ctx, r.db, id)
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, id int64, in CandidateInput) (candidate.Candidate, error) {
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		affected, err := tx.Exec(ctx,
			`UPDATE candidates
			 SET name = $1, phone = NULLIF($2, ''), education = NULLIF($3, ''), updated_at = now()
			 WHERE id = $4`,
			in.Name, in.Phone, in.Education, id,
		)
		if err != nil {
			return fmt.Errorf("update candidate: %w", err)
		}
		if affected == 0 {
			return candidate.ErrNotFound
		}
		return replaceSkills(ctx, tx, id, in.SkillIDs)
	})
	if err != nil {
		return candidate.Candidate{}, err
	}
	return findCandidate(ctx, r.db, id)
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id int64) error {
	// candidate_skills rows go with the candidate via ON DELETE CASCADE
	affected, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if affected == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

// LinkSkill associates a skill with a candidate. Linking an already linked
// pair is a no-op that still returns the current view.
func (r *PostgresCandidateRepository) LinkSkill(ctx context.Context, candidateID, skillID int64) (candidate.Candidate, error) {
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if err := lockCandidate(ctx, tx, candidateID); err != nil {
			return err
		}
		if err := lockSkill(ctx, tx, skillID); err != nil {
			return err
		}

		linked, err := associationExists(ctx, tx, candidateID, skillID)
		if err != nil {
			return err
		}
		if linked {
			return nil
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_id) VALUES ($1, $2)
			 ON CONFLICT (candidate_id, skill_id) DO NOTHING`,
			candidateID, skillID,
		)
		if err != nil {
			return fmt.Errorf("insert candidate skill: %w", err)
		}
		return nil
	})
	if err := linkOutcome(err); err != nil {
		return candidate.Candidate{}, err
	}
	return findCandidate(ctx, r.db, candidateID)
}

// linkOutcome maps the insert result. The candidate row is held FOR UPDATE,
// so a foreign-key violation can only come from the skill side.
func linkOutcome(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		// a concurrent request created the same pair
		return nil
	case isForeignKeyViolation(err):
		return skill.ErrNotFound
	default:
		return err
	}
}

// replaceSkills drops every association of the candidate and recreates one
// per distinct id that resolves to an existing skill. Unknown ids are skipped.
func replaceSkills(ctx context.Context, tx database.Tx, candidateID int64, skillIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return fmt.Errorf("clear candidate skills: %w", err)
	}

	ids := DistinctIDs(skillIDs)
	if len(ids) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO candidate_skills (candidate_id, skill_id)
		 SELECT $1, s.id FROM skills s WHERE s.id = ANY($2)
		 ON CONFLICT (candidate_id, skill_id) DO NOTHING`,
		candidateID, ids,
	)
	if err != nil {
		return fmt.Errorf("insert candidate skills: %w", err)
	}
	return nil
}

// DistinctIDs keeps the first occurrence of every positive id.
func DistinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func lockCandidate(ctx context.Context, tx database.Tx, id int64) error {
	var got int64
	row := tx.QueryRow(ctx, `SELECT id FROM candidates WHERE id = $1 FOR UPDATE`, id)
	if err := row.Scan(&got); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrNotFound
		}
		return err
	}
	return nil
}

// lockSkill holds the skill FOR SHARE so it cannot be deleted before the link commits.
func lockSkill(ctx context.Context, tx database.Tx, id int64) error {
	var got int64
	row := tx.QueryRow(ctx, `SELECT id FROM skills WHERE id = $1 FOR SHARE`, id)
	if err := row.Scan(&got); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.ErrNotFound
		}
		return err
	}
	return nil
}

func associationExists(ctx context.Context, q database.Querier, candidateID, skillID int64) (bool, error) {
	var exists bool
	row := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidate_skills WHERE candidate_id = $1 AND skill_id = $2)`,
		candidateID, skillID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func findCandidate(ctx context.Context, q database.Querier, id int64) (candidate.Candidate, error) {
	items, err := loadCandidates(ctx, q, candidateSelect().Where(sq.Eq{"c.id": id}))
	if err != nil {
		return candidate.Candidate{}, err
	}
	if len(items) == 0 {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return items[0], nil
}

func loadCandidates(ctx context.Context, q database.Querier, b sq.SelectBuilder) ([]candidate.Candidate, error) {
	sqlText, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c := candidate.Candidate{Skills: make([]*candidate.SkillRef, 0)}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Education); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := attachSkills(ctx, q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachSkills projects the associations of all given candidates in one query.
func attachSkills(ctx context.Context, q database.Querier, cands []candidate.Candidate) error {
	if len(cands) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(cands))
	idx := make(map[int64]int, len(cands))
	for i, c := range cands {
		ids = append(ids, c.ID)
		idx[c.ID] = i
	}

	sqlText, args, err := psql.
		Select("cs.candidate_id", "s.id", "s.slug", "s.name").
		From("candidate_skills cs").
		Join("skills s ON s.id = cs.skill_id").
		Where(sq.Expr("cs.candidate_id = ANY(?)", ids)).
		OrderBy("cs.candidate_id ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sqlText, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var candidateID int64
		ref := &candidate.SkillRef{}
		if err := rows.Scan(&candidateID, &ref.ID, &ref.Slug, &ref.Name); err != nil {
			return err
		}
		i, ok := idx[candidateID]
		if !ok {
			continue
		}
		cands[i].Skills = append(cands[i].Skills, ref)
	}
	return rows.Err()
}

var _ CandidateRepository = (*PostgresCandidateRepository)(nil)
