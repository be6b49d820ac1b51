package seeder

import (
	"context"
	"fmt"

	"talent-pool/internal/database"
	"talent-pool/internal/domain/skill"
)

type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

type sampleCandidate struct {
	Name      string
	Phone     string
	Education string
	Skills    []string
}

func sampleCandidates() []sampleCandidate {
	return []sampleCandidate{
		{Name: "Alice", Phone: "12345678", Education: "MSc Computer Science", Skills: []string{"Java", "Spring Boot"}},
		{Name: "Bob", Phone: "87654321", Education: "BSc Software Engineering", Skills: []string{"React", "Docker", "PostgreSQL"}},
	}
}

func (CandidatesSeeder) Run(ctx context.Context, tx database.Tx) error {
	if err := EnsureTableColumns(ctx, tx, "candidates", "id", "name", "phone", "education"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, tx, "candidate_skills", "candidate_id", "skill_id"); err != nil {
		return err
	}

	for _, it := range sampleCandidates() {
		var id int64
		row := tx.QueryRow(
			ctx,
			`INSERT INTO candidates (name, phone, education) VALUES ($1, $2, $3) RETURNING id`,
			it.Name,
			it.Phone,
			it.Education,
		)
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("insert candidate %s: %w", it.Name, err)
		}

		slugs := make([]string, 0, len(it.Skills))
		for _, name := range it.Skills {
			slugs = append(slugs, skill.Slugify(name))
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO candidate_skills (candidate_id, skill_id)
			 SELECT $1, s.id FROM skills s WHERE s.slug = ANY($2)
			 ON CONFLICT (candidate_id, skill_id) DO NOTHING`,
			id,
			slugs,
		)
		if err != nil {
			return fmt.Errorf("link candidate %s: %w", it.Name, err)
		}
	}
	return nil
}
