package seeder

import (
	"context"

	"talent-pool/internal/database"
	"talent-pool/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func SampleSkills() []skill.Skill {
	return []skill.Skill{
		{Name: "Java", Category: skill.CategoryProgLang, Description: "General-purpose programming languages"},
		{Name: "Spring Boot", Category: skill.CategoryFramework, Description: "Application frameworks and libraries"},
		{Name: "PostgreSQL", Category: skill.CategoryDB, Description: "Databases and data storage technologies"},
		{Name: "Docker", Category: skill.CategoryDevOps, Description: "Tools and practices for deployment"},
		{Name: "React", Category: skill.CategoryFrontend, Description: "Application frameworks and libraries"},
	}
}

func (SkillsSeeder) Run(ctx context.Context, tx database.Tx) error {
	if err := EnsureTableColumns(ctx, tx, "skills", "id", "slug", "name", "description", "category"); err != nil {
		return err
	}

	for _, it := range SampleSkills() {
		it.EnsureSlug()
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (slug, name, description, category) VALUES ($1, $2, $3, $4)`,
			it.Slug,
			it.Name,
			it.Description,
			string(it.Category),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
