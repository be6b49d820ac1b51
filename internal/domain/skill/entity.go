package skill

import (
	"errors"
	"regexp"
	"strings"
)

var ErrNotFound = errors.New("skill not found")

type Category string

const (
	CategoryProgLang  Category = "PROG_LANG"
	CategoryFramework Category = "FRAMEWORK"
	CategoryDB        Category = "DB"
	CategoryDevOps    Category = "DEVOPS"
	CategoryFrontend  Category = "FRONTEND"
)

var categories = []Category{
	CategoryProgLang,
	CategoryFramework,
	CategoryDB,
	CategoryDevOps,
	CategoryFrontend,
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(raw string) (Category, bool) {
	v := Category(strings.ToUpper(strings.TrimSpace(raw)))
	for _, c := range categories {
		if c == v {
			return c, true
		}
	}
	return "", false
}

type Skill struct {
	ID          int64
	Slug        string
	Name        string
	Description string
	Category    Category
}

// CandidateRef is the inverse side of the association, as seen from a skill.
type CandidateRef struct {
	ID   int64
	Name string
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every run of non [a-z0-9] characters into a
// single hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EnsureSlug fills Slug from Name when it is blank.
func (s *Skill) EnsureSlug() {
	if strings.TrimSpace(s.Slug) == "" && s.Name != "" {
		s.Slug = Slugify(s.Name)
	}
}
