package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"C++ Ninja!!":    "c-ninja",
		"Spring Boot":    "spring-boot",
		"  PostgreSQL  ": "postgresql",
		"--Node.js--":    "node-js",
		"C#  /  .NET 8":  "c-net-8",
		"!!!":            "",
		"already-a-slug": "already-a-slug",
		"Ünïcode Skill":  "n-code-skill",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestEnsureSlug(t *testing.T) {
	s := Skill{Name: "C++ Ninja!!"}
	s.EnsureSlug()
	assert.Equal(t, "c-ninja", s.Slug)

	explicit := Skill{Name: "Go", Slug: "golang"}
	explicit.EnsureSlug()
	assert.Equal(t, "golang", explicit.Slug)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" prog_lang ")
	assert.True(t, ok)
	assert.Equal(t, CategoryProgLang, c)

	c, ok = ParseCategory("DevOps")
	assert.True(t, ok)
	assert.Equal(t, CategoryDevOps, c)

	_, ok = ParseCategory("NOT_A_REAL_CATEGORY")
	assert.False(t, ok)

	_, ok = ParseCategory("")
	assert.False(t, ok)
}
