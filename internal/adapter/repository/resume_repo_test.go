package repository

import (
	"testing"

	"resume-hosting/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGroupSkillsNormalizesMissingCategory(t *testing.T) {
	grouped := groupSkills([]domain.Skill{
		{Name: "Go", Category: "Backend", ProficiencyLevel: "Expert"},
		{Name: "Jira", Category: "", ProficiencyLevel: "Intermediate"},
	})

	assert.Len(t, grouped, 2)
	assert.Equal(t, "Jira", grouped["Other"][0].Name)
	assert.Equal(t, "Other", grouped["Other"][0].Category)
}

func TestGroupSkillsPreservesRowOrder(t *testing.T) {
	// rows arrive already ordered by proficiency desc, name asc
	grouped := groupSkills([]domain.Skill{
		{Name: "Go", Category: "Backend", ProficiencyLevel: "Expert"},
		{Name: "Rust", Category: "Backend", ProficiencyLevel: "Advanced"},
		{Name: "Zig", Category: "Backend", ProficiencyLevel: "Beginner"},
	})

	names := make([]string, 0, 3)
	for _, s := range grouped["Backend"] {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Go", "Rust", "Zig"}, names)
}

func TestGroupSkillsEmpty(t *testing.T) {
	assert.Empty(t, groupSkills(nil))
}
