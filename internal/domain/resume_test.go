package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Present", FormatDate(nil))

	d := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "June 2021", FormatDate(&d))

	jan := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "January 2019", FormatDate(&jan))
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		info *PersonalInfo
		want string
	}{
		{"both parts", &PersonalInfo{FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"first only", &PersonalInfo{FirstName: "Jane"}, "Jane"},
		{"last only", &PersonalInfo{LastName: "Doe"}, "Doe"},
		{"blank", &PersonalInfo{}, ""},
		{"padded", &PersonalInfo{FirstName: " Jane ", LastName: " Doe "}, "Jane Doe"},
		{"nil record", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.FullName())
		})
	}
}

func TestFileStem(t *testing.T) {
	doc := &ResumeDocument{PersonalInfo: &PersonalInfo{FirstName: "Jane", LastName: "Doe"}}
	assert.Equal(t, "Jane_Doe", doc.FileStem())

	doc = &ResumeDocument{PersonalInfo: &PersonalInfo{FirstName: "Jane"}}
	assert.Equal(t, "Jane", doc.FileStem())

	doc = &ResumeDocument{}
	assert.Equal(t, "Resume", doc.FileStem())
}

func TestNormalize(t *testing.T) {
	doc := &ResumeDocument{
		Experience: []Experience{{Position: "Engineer"}},
	}
	doc.Normalize()

	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
	assert.Empty(t, doc.Education)
	assert.NotNil(t, doc.Experience[0].Duties, "duty lists must never be nil after normalization")
}

func TestSkillGroupsCategories(t *testing.T) {
	groups := SkillGroups{
		"Other":     {{Name: "Jira"}},
		"Backend":   {{Name: "Go"}},
		"Databases": {{Name: "PostgreSQL"}},
	}
	assert.Equal(t, []string{"Backend", "Databases", "Other"}, groups.Categories())
}
