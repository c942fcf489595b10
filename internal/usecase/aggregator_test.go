package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-hosting/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	personal          *domain.PersonalInfo
	personalErr       error
	experience        []domain.Experience
	experienceErr     error
	duties            map[uuid.UUID][]domain.JobDuty
	dutiesErr         error
	education         []domain.Education
	educationErr      error
	skills            domain.SkillGroups
	skillsErr         error
	projects          []domain.Project
	projectsErr       error
	certifications    []domain.Certification
	certificationsErr error
}

func (s *stubStore) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	if s.personalErr != nil {
		return nil, s.personalErr
	}
	if s.personal == nil {
		return nil, domain.ErrNotFound
	}
	return s.personal, nil
}

func (s *stubStore) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	return s.experience, s.experienceErr
}

func (s *stubStore) GetExperience(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	for _, e := range s.experience {
		if e.ID == id {
			exp := e
			return &exp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) ListJobDuties(ctx context.Context, experienceID uuid.UUID) ([]domain.JobDuty, error) {
	if s.dutiesErr != nil {
		return nil, s.dutiesErr
	}
	return s.duties[experienceID], nil
}

func (s *stubStore) ListEducation(ctx context.Context) ([]domain.Education, error) {
	return s.education, s.educationErr
}

func (s *stubStore) ListSkills(ctx context.Context) (domain.SkillGroups, error) {
	return s.skills, s.skillsErr
}

func (s *stubStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects, s.projectsErr
}

func (s *stubStore) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	return s.certifications, s.certificationsErr
}

var testExperienceID = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// testStore returns a populated stub: Jane Doe, one current role with three
// duties stored out of order (order_index 2, 0, 1).
func testStore() *stubStore {
	start := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &stubStore{
		personal: &domain.PersonalInfo{
			ID:        uuid.MustParse("4e6f6f70-0000-4000-8000-000000000001"),
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Summary:   "Engineer with a focus on boring, reliable systems.",
		},
		experience: []domain.Experience{{
			ID:          testExperienceID,
			Position:    "Senior Engineer",
			CompanyName: "Acme Corp",
			Location:    "Berlin",
			StartDate:   start,
			EndDate:     nil,
		}},
		duties: map[uuid.UUID][]domain.JobDuty{
			testExperienceID: {
				{Description: "Mentored the team", OrderIndex: 2},
				{Description: "Built the platform", OrderIndex: 0},
				{Description: "Ran incident response", OrderIndex: 1},
			},
		},
		skills: domain.SkillGroups{
			"Backend": {
				{ID: uuid.New(), Name: "Go", Category: "Backend", ProficiencyLevel: "Expert"},
				{ID: uuid.New(), Name: "PostgreSQL", Category: "Backend", ProficiencyLevel: "Advanced"},
			},
		},
	}
}

func TestAggregateAssemblesDocument(t *testing.T) {
	agg := NewAggregator(testStore())

	doc, err := agg.Aggregate(context.Background())
	require.NoError(t, err)

	require.NotNil(t, doc.PersonalInfo)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName())
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, []string{"Built the platform", "Ran incident response", "Mentored the team"},
		doc.Experience[0].Duties, "duties must follow ascending order_index, not storage order")
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Projects)
	assert.NotNil(t, doc.Certifications)
}

func TestAggregateMissingPersonalInfoIsNotAnError(t *testing.T) {
	store := testStore()
	store.personal = nil

	doc, err := NewAggregator(store).Aggregate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc.PersonalInfo)
}

func TestAggregateSectionFailureFailsWhole(t *testing.T) {
	store := testStore()
	store.educationErr = errors.New("connection refused")

	doc, err := NewAggregator(store).Aggregate(context.Background())
	assert.Nil(t, doc, "no partial document on section failure")
	assert.ErrorContains(t, err, "failed to aggregate resume")
}

func TestAggregateDutyFailureFailsWhole(t *testing.T) {
	store := testStore()
	store.dutiesErr = errors.New("connection refused")

	doc, err := NewAggregator(store).Aggregate(context.Background())
	assert.Nil(t, doc)
	assert.Error(t, err)
}

func TestExperienceByID(t *testing.T) {
	agg := NewAggregator(testStore())

	exp, err := agg.ExperienceByID(context.Background(), testExperienceID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", exp.Position)
	assert.Equal(t, []string{"Built the platform", "Ran incident response", "Mentored the team"}, exp.Duties)

	_, err = agg.ExperienceByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDutyDescriptions(t *testing.T) {
	duties := []domain.JobDuty{
		{Description: "c", OrderIndex: 7},
		{Description: "a", OrderIndex: 1},
		{Description: "b", OrderIndex: 3},
	}
	assert.Equal(t, []string{"a", "b", "c"}, DutyDescriptions(duties))
	// input untouched
	assert.Equal(t, "c", duties[0].Description)

	assert.Empty(t, DutyDescriptions(nil))
}
