package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the singular identity record. Resume data is user-authored
// and may be incomplete, so every field besides the id may be blank.
type PersonalInfo struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	Website   string    `json:"website,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins the present name parts with a single space.
func (p *PersonalInfo) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Position    string     `json:"position"`
	CompanyName string     `json:"company_name"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description,omitempty"`
	Duties      []string   `json:"duties"`
}

// JobDuty is one bullet under an experience record. OrderIndex is the
// persisted display position, ascending.
type JobDuty struct {
	Description string `json:"duty_description"`
	OrderIndex  int    `json:"order_index"`
}

// Education periods are stored as year-month text (e.g. "2019-08"), not real
// dates, and are rendered verbatim.
type Education struct {
	ID             uuid.UUID `json:"id"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study"`
	Institution    string    `json:"institution"`
	StartYearMonth string    `json:"start_year_month"`
	EndYearMonth   string    `json:"end_year_month"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	GPA            string    `json:"gpa,omitempty"`
}

type Skill struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"skill_name"`
	Category         string    `json:"category"`
	ProficiencyLevel string    `json:"proficiency_level"`
}

// SkillGroups maps a category name to its skills, already ordered by
// proficiency descending then name ascending.
type SkillGroups map[string][]Skill

// Categories returns the group names in ascending order so iteration is
// deterministic for both exporters.
func (g SkillGroups) Categories() []string {
	cats := make([]string, 0, len(g))
	for c := range g {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

type Project struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"project_name"`
	Description  string     `json:"description"`
	Technologies string     `json:"technologies,omitempty"`
	ProjectURL   string     `json:"project_url,omitempty"`
	GitHubURL    string     `json:"github_url,omitempty"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type Certification struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"certification_name"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           time.Time  `json:"issue_date"`
	ExpirationDate      *time.Time `json:"expiration_date"`
	CredentialID        string     `json:"credential_id,omitempty"`
	CredentialURL       string     `json:"credential_url,omitempty"`
}

// ResumeDocument is the aggregated read-only view assembled per request. It is
// never persisted and never mutated after the aggregator returns it.
type ResumeDocument struct {
	PersonalInfo   *PersonalInfo   `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         SkillGroups     `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Normalize replaces nil collections with empty ones so renderers can treat
// "no rows" and "field missing" identically.
func (d *ResumeDocument) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = SkillGroups{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	for i := range d.Experience {
		if d.Experience[i].Duties == nil {
			d.Experience[i].Duties = []string{}
		}
	}
}

// FileStem derives the download filename stem, e.g. "Jane_Doe". Blank name
// parts are dropped; with no name at all the stem is "Resume".
func (d *ResumeDocument) FileStem() string {
	first, last := "", ""
	if d.PersonalInfo != nil {
		first = strings.TrimSpace(d.PersonalInfo.FirstName)
		last = strings.TrimSpace(d.PersonalInfo.LastName)
	}
	switch {
	case first == "" && last == "":
		return "Resume"
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + "_" + last
}

// FormatDate renders a date as localized "Month YYYY"; a nil date means the
// range is still open and renders as "Present".
func FormatDate(t *time.Time) string {
	if t == nil {
		return "Present"
	}
	return t.Format("January 2006")
}
