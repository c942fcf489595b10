package repository

import (
	"context"
	"errors"
	"fmt"

	"resume-hosting/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResumeRepo issues the read-only section queries against the backing store.
type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// GetPersonalInfo returns the most recently created personal_info row.
// Zero rows is ErrNotFound, not an empty record.
func (r *ResumeRepo) GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error) {
	var p domain.PersonalInfo
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name,
		       COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''),
		       COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(website, ''),
		       COALESCE(summary, ''), created_at
		FROM personal_info
		ORDER BY created_at DESC
		LIMIT 1`).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address,
			&p.LinkedIn, &p.GitHub, &p.Website, &p.Summary, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query personal info: %w", err)
	}
	return &p, nil
}

// ListExperience returns experience rows newest first, without duties; the
// aggregator attaches those per record.
func (r *ResumeRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, position, company_name, COALESCE(location, ''),
		       start_date, end_date, COALESCE(description, '')
		FROM experience
		ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query experience: %w", err)
	}
	defer rows.Close()

	var out []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.Position, &e.CompanyName, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read experience rows: %w", err)
	}
	return out, nil
}

// GetExperience returns one experience row by id, without duties.
func (r *ResumeRepo) GetExperience(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	var e domain.Experience
	err := r.pool.QueryRow(ctx, `
		SELECT id, position, company_name, COALESCE(location, ''),
		       start_date, end_date, COALESCE(description, '')
		FROM experience
		WHERE id = $1`, id).
		Scan(&e.ID, &e.Position, &e.CompanyName, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query experience %s: %w", id, err)
	}
	return &e, nil
}

// ListJobDuties returns the duty rows of one experience record in persisted
// display order.
func (r *ResumeRepo) ListJobDuties(ctx context.Context, experienceID uuid.UUID) ([]domain.JobDuty, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT duty_description, order_index
		FROM job_duties
		WHERE experience_id = $1
		ORDER BY order_index ASC`, experienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query job duties for %s: %w", experienceID, err)
	}
	defer rows.Close()

	var out []domain.JobDuty
	for rows.Next() {
		var d domain.JobDuty
		if err := rows.Scan(&d.Description, &d.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan job duty row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job duty rows: %w", err)
	}
	return out, nil
}

func (r *ResumeRepo) ListEducation(ctx context.Context) ([]domain.Education, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, degree, field_of_study, institution,
		       COALESCE(start_year_month, ''), COALESCE(end_year_month, ''),
		       COALESCE(location, ''), COALESCE(description, ''), COALESCE(gpa, '')
		FROM education
		ORDER BY end_year_month DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query education: %w", err)
	}
	defer rows.Close()

	var out []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.FieldOfStudy, &e.Institution,
			&e.StartYearMonth, &e.EndYearMonth, &e.Location, &e.Description, &e.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read education rows: %w", err)
	}
	return out, nil
}

// ListSkills returns all skill rows grouped by category. A missing category is
// normalized to "Other"; within a category rows are ordered by proficiency
// level descending then name ascending.
func (r *ResumeRepo) ListSkills(ctx context.Context) (domain.SkillGroups, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, skill_name,
		       COALESCE(NULLIF(category, ''), 'Other') AS category,
		       COALESCE(proficiency_level, 'Intermediate')
		FROM skills
		ORDER BY category ASC,
		         CASE proficiency_level
		             WHEN 'Expert' THEN 4
		             WHEN 'Advanced' THEN 3
		             WHEN 'Intermediate' THEN 2
		             WHEN 'Beginner' THEN 1
		             ELSE 0
		         END DESC,
		         skill_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var all []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.ProficiencyLevel); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		all = append(all, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill rows: %w", err)
	}
	return groupSkills(all), nil
}

// groupSkills buckets ordered skill rows by category, preserving row order
// within each bucket.
func groupSkills(skills []domain.Skill) domain.SkillGroups {
	grouped := domain.SkillGroups{}
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		s.Category = category
		grouped[category] = append(grouped[category], s)
	}
	return grouped
}

func (r *ResumeRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_name, COALESCE(description, ''), COALESCE(technologies, ''),
		       COALESCE(project_url, ''), COALESCE(github_url, ''),
		       start_date, end_date
		FROM projects
		ORDER BY end_date DESC NULLS FIRST, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Technologies,
			&p.ProjectURL, &p.GitHubURL, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project rows: %w", err)
	}
	return out, nil
}

func (r *ResumeRepo) ListCertifications(ctx context.Context) ([]domain.Certification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, certification_name, issuing_organization, issue_date,
		       expiration_date, COALESCE(credential_id, ''), COALESCE(credential_url, '')
		FROM certifications
		ORDER BY issue_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query certifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Certification
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.IssuingOrganization, &c.IssueDate,
			&c.ExpirationDate, &c.CredentialID, &c.CredentialURL); err != nil {
			return nil, fmt.Errorf("failed to scan certification row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read certification rows: %w", err)
	}
	return out, nil
}
