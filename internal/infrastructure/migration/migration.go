package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{Name: "create_personal_info", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS personal_info (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				address TEXT,
				linkedin TEXT,
				github TEXT,
				website TEXT,
				summary TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)},
		{Name: "create_experience", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS experience (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				position TEXT NOT NULL,
				company_name TEXT NOT NULL,
				location TEXT,
				start_date DATE NOT NULL,
				end_date DATE,
				description TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)},
		{Name: "create_job_duties", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS job_duties (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				experience_id UUID NOT NULL REFERENCES experience(id) ON DELETE CASCADE,
				duty_description TEXT NOT NULL,
				order_index INTEGER NOT NULL DEFAULT 0
			)`)},
		{Name: "create_education", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS education (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				degree TEXT NOT NULL,
				field_of_study TEXT NOT NULL,
				institution TEXT NOT NULL,
				start_year_month TEXT,
				end_year_month TEXT,
				location TEXT,
				description TEXT,
				gpa TEXT
			)`)},
		{Name: "create_skills", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS skills (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				skill_name TEXT NOT NULL,
				category TEXT,
				proficiency_level TEXT CHECK (proficiency_level IN ('Beginner', 'Intermediate', 'Advanced', 'Expert'))
			)`)},
		{Name: "create_projects", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS projects (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				project_name TEXT NOT NULL,
				description TEXT,
				technologies TEXT,
				project_url TEXT,
				github_url TEXT,
				start_date DATE,
				end_date DATE
			)`)},
		{Name: "create_certifications", Up: execDDL(`
			CREATE TABLE IF NOT EXISTS certifications (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				certification_name TEXT NOT NULL,
				issuing_organization TEXT NOT NULL,
				issue_date DATE NOT NULL,
				expiration_date DATE,
				credential_id TEXT,
				credential_url TEXT
			)`)},
		{Name: "index_job_duties_order", Up: execDDL(`
			CREATE INDEX IF NOT EXISTS idx_job_duties_experience_order
			ON job_duties (experience_id, order_index)`)},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

func execDDL(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}
