package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"resume-hosting/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ResumeStore is the read-only section access the aggregator needs. The pgx
// repository satisfies it; tests substitute stubs.
type ResumeStore interface {
	GetPersonalInfo(ctx context.Context) (*domain.PersonalInfo, error)
	ListExperience(ctx context.Context) ([]domain.Experience, error)
	GetExperience(ctx context.Context, id uuid.UUID) (*domain.Experience, error)
	ListJobDuties(ctx context.Context, experienceID uuid.UUID) ([]domain.JobDuty, error)
	ListEducation(ctx context.Context) ([]domain.Education, error)
	ListSkills(ctx context.Context) (domain.SkillGroups, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListCertifications(ctx context.Context) ([]domain.Certification, error)
}

// Aggregator assembles one ResumeDocument per request. Sections are fetched
// concurrently since they are independent; any single failure fails the whole
// aggregation and no partial document is returned.
type Aggregator struct {
	store ResumeStore
}

func NewAggregator(store ResumeStore) *Aggregator {
	return &Aggregator{store: store}
}

func (a *Aggregator) Aggregate(ctx context.Context) (*domain.ResumeDocument, error) {
	var doc domain.ResumeDocument

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		info, err := a.store.GetPersonalInfo(gctx)
		if err != nil {
			// A resume without a personal_info row still renders, with
			// blank substitutions downstream.
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		doc.PersonalInfo = info
		return nil
	})

	g.Go(func() error {
		experience, err := a.store.ListExperience(gctx)
		if err != nil {
			return err
		}
		if err := a.attachDuties(gctx, experience); err != nil {
			return err
		}
		doc.Experience = experience
		return nil
	})

	g.Go(func() error {
		education, err := a.store.ListEducation(gctx)
		if err != nil {
			return err
		}
		doc.Education = education
		return nil
	})

	g.Go(func() error {
		skills, err := a.store.ListSkills(gctx)
		if err != nil {
			return err
		}
		doc.Skills = skills
		return nil
	})

	g.Go(func() error {
		projects, err := a.store.ListProjects(gctx)
		if err != nil {
			return err
		}
		doc.Projects = projects
		return nil
	})

	g.Go(func() error {
		certifications, err := a.store.ListCertifications(gctx)
		if err != nil {
			return err
		}
		doc.Certifications = certifications
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate resume: %w", err)
	}

	doc.Normalize()
	return &doc, nil
}

// ExperienceWithDuties returns all experience records with their ordered duty
// lists attached, for the per-section endpoint.
func (a *Aggregator) ExperienceWithDuties(ctx context.Context) ([]domain.Experience, error) {
	experience, err := a.store.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.attachDuties(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// ExperienceByID returns one experience record with its ordered duty list.
func (a *Aggregator) ExperienceByID(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	exp, err := a.store.GetExperience(ctx, id)
	if err != nil {
		return nil, err
	}
	duties, err := a.store.ListJobDuties(ctx, exp.ID)
	if err != nil {
		return nil, err
	}
	exp.Duties = DutyDescriptions(duties)
	return exp, nil
}

// attachDuties fetches the duty list of every experience record concurrently.
// Each slot is written by exactly one goroutine.
func (a *Aggregator) attachDuties(ctx context.Context, experience []domain.Experience) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range experience {
		i := i
		g.Go(func() error {
			duties, err := a.store.ListJobDuties(gctx, experience[i].ID)
			if err != nil {
				return err
			}
			experience[i].Duties = DutyDescriptions(duties)
			return nil
		})
	}
	return g.Wait()
}

// DutyDescriptions projects duty rows to their display strings in ascending
// order_index order, whatever order the store returned them in.
func DutyDescriptions(duties []domain.JobDuty) []string {
	sorted := make([]domain.JobDuty, len(duties))
	copy(sorted, duties)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.Description
	}
	return out
}
