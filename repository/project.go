package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"golang.org/x/sync/singleflight"
)

type Projects struct {
	Store folio.ProjectStore
	// Stamps updated_at. Defaults to time.Now in UTC.
	Now func() time.Time

	reads singleflight.Group
}

var _ folio.ProjectRepository = (*Projects)(nil)

func (r *Projects) List(ctx context.Context) []folio.Project {
	v, err := coalesce(ctx, &r.reads, folio.TableProjects, func(ctx context.Context) (interface{}, error) {
		projects, err := r.Store.List(ctx)
		return projects, err
	})
	if err != nil {
		logReadFailure(folio.TableProjects, err)
		return folio.FallbackProjects()
	}
	projects := v.([]folio.Project)
	if len(projects) == 0 {
		logEmpty(folio.TableProjects)
		return folio.FallbackProjects()
	}
	// shared between coalesced callers
	return append([]folio.Project(nil), projects...)
}

func (r *Projects) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	if err := folio.ValidateFields(fields); err != nil {
		return folio.Project{}, err
	}
	project, err := r.Store.Create(ctx, fields)
	if err != nil {
		return folio.Project{}, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (r *Projects) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	if err := patch.Validate(); err != nil {
		return folio.Project{}, err
	}
	patch.UpdatedAt = now(r.Now)
	project, err := r.Store.Update(ctx, id, patch)
	if err != nil {
		return folio.Project{}, fmt.Errorf("update project %d: %w", id, err)
	}
	return project, nil
}
