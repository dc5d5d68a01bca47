package mock

import (
	"context"

	"github.com/buzkaaclicker/folio"
)

type ProjectStore struct {
	ListFn func(ctx context.Context) ([]folio.Project, error)

	CreateFn func(ctx context.Context, fields folio.ProjectFields) (folio.Project, error)

	UpdateFn func(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error)
}

func (s ProjectStore) List(ctx context.Context) ([]folio.Project, error) {
	return s.ListFn(ctx)
}

func (s ProjectStore) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	return s.CreateFn(ctx, fields)
}

func (s ProjectStore) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	return s.UpdateFn(ctx, id, patch)
}

type ProjectRepository struct {
	ListFn func(ctx context.Context) []folio.Project

	CreateFn func(ctx context.Context, fields folio.ProjectFields) (folio.Project, error)

	UpdateFn func(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error)
}

func (r ProjectRepository) List(ctx context.Context) []folio.Project {
	return r.ListFn(ctx)
}

func (r ProjectRepository) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	return r.CreateFn(ctx, fields)
}

func (r ProjectRepository) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	return r.UpdateFn(ctx, id, patch)
}
