package mock

import (
	"context"

	"github.com/buzkaaclicker/folio"
)

type ProfileStore struct {
	OneFn func(ctx context.Context) (folio.Profile, error)

	CreateFn func(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error)

	UpdateFn func(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error)
}

func (s ProfileStore) One(ctx context.Context) (folio.Profile, error) {
	return s.OneFn(ctx)
}

func (s ProfileStore) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	return s.CreateFn(ctx, fields)
}

func (s ProfileStore) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	return s.UpdateFn(ctx, id, patch)
}

type ProfileRepository struct {
	GetFn func(ctx context.Context) folio.Profile

	CreateFn func(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error)

	UpdateFn func(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error)
}

func (r ProfileRepository) Get(ctx context.Context) folio.Profile {
	return r.GetFn(ctx)
}

func (r ProfileRepository) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	return r.CreateFn(ctx, fields)
}

func (r ProfileRepository) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	return r.UpdateFn(ctx, id, patch)
}
