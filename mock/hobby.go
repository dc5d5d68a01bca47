package mock

import (
	"context"

	"github.com/buzkaaclicker/folio"
)

type HobbyStore struct {
	ListFn func(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error)

	CreateFn func(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error)

	UpdateFn func(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error)

	DeleteFn func(ctx context.Context, id folio.HobbyId) error
}

func (s HobbyStore) List(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error) {
	return s.ListFn(ctx, profileId)
}

func (s HobbyStore) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	return s.CreateFn(ctx, fields)
}

func (s HobbyStore) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	return s.UpdateFn(ctx, id, patch)
}

func (s HobbyStore) Delete(ctx context.Context, id folio.HobbyId) error {
	return s.DeleteFn(ctx, id)
}

type HobbyRepository struct {
	ListFn func(ctx context.Context, profileId folio.ProfileId) []folio.Hobby

	CreateFn func(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error)

	UpdateFn func(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error)

	DeleteFn func(ctx context.Context, id folio.HobbyId) error
}

func (r HobbyRepository) List(ctx context.Context, profileId folio.ProfileId) []folio.Hobby {
	return r.ListFn(ctx, profileId)
}

func (r HobbyRepository) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	return r.CreateFn(ctx, fields)
}

func (r HobbyRepository) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	return r.UpdateFn(ctx, id, patch)
}

func (r HobbyRepository) Delete(ctx context.Context, id folio.HobbyId) error {
	return r.DeleteFn(ctx, id)
}
