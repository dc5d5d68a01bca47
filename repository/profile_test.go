package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/buzkaaclicker/folio"
	"github.com/buzkaaclicker/folio/inmem"
	"github.com/buzkaaclicker/folio/mock"
	"github.com/stretchr/testify/assert"
)

func TestProfilesGetFallback(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	for _, err := range []error{
		folio.ErrTableMissing,
		folio.ErrNotFound,
		errors.New("unexpected end of JSON input"),
	} {
		repo := &Profiles{Store: mock.ProfileStore{
			OneFn: func(ctx context.Context) (folio.Profile, error) {
				return folio.Profile{}, err
			},
		}}
		assert.Equal(folio.FallbackProfile(), repo.Get(ctx), err.Error())
	}
}

func TestProfilesUpdate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	clock := tickingClock()
	store := inmem.NewProfileStore()
	store.Now = clock
	repo := &Profiles{Store: store, Now: clock}

	created, err := repo.Create(ctx, folio.ProfileFields{Name: "Ann", Title: "Editor", Email: "ann@example.com"})
	if !assert.NoError(err) {
		return
	}
	before := repo.Get(ctx)
	assert.Equal(created, before)

	_, err = repo.Update(ctx, before.Id, folio.ProfilePatch{Name: str("X")})
	if !assert.NoError(err) {
		return
	}

	after := repo.Get(ctx)
	assert.Equal("X", after.Name)
	assert.Equal("Editor", after.Title)
	assert.Equal("ann@example.com", after.Email)
	assert.True(after.UpdatedAt.After(before.UpdatedAt))
}

func TestProfilesWriteErrors(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	store := inmem.NewProfileStore()
	repo := &Profiles{Store: store}

	_, err := repo.Create(ctx, folio.ProfileFields{Name: "Ann"})
	var verr *folio.ValidationError
	if assert.True(errors.As(err, &verr)) {
		assert.Equal("title", verr.Field)
	}

	_, err = repo.Create(ctx, folio.ProfileFields{Name: "Ann", Title: "t", Email: "not-an-email"})
	if assert.True(errors.As(err, &verr)) {
		assert.Equal("email", verr.Field)
	}

	_, err = repo.Update(ctx, 7, folio.ProfilePatch{Bio: str("bio")})
	assert.True(errors.Is(err, folio.ErrNotFound))

	store.Missing = true
	_, err = repo.Create(ctx, folio.ProfileFields{Name: "Ann", Title: "t"})
	assert.True(errors.Is(err, folio.ErrTableMissing))
}
