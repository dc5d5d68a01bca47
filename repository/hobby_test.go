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

func TestHobbiesListFallback(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cases := []struct {
		hobbies []folio.Hobby
		err     error
	}{
		{nil, folio.ErrTableMissing},
		{nil, errors.New("502 bad gateway")},
		{[]folio.Hobby{}, nil},
	}
	for i, tc := range cases {
		var requested folio.ProfileId
		repo := &Hobbies{Store: mock.HobbyStore{
			ListFn: func(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error) {
				requested = profileId
				return tc.hobbies, tc.err
			},
		}}
		assert.Equal(folio.FallbackHobbies(), repo.List(ctx, 1), "case %d", i)
		assert.Equal(folio.ProfileId(1), requested, "case %d", i)
	}
}

func TestHobbiesAddChess(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	repo := &Hobbies{Store: inmem.NewHobbyStore()}

	hobby, err := repo.Create(ctx, folio.HobbyFields{ProfileId: 1, Name: "Chess"})
	if !assert.NoError(err) {
		return
	}
	assert.NotZero(hobby.Id)
	assert.Equal("Chess", hobby.Name)

	hobbies := repo.List(ctx, 1)
	assert.Contains(hobbies, hobby)
}

func TestHobbiesScopedAndOrdered(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	clock := tickingClock()
	store := inmem.NewHobbyStore()
	store.Now = clock
	repo := &Hobbies{Store: store, Now: clock}

	for _, fields := range []folio.HobbyFields{
		{ProfileId: 1, Name: "Film", Icon: folio.IconFilm},
		{ProfileId: 2, Name: "Bike", Icon: folio.IconBike},
		{ProfileId: 1, Name: "Coffee", Icon: folio.IconCoffee},
	} {
		_, err := repo.Create(ctx, fields)
		if !assert.NoError(err) {
			return
		}
	}

	hobbies := repo.List(ctx, 1)
	if assert.Len(hobbies, 2) {
		// oldest first
		assert.Equal("Film", hobbies[0].Name)
		assert.Equal("Coffee", hobbies[1].Name)
	}
	assert.Len(repo.List(ctx, 0), 3)
}

func TestHobbiesUpdateAndDelete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	clock := tickingClock()
	store := inmem.NewHobbyStore()
	store.Now = clock
	repo := &Hobbies{Store: store, Now: clock}

	keep, err := repo.Create(ctx, folio.HobbyFields{ProfileId: 1, Name: "Music", Icon: folio.IconMusic})
	if !assert.NoError(err) {
		return
	}
	drop, err := repo.Create(ctx, folio.HobbyFields{ProfileId: 1, Name: "Gaming"})
	if !assert.NoError(err) {
		return
	}

	icon := folio.HobbyIcon("joystick")
	updated, err := repo.Update(ctx, drop.Id, folio.HobbyPatch{Name: str("X"), Icon: &icon})
	if !assert.NoError(err) {
		return
	}
	assert.Equal("X", updated.Name)
	assert.False(updated.Icon.Known())
	assert.True(updated.UpdatedAt.After(drop.UpdatedAt))

	if !assert.NoError(repo.Delete(ctx, drop.Id)) {
		return
	}
	hobbies := repo.List(ctx, 1)
	if assert.Len(hobbies, 1) {
		assert.Equal(keep.Id, hobbies[0].Id)
	}

	err = repo.Delete(ctx, drop.Id)
	assert.True(errors.Is(err, folio.ErrNotFound))
}

func TestHobbiesCreateRequiresProfile(t *testing.T) {
	assert := assert.New(t)

	repo := &Hobbies{Store: inmem.NewHobbyStore()}
	_, err := repo.Create(context.Background(), folio.HobbyFields{Name: "Chess"})
	var verr *folio.ValidationError
	if assert.True(errors.As(err, &verr)) {
		assert.Equal("profile_id", verr.Field)
		assert.Equal("profile_id is required", verr.Error())
	}
}
