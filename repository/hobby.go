package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/buzkaaclicker/folio"
	"golang.org/x/sync/singleflight"
)

type Hobbies struct {
	Store folio.HobbyStore
	Now   func() time.Time

	reads singleflight.Group
}

var _ folio.HobbyRepository = (*Hobbies)(nil)

func (r *Hobbies) List(ctx context.Context, profileId folio.ProfileId) []folio.Hobby {
	key := folio.TableHobbies + "?profile_id=" + strconv.FormatInt(int64(profileId), 10)
	v, err := coalesce(ctx, &r.reads, key, func(ctx context.Context) (interface{}, error) {
		hobbies, err := r.Store.List(ctx, profileId)
		return hobbies, err
	})
	if err != nil {
		logReadFailure(folio.TableHobbies, err)
		return folio.FallbackHobbies()
	}
	hobbies := v.([]folio.Hobby)
	if len(hobbies) == 0 {
		logEmpty(folio.TableHobbies)
		return folio.FallbackHobbies()
	}
	return append([]folio.Hobby(nil), hobbies...)
}

func (r *Hobbies) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	if err := folio.ValidateFields(fields); err != nil {
		return folio.Hobby{}, err
	}
	hobby, err := r.Store.Create(ctx, fields)
	if err != nil {
		return folio.Hobby{}, fmt.Errorf("create hobby: %w", err)
	}
	return hobby, nil
}

func (r *Hobbies) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	if err := patch.Validate(); err != nil {
		return folio.Hobby{}, err
	}
	patch.UpdatedAt = now(r.Now)
	hobby, err := r.Store.Update(ctx, id, patch)
	if err != nil {
		return folio.Hobby{}, fmt.Errorf("update hobby %d: %w", id, err)
	}
	return hobby, nil
}

func (r *Hobbies) Delete(ctx context.Context, id folio.HobbyId) error {
	if err := r.Store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hobby %d: %w", id, err)
	}
	return nil
}
