package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"golang.org/x/sync/singleflight"
)

type Profiles struct {
	Store folio.ProfileStore
	Now   func() time.Time

	reads singleflight.Group
}

var _ folio.ProfileRepository = (*Profiles)(nil)

func (r *Profiles) Get(ctx context.Context) folio.Profile {
	v, err := coalesce(ctx, &r.reads, folio.TableProfiles, func(ctx context.Context) (interface{}, error) {
		profile, err := r.Store.One(ctx)
		return profile, err
	})
	switch {
	case errors.Is(err, folio.ErrNotFound):
		logEmpty(folio.TableProfiles)
		return folio.FallbackProfile()
	case err != nil:
		logReadFailure(folio.TableProfiles, err)
		return folio.FallbackProfile()
	}
	return v.(folio.Profile)
}

func (r *Profiles) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	if err := folio.ValidateFields(fields); err != nil {
		return folio.Profile{}, err
	}
	profile, err := r.Store.Create(ctx, fields)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (r *Profiles) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	if err := patch.Validate(); err != nil {
		return folio.Profile{}, err
	}
	patch.UpdatedAt = now(r.Now)
	profile, err := r.Store.Update(ctx, id, patch)
	if err != nil {
		return folio.Profile{}, fmt.Errorf("update profile %d: %w", id, err)
	}
	return profile, nil
}
