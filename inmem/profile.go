package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/buzkaaclicker/folio"
)

type ProfileStore struct {
	Missing bool
	Now     func() time.Time

	lastId   int64
	profiles []folio.Profile
	mutex    sync.RWMutex
}

var _ folio.ProfileStore = (*ProfileStore)(nil)

func NewProfileStore() *ProfileStore {
	return &ProfileStore{Now: time.Now}
}

func (s *ProfileStore) One(ctx context.Context) (folio.Profile, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.Missing {
		return folio.Profile{}, folio.ErrTableMissing
	}
	if len(s.profiles) == 0 {
		return folio.Profile{}, folio.ErrNotFound
	}
	return s.profiles[0], nil
}

func (s *ProfileStore) Create(ctx context.Context, fields folio.ProfileFields) (folio.Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Profile{}, folio.ErrTableMissing
	}

	s.lastId++
	now := s.Now()
	profile := folio.Profile{
		Id:        folio.ProfileId(s.lastId),
		Name:      fields.Name,
		Title:     fields.Title,
		Bio:       fields.Bio,
		Location:  fields.Location,
		AvatarUrl: fields.AvatarUrl,
		ResumeUrl: fields.ResumeUrl,
		Email:     fields.Email,
		Phone:     fields.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.profiles = append(s.profiles, profile)
	return profile, nil
}

func (s *ProfileStore) Update(ctx context.Context, id folio.ProfileId, patch folio.ProfilePatch) (folio.Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Profile{}, folio.ErrTableMissing
	}

	for i := range s.profiles {
		p := &s.profiles[i]
		if p.Id != id {
			continue
		}
		setText(&p.Name, patch.Name)
		setText(&p.Title, patch.Title)
		setText(&p.Bio, patch.Bio)
		setText(&p.Location, patch.Location)
		setText(&p.AvatarUrl, patch.AvatarUrl)
		setText(&p.ResumeUrl, patch.ResumeUrl)
		setText(&p.Email, patch.Email)
		setText(&p.Phone, patch.Phone)
		p.UpdatedAt = patch.UpdatedAt
		return *p, nil
	}
	return folio.Profile{}, folio.ErrNotFound
}
