package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/buzkaaclicker/folio"
)

type HobbyStore struct {
	Missing bool
	Now     func() time.Time

	lastId  int64
	hobbies []folio.Hobby
	mutex   sync.RWMutex
}

var _ folio.HobbyStore = (*HobbyStore)(nil)

func NewHobbyStore() *HobbyStore {
	return &HobbyStore{Now: time.Now}
}

func (s *HobbyStore) List(ctx context.Context, profileId folio.ProfileId) ([]folio.Hobby, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.Missing {
		return nil, folio.ErrTableMissing
	}

	hobbies := make([]folio.Hobby, 0, len(s.hobbies))
	for _, h := range s.hobbies {
		if profileId == 0 || h.ProfileId == profileId {
			hobbies = append(hobbies, h)
		}
	}
	sort.SliceStable(hobbies, func(i, j int) bool {
		return hobbies[i].CreatedAt.Before(hobbies[j].CreatedAt)
	})
	return hobbies, nil
}

func (s *HobbyStore) Create(ctx context.Context, fields folio.HobbyFields) (folio.Hobby, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Hobby{}, folio.ErrTableMissing
	}

	s.lastId++
	now := s.Now()
	hobby := folio.Hobby{
		Id:          folio.HobbyId(s.lastId),
		ProfileId:   fields.ProfileId,
		Name:        fields.Name,
		Icon:        fields.Icon,
		Description: fields.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.hobbies = append(s.hobbies, hobby)
	return hobby, nil
}

func (s *HobbyStore) Update(ctx context.Context, id folio.HobbyId, patch folio.HobbyPatch) (folio.Hobby, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Hobby{}, folio.ErrTableMissing
	}

	for i := range s.hobbies {
		h := &s.hobbies[i]
		if h.Id != id {
			continue
		}
		setText(&h.Name, patch.Name)
		if patch.Icon != nil {
			h.Icon = *patch.Icon
		}
		setText(&h.Description, patch.Description)
		h.UpdatedAt = patch.UpdatedAt
		return *h, nil
	}
	return folio.Hobby{}, folio.ErrNotFound
}

func (s *HobbyStore) Delete(ctx context.Context, id folio.HobbyId) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.ErrTableMissing
	}

	for i, h := range s.hobbies {
		if h.Id == id {
			s.hobbies = append(s.hobbies[:i], s.hobbies[i+1:]...)
			return nil
		}
	}
	return folio.ErrNotFound
}
