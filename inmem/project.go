package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/buzkaaclicker/folio"
)

type ProjectStore struct {
	// Simulates a table that was never provisioned.
	Missing bool
	Now     func() time.Time

	lastId   int64
	projects []folio.Project
	mutex    sync.RWMutex
}

var _ folio.ProjectStore = (*ProjectStore)(nil)

func NewProjectStore() *ProjectStore {
	return &ProjectStore{Now: time.Now}
}

func (s *ProjectStore) List(ctx context.Context) ([]folio.Project, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.Missing {
		return nil, folio.ErrTableMissing
	}

	projects := make([]folio.Project, len(s.projects))
	copy(projects, s.projects)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *ProjectStore) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Project{}, folio.ErrTableMissing
	}

	s.lastId++
	now := s.Now()
	project := folio.Project{
		Id:          folio.ProjectId(s.lastId),
		Title:       fields.Title,
		Description: fields.Description,
		Link:        fields.Link,
		ImageUrl:    fields.ImageUrl,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects = append(s.projects, project)
	return project, nil
}

func (s *ProjectStore) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.Missing {
		return folio.Project{}, folio.ErrTableMissing
	}

	for i := range s.projects {
		p := &s.projects[i]
		if p.Id != id {
			continue
		}
		setText(&p.Title, patch.Title)
		setText(&p.Description, patch.Description)
		setText(&p.Link, patch.Link)
		setText(&p.ImageUrl, patch.ImageUrl)
		p.UpdatedAt = patch.UpdatedAt
		return *p, nil
	}
	return folio.Project{}, folio.ErrNotFound
}

func setText(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}
