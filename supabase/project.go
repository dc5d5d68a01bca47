package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type Project struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	ImageUrl    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p Project) ToDomain() folio.Project {
	return folio.Project{
		Id:          folio.ProjectId(p.Id),
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		ImageUrl:    p.ImageUrl,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProjectStore struct {
	Client *Client
}

var _ folio.ProjectStore = (*ProjectStore)(nil)

func (s *ProjectStore) List(ctx context.Context) ([]folio.Project, error) {
	var rows []Project
	query := url.Values{"select": {"*"}, "order": {"created_at.desc"}}
	if err := s.Client.rest(ctx, fiber.MethodGet, folio.TableProjects, query, nil, &rows); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	return projectsToDomain(rows)
}

func (s *ProjectStore) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	type Insert struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
		ImageUrl    string `json:"image_url,omitempty"`
	}
	var rows []Project
	err := s.Client.rest(ctx, fiber.MethodPost, folio.TableProjects, nil, []Insert{{
		Title:       fields.Title,
		Description: fields.Description,
		Link:        fields.Link,
		ImageUrl:    fields.ImageUrl,
	}}, &rows)
	if err != nil {
		return folio.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return singleProject(rows, errors.New("insert returned no row"))
}

func (s *ProjectStore) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	set := map[string]interface{}{"updated_at": patch.UpdatedAt}
	putText(set, "title", patch.Title)
	putText(set, "description", patch.Description)
	putText(set, "link", patch.Link)
	putText(set, "image_url", patch.ImageUrl)

	var rows []Project
	query := url.Values{"id": {eq(int64(id))}}
	if err := s.Client.rest(ctx, fiber.MethodPatch, folio.TableProjects, query, set, &rows); err != nil {
		return folio.Project{}, fmt.Errorf("update project: %w", err)
	}
	return singleProject(rows, folio.ErrNotFound)
}

func projectsToDomain(rows []Project) ([]folio.Project, error) {
	projects := make([]folio.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.ToDomain()
		if err := folio.ValidateRow(folio.TableProjects, projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func singleProject(rows []Project, errEmpty error) (folio.Project, error) {
	if len(rows) == 0 {
		return folio.Project{}, errEmpty
	}
	projects, err := projectsToDomain(rows[:1])
	if err != nil {
		return folio.Project{}, err
	}
	return projects[0], nil
}

func putText(set map[string]interface{}, column string, value *string) {
	if value != nil {
		set[column] = *value
	}
}
