package persistent

import (
	"context"
	"fmt"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	Id          int64     `bun:",pk,autoincrement"`
	Title       string    `bun:",notnull"`
	Description string    `bun:",notnull"`
	Link        string    `bun:",notnull"`
	ImageUrl    string    `bun:",nullzero"`
	CreatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (p *Project) ToDomain() folio.Project {
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
	DB *bun.DB
}

var _ folio.ProjectStore = (*ProjectStore)(nil)

func (s *ProjectStore) List(ctx context.Context) ([]folio.Project, error) {
	var rows []Project
	err := s.DB.NewSelect().
		Model(&rows).
		Order("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", mapError(err))
	}

	projects := make([]folio.Project, len(rows))
	for i := range rows {
		projects[i] = rows[i].ToDomain()
		if err := folio.ValidateRow(folio.TableProjects, projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *ProjectStore) Create(ctx context.Context, fields folio.ProjectFields) (folio.Project, error) {
	row := &Project{
		Title:       fields.Title,
		Description: fields.Description,
		Link:        fields.Link,
		ImageUrl:    fields.ImageUrl,
	}
	_, err := s.DB.NewInsert().
		Model(row).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return folio.Project{}, fmt.Errorf("insert project: %w", mapError(err))
	}
	return row.ToDomain(), nil
}

func (s *ProjectStore) Update(ctx context.Context, id folio.ProjectId, patch folio.ProjectPatch) (folio.Project, error) {
	row := new(Project)
	q := s.DB.NewUpdate().
		Model(row).
		Set("updated_at = ?", patch.UpdatedAt).
		Where("p.id = ?", id)
	q = setText(q, "title", patch.Title)
	q = setText(q, "description", patch.Description)
	q = setText(q, "link", patch.Link)
	q = setText(q, "image_url", patch.ImageUrl)

	res, err := q.Returning("*").Exec(ctx)
	if err != nil {
		return folio.Project{}, fmt.Errorf("update project: %w", mapRowError(err))
	}
	if err := requireAffected(res); err != nil {
		return folio.Project{}, fmt.Errorf("update project %d: %w", id, err)
	}
	return row.ToDomain(), nil
}

func setText(q *bun.UpdateQuery, column string, value *string) *bun.UpdateQuery {
	if value == nil {
		return q
	}
	return q.Set("? = ?", bun.Ident(column), *value)
}
