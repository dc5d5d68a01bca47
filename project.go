package folio

import (
	"context"
	"time"
)

const TableProjects = "projects"

type ProjectId int64

// Project is a single entry of the project gallery.
type Project struct {
	Id          ProjectId `validate:"gt=0"`
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	Link        string    `validate:"required"`
	ImageUrl    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fields supplied on project creation. Id and timestamps are assigned by the store.
type ProjectFields struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Link        string `validate:"required,url"`
	ImageUrl    string `validate:"omitempty,url"`
}

// Partial project update. Nil fields are left untouched.
type ProjectPatch struct {
	Title       *string
	Description *string
	Link        *string
	ImageUrl    *string
	// Stamped by the repository, never by the caller.
	UpdatedAt time.Time
}

func (p ProjectPatch) Validate() error {
	if err := RequireText("title", p.Title); err != nil {
		return err
	}
	if err := RequireText("description", p.Description); err != nil {
		return err
	}
	if err := RequireText("link", p.Link); err != nil {
		return err
	}
	if p.Link != nil {
		return ValidateFields(struct {
			Link string `validate:"url"`
		}{*p.Link})
	}
	return nil
}

// ProjectStore talks to the remote projects table. Every method may fail.
type ProjectStore interface {
	// Newest first.
	List(ctx context.Context) ([]Project, error)

	Create(ctx context.Context, fields ProjectFields) (Project, error)

	Update(ctx context.Context, id ProjectId, patch ProjectPatch) (Project, error)
}

// ProjectRepository never fails on reads, it serves FallbackProjects instead.
type ProjectRepository interface {
	List(ctx context.Context) []Project

	Create(ctx context.Context, fields ProjectFields) (Project, error)

	Update(ctx context.Context, id ProjectId, patch ProjectPatch) (Project, error)
}
