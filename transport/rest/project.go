package rest

import (
	"fmt"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type projectJson struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImageUrl    string `json:"imageUrl,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
	UpdatedAt   int64  `json:"updatedAt,omitempty"`
}

func toProjectJson(p folio.Project) projectJson {
	return projectJson{
		Id:          int64(p.Id),
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		ImageUrl:    p.ImageUrl,
		CreatedAt:   unix(p.CreatedAt),
		UpdatedAt:   unix(p.UpdatedAt),
	}
}

func toProjectsJson(projects []folio.Project) []projectJson {
	mapped := make([]projectJson, len(projects))
	for i, p := range projects {
		mapped[i] = toProjectJson(p)
	}
	return mapped
}

type ProjectController struct {
	Repository folio.ProjectRepository
}

func (c *ProjectController) InstallTo(app *fiber.App) {
	app.Get("/projects", c.serveList)
	app.Post("/projects", c.serveCreate)
	app.Patch("/projects/:id", c.serveUpdate)
}

func (c *ProjectController) serveList(ctx *fiber.Ctx) error {
	return ctx.JSON(toProjectsJson(c.Repository.List(ctx.Context())))
}

func (c *ProjectController) serveCreate(ctx *fiber.Ctx) error {
	body := struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
		ImageUrl    string `json:"imageUrl"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	project, err := c.Repository.Create(ctx.Context(), folio.ProjectFields{
		Title:       body.Title,
		Description: body.Description,
		Link:        body.Link,
		ImageUrl:    body.ImageUrl,
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(toProjectJson(project))
}

func (c *ProjectController) serveUpdate(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	body := struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Link        *string `json:"link"`
		ImageUrl    *string `json:"imageUrl"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	project, err := c.Repository.Update(ctx.Context(), folio.ProjectId(id), folio.ProjectPatch{
		Title:       body.Title,
		Description: body.Description,
		Link:        body.Link,
		ImageUrl:    body.ImageUrl,
	})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return ctx.JSON(toProjectJson(project))
}
