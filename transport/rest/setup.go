package rest

import (
	"context"
	"errors"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type setupResponse struct {
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	SqlScript string `json:"sqlScript,omitempty"`
}

// SetupController provisions remote tables. Meant for the operator, wired
// with the privileged store credentials.
type SetupController struct {
	Prober   folio.TableProber
	Projects folio.ProjectStore
	// Optional. Set when the backend can run DDL itself.
	CreateSchema func(ctx context.Context) error
}

func (c *SetupController) InstallTo(app *fiber.App) {
	app.Get("/setup/projects-table", c.serveProjectsTable)
	app.Get("/setup/hobbies-table", c.serveHobbiesTable)
}

func (c *SetupController) serveProjectsTable(ctx *fiber.Ctx) error {
	err := c.Prober.Probe(ctx.Context(), folio.TableProjects)
	switch {
	case err == nil:
		return ctx.JSON(setupResponse{Message: "Projects table already exists"})
	case errors.Is(err, folio.ErrNotConfigured):
		return notConfigured(ctx)
	}
	requestLog(ctx).WithError(err).Infoln("Projects table probe failed, provisioning.")

	if c.CreateSchema != nil {
		if err := c.CreateSchema(ctx.Context()); err != nil {
			return err
		}
	}
	for _, fields := range folio.SampleProjects() {
		if _, err := c.Projects.Create(ctx.Context(), fields); err != nil {
			requestLog(ctx).WithError(err).Errorln("Could not insert sample project.")
			return ctx.JSON(setupResponse{Message: "Projects table created but failed to insert sample data"})
		}
	}
	return ctx.JSON(setupResponse{Message: "Projects table created and sample data inserted"})
}

func (c *SetupController) serveHobbiesTable(ctx *fiber.Ctx) error {
	err := c.Prober.Probe(ctx.Context(), folio.TableHobbies)
	switch {
	case err == nil:
		return ctx.JSON(setupResponse{Message: "Hobbies table already exists"})
	case errors.Is(err, folio.ErrNotConfigured):
		return notConfigured(ctx)
	case errors.Is(err, folio.ErrTableMissing):
		return ctx.Status(fiber.StatusNotFound).JSON(setupResponse{
			Error:     "Hobbies table does not exist",
			Message:   "Please run the SQL script below to create the table manually.",
			SqlScript: folio.HobbiesTableSQL,
		})
	default:
		requestLog(ctx).WithError(err).Errorln("Could not probe hobbies table.")
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(setupResponse{Error: "Failed to check if hobbies table exists"})
	}
}

func notConfigured(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).
		JSON(setupResponse{Error: folio.ErrNotConfigured.Error()})
}
