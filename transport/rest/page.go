package rest

import (
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type StatsBoard interface {
	Snapshot() (folio.StatsSnapshot, time.Time)
}

type skillJson struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

type pageJson struct {
	Profile               profileJson   `json:"profile"`
	Hobbies               []hobbyJson   `json:"hobbies"`
	Projects              []projectJson `json:"projects"`
	UsingFallbackProjects bool          `json:"usingFallbackProjects"`
	Skills                []skillJson   `json:"skills"`
	Stats                 struct {
		SubscriberCount int64 `json:"subscriberCount"`
		MemberCount     int64 `json:"memberCount"`
		UpdatedAt       int64 `json:"updatedAt,omitempty"`
	} `json:"stats"`
}

// PageController serves everything the single page renders in one response.
type PageController struct {
	Profiles folio.ProfileRepository
	Hobbies  folio.HobbyRepository
	Projects folio.ProjectRepository
	Board    StatsBoard
}

func (c *PageController) InstallTo(app *fiber.App) {
	app.Get("/page", c.servePage)
}

func (c *PageController) servePage(ctx *fiber.Ctx) error {
	var (
		profile  folio.Profile
		hobbies  []folio.Hobby
		projects []folio.Project
	)
	// Repositories degrade instead of failing, so sections load independently.
	g, gctx := errgroup.WithContext(ctx.Context())
	g.Go(func() error {
		profile = c.Profiles.Get(gctx)
		hobbies = c.Hobbies.List(gctx, profile.Id)
		return nil
	})
	g.Go(func() error {
		projects = c.Projects.List(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	page := pageJson{
		Profile:               toProfileJson(profile),
		Hobbies:               toHobbiesJson(hobbies),
		Projects:              toProjectsJson(projects),
		UsingFallbackProjects: folio.IsFallbackProjects(projects),
	}
	for _, s := range folio.Skills() {
		page.Skills = append(page.Skills, skillJson{Name: s.Name, Level: s.Level, Description: s.Description})
	}
	snapshot, updatedAt := c.Board.Snapshot()
	page.Stats.SubscriberCount = snapshot.Subscribers
	page.Stats.MemberCount = snapshot.Members
	page.Stats.UpdatedAt = unix(updatedAt)
	return ctx.JSON(page)
}
