package rest

import (
	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Subscribers folio.StatCounter
	Members     folio.StatCounter
}

func (c *StatsController) InstallTo(app *fiber.App) {
	app.Get("/stats/video-subscribers", c.serveSubscribers)
	app.Get("/stats/channel-members", c.serveMembers)
}

func (c *StatsController) serveSubscribers(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"subscriberCount": c.Subscribers.Count(ctx.Context())})
}

func (c *StatsController) serveMembers(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"memberCount": c.Members.Count(ctx.Context())})
}
