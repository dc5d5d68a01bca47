package rest

import (
	"fmt"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type profileJson struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio,omitempty"`
	Location  string `json:"location,omitempty"`
	AvatarUrl string `json:"avatarUrl,omitempty"`
	ResumeUrl string `json:"resumeUrl,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

func toProfileJson(p folio.Profile) profileJson {
	return profileJson{
		Id:        int64(p.Id),
		Name:      p.Name,
		Title:     p.Title,
		Bio:       p.Bio,
		Location:  p.Location,
		AvatarUrl: p.AvatarUrl,
		ResumeUrl: p.ResumeUrl,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: unix(p.CreatedAt),
		UpdatedAt: unix(p.UpdatedAt),
	}
}

type ProfileController struct {
	Repository folio.ProfileRepository
}

func (c *ProfileController) InstallTo(app *fiber.App) {
	app.Get("/profile", c.serveProfile)
	app.Post("/profile", c.serveCreate)
	app.Patch("/profile/:id", c.serveUpdate)
}

func (c *ProfileController) serveProfile(ctx *fiber.Ctx) error {
	return ctx.JSON(toProfileJson(c.Repository.Get(ctx.Context())))
}

func (c *ProfileController) serveCreate(ctx *fiber.Ctx) error {
	body := struct {
		Name      string `json:"name"`
		Title     string `json:"title"`
		Bio       string `json:"bio"`
		Location  string `json:"location"`
		AvatarUrl string `json:"avatarUrl"`
		ResumeUrl string `json:"resumeUrl"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	profile, err := c.Repository.Create(ctx.Context(), folio.ProfileFields{
		Name:      body.Name,
		Title:     body.Title,
		Bio:       body.Bio,
		Location:  body.Location,
		AvatarUrl: body.AvatarUrl,
		ResumeUrl: body.ResumeUrl,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(toProfileJson(profile))
}

func (c *ProfileController) serveUpdate(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	body := struct {
		Name      *string `json:"name"`
		Title     *string `json:"title"`
		Bio       *string `json:"bio"`
		Location  *string `json:"location"`
		AvatarUrl *string `json:"avatarUrl"`
		ResumeUrl *string `json:"resumeUrl"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	profile, err := c.Repository.Update(ctx.Context(), folio.ProfileId(id), folio.ProfilePatch{
		Name:      body.Name,
		Title:     body.Title,
		Bio:       body.Bio,
		Location:  body.Location,
		AvatarUrl: body.AvatarUrl,
		ResumeUrl: body.ResumeUrl,
		Email:     body.Email,
		Phone:     body.Phone,
	})
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return ctx.JSON(toProfileJson(profile))
}
