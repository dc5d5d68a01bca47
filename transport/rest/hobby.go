package rest

import (
	"fmt"
	"strconv"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type hobbyJson struct {
	Id          int64  `json:"id"`
	ProfileId   int64  `json:"profileId"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

func toHobbyJson(h folio.Hobby) hobbyJson {
	return hobbyJson{
		Id:          int64(h.Id),
		ProfileId:   int64(h.ProfileId),
		Name:        h.Name,
		Icon:        string(h.Icon),
		Description: h.Description,
		CreatedAt:   unix(h.CreatedAt),
	}
}

func toHobbiesJson(hobbies []folio.Hobby) []hobbyJson {
	mapped := make([]hobbyJson, len(hobbies))
	for i, h := range hobbies {
		mapped[i] = toHobbyJson(h)
	}
	return mapped
}

type HobbyController struct {
	Repository folio.HobbyRepository
}

func (c *HobbyController) InstallTo(app *fiber.App) {
	app.Get("/hobbies", c.serveList)
	app.Post("/hobbies", c.serveCreate)
	app.Patch("/hobbies/:id", c.serveUpdate)
	app.Delete("/hobbies/:id", c.serveDelete)
}

// ?profile_id= scopes the list, absent means every profile.
func (c *HobbyController) serveList(ctx *fiber.Ctx) error {
	var profileId int64
	if raw := ctx.Query("profile_id"); raw != "" {
		var err error
		profileId, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || profileId < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid profile id")
		}
	}
	return ctx.JSON(toHobbiesJson(c.Repository.List(ctx.Context(), folio.ProfileId(profileId))))
}

func (c *HobbyController) serveCreate(ctx *fiber.Ctx) error {
	body := struct {
		ProfileId   int64  `json:"profileId"`
		Name        string `json:"name"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	hobby, err := c.Repository.Create(ctx.Context(), folio.HobbyFields{
		ProfileId:   folio.ProfileId(body.ProfileId),
		Name:        body.Name,
		Icon:        folio.HobbyIcon(body.Icon),
		Description: body.Description,
	})
	if err != nil {
		return fmt.Errorf("create hobby: %w", err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(toHobbyJson(hobby))
}

func (c *HobbyController) serveUpdate(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	body := struct {
		Name        *string          `json:"name"`
		Icon        *folio.HobbyIcon `json:"icon"`
		Description *string          `json:"description"`
	}{}
	if err := parseBody(ctx, &body); err != nil {
		return err
	}

	hobby, err := c.Repository.Update(ctx.Context(), folio.HobbyId(id), folio.HobbyPatch{
		Name:        body.Name,
		Icon:        body.Icon,
		Description: body.Description,
	})
	if err != nil {
		return fmt.Errorf("update hobby: %w", err)
	}
	return ctx.JSON(toHobbyJson(hobby))
}

func (c *HobbyController) serveDelete(ctx *fiber.Ctx) error {
	id, err := paramId(ctx)
	if err != nil {
		return err
	}
	if err := c.Repository.Delete(ctx.Context(), folio.HobbyId(id)); err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
