package rest

import (
	"fmt"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type UploadController struct {
	Uploader folio.AssetUploader
}

func (c *UploadController) InstallTo(app *fiber.App) {
	app.Post("/uploads", c.serveUpload)
}

func (c *UploadController) serveUpload(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no file")
	}
	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("open multipart file: %w", err)
	}
	defer file.Close()

	url, err := c.Uploader.Upload(ctx.Context(), header.Filename, header.Header.Get(fiber.HeaderContentType), file)
	if err != nil {
		return err
	}
	requestLog(ctx).WithField("url", url).Infoln("Asset uploaded.")
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
