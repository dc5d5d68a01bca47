package rest

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/buzkaaclicker/folio"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// ErrorHandler renders every error as {"error_message": ...}. The page shows
// the message as a dismissible notification.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	var verr *folio.ValidationError
	switch {
	case errors.As(err, &fe):
		return ctx.
			Status(fe.Code).
			JSON(&ErrorResponse{ErrorMessage: fmt.Sprint(fe.Message)})
	case errors.As(err, &verr):
		return ctx.
			Status(fiber.StatusBadRequest).
			JSON(&ErrorResponse{ErrorMessage: verr.Error()})
	case errors.Is(err, folio.ErrNotFound):
		return ctx.
			Status(fiber.StatusNotFound).
			JSON(&ErrorResponse{ErrorMessage: folio.ErrNotFound.Error()})
	case errors.Is(err, folio.ErrNotImage):
		return ctx.
			Status(fiber.StatusUnsupportedMediaType).
			JSON(&ErrorResponse{ErrorMessage: folio.ErrNotImage.Error()})
	default:
		requestLog(ctx).WithError(err).Errorln("Internal server error.")
		// keep internal server errors private. reply with generic error message.
		return ctx.
			Status(fiber.ErrInternalServerError.Code).
			JSON(&ErrorResponse{ErrorMessage: fmt.Sprint(fiber.ErrInternalServerError.Message)})
	}
}

func NotFoundHandler(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound)
}

func paramId(ctx *fiber.Ctx) (int64, error) {
	raw := ctx.Params("id")
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "no id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		requestLog(ctx).WithError(err).Infoln("Invalid body.")
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	return nil
}

// Unix seconds, zero for unset timestamps of fallback records.
func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
