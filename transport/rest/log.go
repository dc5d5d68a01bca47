package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIdLocalsKey = "request_id"

// LogHandler tags the request with an id (echoed as X-Request-Id) and logs it.
func LogHandler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := uuid.New().String()
		ctx.Locals(requestIdLocalsKey, requestId)
		ctx.Set(fiber.HeaderXRequestID, requestId)

		requestLog(ctx).Infoln("Handling request.")
		return ctx.Next()
	}
}

func requestLog(ctx *fiber.Ctx) *logrus.Entry {
	entry := logrus.
		WithField("remote_addr", ctx.Context().RemoteAddr()).
		WithField("path", ctx.Path()).
		WithField("z_referer", string(ctx.Request().Header.Peek("Referer"))).
		WithField("z_user_agent", string(ctx.Request().Header.Peek("User-Agent"))).
		WithField("z_x_forwared_for", string(ctx.Request().Header.Peek("X-Forwarded-For")))
	if requestId, ok := ctx.Locals(requestIdLocalsKey).(string); ok {
		entry = entry.WithField("request_id", requestId)
	}
	return entry
}
