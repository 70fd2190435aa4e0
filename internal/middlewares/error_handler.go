package middlewares

import (
	"errors"
	"log/slog"

	"github.com/clipsmart/clipsmart-web/internal/render"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("Unhandled error", "method", ctx.Method(), "path", ctx.Path(), "code", code, "error", err)
	} else {
		slog.Debug("Request error", "method", ctx.Method(), "path", ctx.Path(), "code", code, "error", err)
	}
	switch code {
	case fiber.StatusBadRequest:
		return render.RenderBadRequestError(ctx)
	case fiber.StatusForbidden:
		return render.RenderForbiddenError(ctx)
	case fiber.StatusNotFound:
		return render.RenderNotFoundError(ctx)
	default:
		return render.RenderInternalServerError(ctx)
	}
}
