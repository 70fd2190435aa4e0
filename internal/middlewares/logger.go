package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one line per request at debug level, or warn for 5xx.
func RequestLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		status := ctx.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		level := slog.LevelDebug
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(ctx.Context(), level, "Request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", status,
			"ip", ctx.IP(),
			"elapsed", time.Since(start),
		)
		return err
	}
}
