package handlers

import (
	"github.com/clipsmart/clipsmart-web/internal/middlewares"
	"github.com/clipsmart/clipsmart-web/internal/middlewares/csrf"
	"github.com/clipsmart/clipsmart-web/internal/middlewares/sessions"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupRoutes registers the site's middleware chain and pages on app.
func SetupRoutes(app *fiber.App, sessionStore *session.Store, staticDir string, base *BasePageHandler) {
	landingHandler := NewLandingHandler(base)
	authHandler := NewAuthHandler(base)

	app.Use(middlewares.RequestLogger())
	app.Use(recover.New())

	// stateless routes skip the session
	app.Get("/healthz", GetHealthz)
	if staticDir != "" {
		app.Static("/static", staticDir)
	}

	app.Use(sessions.SessionMiddleware(sessionStore))
	app.Use(csrf.New())

	app.Get("/", landingHandler.GetLanding)
	app.Get("/demo", landingHandler.GetDemo)

	app.Get("/auth", authHandler.GetAuth)
	app.Get("/auth/oauth/:provider", authHandler.GetOAuth)
	app.Post("/auth/mode", authHandler.PostMode)
	app.Post("/auth/submit", authHandler.PostSubmit)
	app.Post("/auth/close", authHandler.PostClose)
	app.Post("/logout", authHandler.PostLogout)

	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
