package render

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/clipsmart/clipsmart-web/internal/landing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

var globalVars = fiber.Map{}

func InitValues(data fiber.Map) {
	globalVars = data
}

func NewHtmlEngine(templateDir string) *html.Engine {
	var engine *html.Engine
	if templateDir != "" {
		engine = html.NewFileSystem(http.Dir(templateDir), ".html")
	} else {
		renderFS, _ := fs.Sub(templateFS, "templates")
		engine = html.NewFileSystem(http.FS(renderFS), ".html")
	}
	for name, fn := range templateFuncs {
		engine.AddFunc(name, fn)
	}
	return engine
}

func RenderLanding(ctx *fiber.Ctx, data LandingPageData) error {
	return ctx.Render("landing", fiber.Map{
		"siteName":         globalVars["siteName"],
		"baseURL":          globalVars["baseURL"],
		"version":          globalVars["version"],
		"csrfToken":        data.CSRFToken,
		"user":             data.User,
		"toasts":           data.Toasts,
		"menuOpen":         data.MenuOpen,
		"billing":          string(data.Billing),
		"annual":           data.Billing == landing.BillingAnnual,
		"nextBilling":      string(data.Billing.Toggle()),
		"heroIndex":        data.HeroIndex,
		"heroStats":        landing.HeroStats,
		"heroHighlights":   landing.HeroHighlights,
		"features":         landing.Features,
		"steps":            landing.Steps,
		"stepStats":        landing.StepStats,
		"plans":            landing.PricedPlans(data.Billing),
		"testimonials":     landing.Testimonials,
		"testimonialStats": landing.TestimonialStats,
		"ctaHighlights":    landing.CTAHighlights,
		"ctaStats":         landing.CTAStats,
		"navLinks":         landing.NavLinks,
		"footerGroups":     landing.FooterGroups,
		"authForm":         newAuthModalView(data.AuthForm),
	})
}

func renderError(ctx *fiber.Ctx, code int, title, message string) error {
	return ctx.Status(code).Render("error", fiber.Map{
		"siteName": globalVars["siteName"],
		"code":     code,
		"title":    title,
		"message":  message,
	})
}

func RenderBadRequestError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusBadRequest, "Bad request", "The request could not be understood.")
}

func RenderForbiddenError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusForbidden, "Forbidden", "Your session has expired. Please reload the page and try again.")
}

func RenderNotFoundError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusNotFound, "Page not found", "The page you are looking for does not exist.")
}

func RenderInternalServerError(ctx *fiber.Ctx) error {
	return renderError(ctx, fiber.StatusInternalServerError, "Something went wrong", "Please try again in a moment.")
}
