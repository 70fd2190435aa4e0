package csrf

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/middlewares/sessions"
	"github.com/clipsmart/clipsmart-web/params"
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderName = "X-CSRF-Token"
	FormField  = "_csrf"
)

var (
	ErrInvalidToken = errors.New("invalid CSRF token")
)

func randomToken() string {
	const tokenLength = 32
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate CSRF token: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func ensure(data *sessions.SessionData) bool {
	if data.CSRFToken != "" && time.Now().Before(data.CSRFExpiresAt) {
		return false
	}
	data.CSRFToken = randomToken()
	data.CSRFExpiresAt = time.Now().Add(params.CSRFTokenExpiration)
	return true
}

// Get returns the session's CSRF token, issuing one if needed.
func Get(ctx *fiber.Ctx) string {
	data := sessions.Get(ctx)
	if ensure(&data) {
		sessions.Set(ctx, data)
	}
	return data.CSRFToken
}

func Verify(ctx *fiber.Ctx) bool {
	token := ctx.Get(HeaderName)
	if token == "" && ctx.Method() == fiber.MethodPost {
		token = ctx.FormValue(FormField)
	}

	data := sessions.Get(ctx)
	if token == "" || time.Now().After(data.CSRFExpiresAt) || data.CSRFToken != token {
		return false
	}
	return true
}

// New issues a token on safe requests and rejects unsafe ones without a valid token.
func New() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			Get(ctx)
			return ctx.Next()
		}
		if !Verify(ctx) {
			return fiber.NewError(fiber.StatusForbidden, ErrInvalidToken.Error())
		}
		return ctx.Next()
	}
}
