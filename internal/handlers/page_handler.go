package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/landing"
	"github.com/clipsmart/clipsmart-web/internal/middlewares/csrf"
	"github.com/clipsmart/clipsmart-web/internal/middlewares/sessions"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/internal/render"
	"github.com/clipsmart/clipsmart-web/internal/users"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// BasePageHandler renders the landing page with the visitor's session state.
type BasePageHandler struct {
	forms         AuthFormRegistry
	userService   UserService
	notifications NotificationQueue
	rotator       *landing.StatRotator
}

func NewBasePageHandler(forms AuthFormRegistry, userService UserService, notifications NotificationQueue, rotator *landing.StatRotator) *BasePageHandler {
	return &BasePageHandler{
		forms:         forms,
		userService:   userService,
		notifications: notifications,
		rotator:       rotator,
	}
}

// clientSession returns the session data with a client id assigned.
func (h *BasePageHandler) clientSession(ctx *fiber.Ctx) sessions.SessionData {
	session := sessions.Get(ctx)
	if session.ClientID == "" {
		session.ClientID = uuid.NewString()
		sessions.Set(ctx, session)
	}
	return session
}

func (h *BasePageHandler) toast(session sessions.SessionData, kind notify.Kind, title, message string) {
	err := h.notifications.Push(session.ClientID, notify.Notification{Kind: kind, Title: title, Message: message})
	if err != nil {
		slog.Error("Failed to queue notification", "kind", kind, "error", err)
	}
}

func (h *BasePageHandler) currentForm(session sessions.SessionData) (*authform.Controller, error) {
	if session.AuthFormID == "" {
		return nil, authform.ErrFormNotFound
	}
	return h.forms.Get(session.AuthFormID)
}

func (h *BasePageHandler) renderLanding(ctx *fiber.Ctx, status int) error {
	csrfToken := csrf.Get(ctx)
	session := h.clientSession(ctx)
	data := render.LandingPageData{
		CSRFToken: csrfToken,
		Billing:   landing.ParseBillingPeriod(ctx.Query("billing")),
		MenuOpen:  cast.ToBool(ctx.Query("menu")),
		HeroIndex: h.rotator.Index(time.Now()),
	}

	dirty := false
	if session.UserID != "" && !session.IsLoggedIn() {
		session = h.expireSession(ctx, session)
		dirty = true
	}
	if session.IsLoggedIn() {
		user, err := h.userService.GetUser(ctx.Context(), session.UserID, session.AccessToken)
		switch {
		case errors.Is(err, users.ErrSessionExpired):
			session = h.expireSession(ctx, session)
			dirty = true
		case err != nil:
			slog.Warn("Could not load signed-in user", "userID", session.UserID, "error", err)
		default:
			data.User = user
		}
	}

	if form, err := h.currentForm(session); err == nil {
		state := form.State()
		data.AuthForm = &state
	} else if session.AuthFormID != "" {
		session.AuthFormID = ""
		dirty = true
	}

	if dirty {
		sessions.Set(ctx, session)
	}

	toasts, err := h.notifications.Drain(session.ClientID)
	if err != nil {
		slog.Error("Failed to drain notifications", "error", err)
	}
	data.Toasts = toasts

	ctx.Status(status)
	return render.RenderLanding(ctx, data)
}

// expireSession signs out a session whose token is no longer accepted.
func (h *BasePageHandler) expireSession(ctx *fiber.Ctx, session sessions.SessionData) sessions.SessionData {
	if err := h.userService.ForgetUser(ctx.Context(), session.UserID); err != nil {
		slog.Warn("Failed to drop cached user", "userID", session.UserID, "error", err)
	}
	slog.Info("Session expired", "userID", session.UserID)
	session = logoutSession(session)
	h.toast(session, notify.KindInfo, "", MsgSessionExpired)
	return session
}

func logoutSession(session sessions.SessionData) sessions.SessionData {
	session.UserID = ""
	session.Email = ""
	session.AccessToken = ""
	session.TokenExpiry = time.Time{}
	return session
}
