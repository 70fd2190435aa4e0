package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/authclient"
	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/middlewares/sessions"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/gofiber/fiber/v2"
)

const formIDField = "form_id"

// AuthHandler drives the sign in / sign up modal.
type AuthHandler struct {
	*BasePageHandler
}

func NewAuthHandler(base *BasePageHandler) *AuthHandler {
	return &AuthHandler{BasePageHandler: base}
}

// GetAuth opens the modal in the requested mode, or switches an open one.
func (h *AuthHandler) GetAuth(ctx *fiber.Ctx) error {
	mode := authform.ParseMode(ctx.Query("mode"))
	session := h.clientSession(ctx)
	if session.IsLoggedIn() {
		h.toast(session, notify.KindInfo, "", MsgAlreadySignedIn)
		return redirectHome(ctx)
	}

	if form, err := h.currentForm(session); err == nil {
		if form.Mode() != mode {
			form.ToggleMode()
		}
		return redirectHome(ctx)
	}

	form := h.forms.Open(mode, h.notifications.For(session.ClientID))
	session.AuthFormID = form.ID()
	sessions.Set(ctx, session)
	slog.Debug("Opened auth form", "form", form.ID(), "mode", mode)
	return redirectHome(ctx)
}

// postedForm returns the session's form when the posted form_id still names it.
// A modal left over in another tab posts a stale id.
func (h *AuthHandler) postedForm(ctx *fiber.Ctx, session sessions.SessionData) (*authform.Controller, error) {
	form, err := h.currentForm(session)
	if err != nil {
		return nil, err
	}
	if id := ctx.FormValue(formIDField); id != "" && id != form.ID() {
		return nil, authform.ErrFormNotFound
	}
	return form, nil
}

func (h *AuthHandler) PostMode(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	form, err := h.postedForm(ctx, session)
	if err != nil {
		return redirectHome(ctx)
	}
	form.ToggleMode()
	return redirectHome(ctx)
}

func (h *AuthHandler) PostClose(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	if session.AuthFormID != "" {
		h.forms.Close(session.AuthFormID)
		session.AuthFormID = ""
		sessions.Set(ctx, session)
	}
	return redirectHome(ctx)
}

func (h *AuthHandler) PostSubmit(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	form, err := h.postedForm(ctx, session)
	if err != nil {
		h.toast(session, notify.KindInfo, "", MsgAuthFormExpired)
		return redirectHome(ctx)
	}

	values := make(authform.Values, len(authform.AllFields))
	for _, field := range authform.AllFields {
		values[field] = ctx.FormValue(string(field))
	}

	result := form.SubmitValues(ctx.Context(), values)
	slog.Debug("Auth form submitted", "form", form.ID(), "status", result.Status)
	switch result.Status {
	case authform.StatusInvalid:
		return h.renderLanding(ctx, fiber.StatusUnprocessableEntity)
	case authform.StatusIgnored:
		if errors.Is(result.Err, authform.ErrFormClosed) {
			return redirectHome(ctx)
		}
		h.toast(session, notify.KindInfo, "", MsgSubmitInProgress)
		return h.renderLanding(ctx, fiber.StatusConflict)
	case authform.StatusFailed:
		return h.renderLanding(ctx, failureStatus(result.Err))
	}

	return h.handleLoginSuccess(ctx, form, result)
}

func (h *AuthHandler) handleLoginSuccess(ctx *fiber.Ctx, form *authform.Controller, result authform.Result) error {
	h.forms.Close(form.ID())

	token := result.Token
	expiry, err := authclient.TokenExpiry(token.AccessToken)
	if err != nil {
		slog.Debug("Access token has no readable expiry", "error", err)
	}
	if _, err := h.userService.CacheUser(ctx.Context(), &token.User); err != nil {
		slog.Warn("Failed to cache user", "userID", token.User.ID, "error", err)
	}

	session := sessions.Get(ctx)
	session.AuthFormID = ""
	session.UserID = token.User.ID
	session.Email = token.User.Email
	session.AccessToken = token.AccessToken
	session.TokenExpiry = expiry
	session.LoginTime = time.Now()
	session.IP = ctx.IP()
	if err := sessions.Reset(ctx, &session); err != nil {
		return err
	}
	slog.Info("User signed in", "userID", token.User.ID, "ip", ctx.IP())
	return redirectHome(ctx)
}

func (h *AuthHandler) PostLogout(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	if session.UserID != "" {
		if err := h.userService.ForgetUser(ctx.Context(), session.UserID); err != nil {
			slog.Warn("Failed to drop cached user", "userID", session.UserID, "error", err)
		}
	}
	if session.AuthFormID != "" {
		h.forms.Close(session.AuthFormID)
	}
	// the client id carries over so the toast survives the new session
	fresh := sessions.SessionData{ClientID: session.ClientID}
	if err := sessions.Reset(ctx, &fresh); err != nil {
		return err
	}
	h.toast(session, notify.KindSuccess, "", MsgSignedOut)
	return redirectHome(ctx)
}

func (h *AuthHandler) GetOAuth(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	msg, ok := oauthComingSoon[ctx.Params("provider")]
	if !ok {
		msg = MsgUnsupportedOAuth
	}
	h.toast(session, notify.KindError, "", msg)
	return redirectHome(ctx)
}

// failureStatus maps a rejected submit to the page status.
func failureStatus(err error) int {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		if apiErr.StatusCode == http.StatusUnprocessableEntity {
			return fiber.StatusBadRequest
		}
		return apiErr.StatusCode
	}
	return fiber.StatusBadGateway
}
