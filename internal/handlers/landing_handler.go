package handlers

import (
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/gofiber/fiber/v2"
)

type LandingHandler struct {
	*BasePageHandler
}

func NewLandingHandler(base *BasePageHandler) *LandingHandler {
	return &LandingHandler{BasePageHandler: base}
}

func (h *LandingHandler) GetLanding(ctx *fiber.Ctx) error {
	return h.renderLanding(ctx, fiber.StatusOK)
}

func (h *LandingHandler) GetDemo(ctx *fiber.Ctx) error {
	session := h.clientSession(ctx)
	h.toast(session, notify.KindInfo, MsgDemoTitle, MsgDemoComingSoon)
	return redirectHome(ctx)
}

func GetHealthz(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}
