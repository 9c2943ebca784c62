package canvas

import (
	"go-canvas/internal/features/widget"

	"github.com/gofiber/fiber/v2"
)

type CanvasController struct {
	Saver *LayoutSaver
}

func NewCanvasController(saver *LayoutSaver) *CanvasController {
	return &CanvasController{
		Saver: saver,
	}
}

// SubmitLayout godoc
// @Summary Submit layout change
// @Description Schedule a debounced bulk position save; submissions while a save is pending are dropped
// @Tags canvas
// @Accept json
// @Produce json
// @Param id path string true "Dashboard ID"
// @Param layout body []widget.PositionUpdate true "Layout snapshot"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/dashboards/{id}/layout [post]
func (ctrl *CanvasController) SubmitLayout(ctx *fiber.Ctx) error {
	var updates []widget.PositionUpdate
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	accepted := ctrl.Saver.Submit(ctx.Params("id"), updates)

	// 202 either way: persistence is asynchronous and drops are part of
	// the policy, not a request failure.
	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"accepted": accepted})
}
