package widget

import (
	common_models "go-canvas/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// Broadcaster pushes refresh events to other open canvases of the same
// dashboard. Implemented by the canvas websocket hub.
type Broadcaster interface {
	BroadcastRefresh(dashboardID string, event string)
}

type WidgetController struct {
	WidgetService WidgetService
	Broadcaster   Broadcaster
}

func NewWidgetController(widgetService WidgetService, broadcaster Broadcaster) *WidgetController {
	return &WidgetController{
		WidgetService: widgetService,
		Broadcaster:   broadcaster,
	}
}

type addWidgetRequest struct {
	WidgetType common_models.WidgetType `json:"widget_type"`
	Content    map[string]interface{}   `json:"content"`
	Position   *common_models.Position  `json:"position"`
	Config     map[string]interface{}   `json:"config"`
}

// ListWidgets godoc
// @Summary List dashboard widgets
// @Description List all widgets of a dashboard, ordered by z_index ascending
// @Tags widget
// @Produce json
// @Param id path string true "Dashboard ID"
// @Success 200 {array} DashboardWidget
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id}/widgets [get]
func (ctrl *WidgetController) ListWidgets(ctx *fiber.Ctx) error {
	widgets, err := ctrl.WidgetService.ListWidgets(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if widgets == nil {
		widgets = []DashboardWidget{}
	}
	return ctx.JSON(widgets)
}

// GetLayout godoc
// @Summary Get grid layout
// @Description Project a dashboard's widgets into grid-layout descriptors
// @Tags widget
// @Produce json
// @Param id path string true "Dashboard ID"
// @Success 200 {array} LayoutItem
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id}/layout [get]
func (ctrl *WidgetController) GetLayout(ctx *fiber.Ctx) error {
	layout, err := ctrl.WidgetService.Layout(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(layout)
}

// AddWidget godoc
// @Summary Add widget
// @Description Insert a new widget row on a dashboard
// @Tags widget
// @Accept json
// @Produce json
// @Param id path string true "Dashboard ID"
// @Param widget body addWidgetRequest true "Widget"
// @Success 201 {object} DashboardWidget
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id}/widgets [post]
func (ctrl *WidgetController) AddWidget(ctx *fiber.Ctx) error {
	var req addWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dashboardID := ctx.Params("id")
	w, err := ctrl.WidgetService.AddWidget(ctx.UserContext(), dashboardID, req.WidgetType, req.Content, req.Position, req.Config)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.Broadcaster.BroadcastRefresh(dashboardID, "widget_added")

	return ctx.Status(fiber.StatusCreated).JSON(w)
}

// UpdatePosition godoc
// @Summary Update widget position
// @Tags widget
// @Accept json
// @Param id path string true "Widget ID"
// @Param position body common_models.Position true "Position"
// @Success 204 {object} nil
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/widgets/{id}/position [put]
func (ctrl *WidgetController) UpdatePosition(ctx *fiber.Ctx) error {
	var position common_models.Position
	if err := ctx.BodyParser(&position); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.WidgetService.UpdateWidgetPosition(ctx.UserContext(), ctx.Params("id"), position); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// UpdateConfig godoc
// @Summary Replace widget config
// @Description Replaces the whole config field; callers must merge first
// @Tags widget
// @Accept json
// @Param id path string true "Widget ID"
// @Success 204 {object} nil
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/widgets/{id}/config [put]
func (ctrl *WidgetController) UpdateConfig(ctx *fiber.Ctx) error {
	var config map[string]interface{}
	if err := ctx.BodyParser(&config); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.WidgetService.UpdateWidgetConfig(ctx.UserContext(), ctx.Params("id"), config); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// DeleteWidget godoc
// @Summary Delete widget
// @Tags widget
// @Param id path string true "Widget ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/widgets/{id} [delete]
func (ctrl *WidgetController) DeleteWidget(ctx *fiber.Ctx) error {
	if err := ctrl.WidgetService.DeleteWidget(ctx.UserContext(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// BulkUpdatePositions godoc
// @Summary Bulk update widget positions
// @Description Apply a set of position updates concurrently (synchronous, no debounce)
// @Tags widget
// @Accept json
// @Success 204 {object} nil
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/widgets/positions [put]
func (ctrl *WidgetController) BulkUpdatePositions(ctx *fiber.Ctx) error {
	var updates []PositionUpdate
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.WidgetService.BulkUpdatePositions(ctx.UserContext(), updates); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
