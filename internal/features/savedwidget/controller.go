package savedwidget

import (
	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SavedWidgetController struct {
	SavedWidgetService SavedWidgetService
}

func NewSavedWidgetController(savedWidgetService SavedWidgetService) *SavedWidgetController {
	return &SavedWidgetController{
		SavedWidgetService: savedWidgetService,
	}
}

type saveChartRequest struct {
	C1Response string `json:"c1Response"`
	Query      string `json:"query"`
}

type saveEmojiRequest struct {
	Emoji string `json:"emoji"`
	Size  string `json:"size"`
}

type saveTextRequest struct {
	Text       string  `json:"text"`
	FontSize   float64 `json:"fontSize"`
	Color      string  `json:"color"`
	FontWeight string  `json:"fontWeight"`
	TextAlign  string  `json:"textAlign"`
}

// SaveChart godoc
// @Summary Save a chart widget
// @Description Cache a chart produced in chat for later placement
// @Tags saved-widget
// @Accept json
// @Produce json
// @Param widget body saveChartRequest true "Chart payload"
// @Success 201 {object} SavedWidget
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets/chart [post]
func (ctrl *SavedWidgetController) SaveChart(ctx *fiber.Ctx) error {
	var req saveChartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	widget, err := ctrl.SavedWidgetService.SaveChartWidget(ctx.UserContext(), middleware.CallerID(ctx), req.C1Response, req.Query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(widget)
}

// SaveEmoji godoc
// @Summary Save an emoji widget
// @Tags saved-widget
// @Accept json
// @Produce json
// @Param widget body saveEmojiRequest true "Emoji payload"
// @Success 201 {object} SavedWidget
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets/emoji [post]
func (ctrl *SavedWidgetController) SaveEmoji(ctx *fiber.Ctx) error {
	var req saveEmojiRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	widget, err := ctrl.SavedWidgetService.SaveEmojiWidget(ctx.UserContext(), middleware.CallerID(ctx), req.Emoji, req.Size)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(widget)
}

// SaveText godoc
// @Summary Save a text widget
// @Tags saved-widget
// @Accept json
// @Produce json
// @Param widget body saveTextRequest true "Text payload"
// @Success 201 {object} SavedWidget
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets/text [post]
func (ctrl *SavedWidgetController) SaveText(ctx *fiber.Ctx) error {
	var req saveTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	widget, err := ctrl.SavedWidgetService.SaveTextWidget(ctx.UserContext(), middleware.CallerID(ctx), req.Text, req.FontSize, req.Color, req.FontWeight, req.TextAlign)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(widget)
}

// ListSavedWidgets godoc
// @Summary List saved widgets
// @Tags saved-widget
// @Produce json
// @Success 200 {array} SavedWidget
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets [get]
func (ctrl *SavedWidgetController) ListSavedWidgets(ctx *fiber.Ctx) error {
	widgets, err := ctrl.SavedWidgetService.ListSavedWidgets(ctx.UserContext(), middleware.CallerID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if widgets == nil {
		widgets = []SavedWidget{}
	}
	return ctx.JSON(widgets)
}

// GetSavedWidget godoc
// @Summary Get a saved widget
// @Tags saved-widget
// @Produce json
// @Param id path string true "Saved widget ID"
// @Success 200 {object} SavedWidget
// @Failure 404 {object} map[string]interface{}
// @Router /api/saved-widgets/{id} [get]
func (ctrl *SavedWidgetController) GetSavedWidget(ctx *fiber.Ctx) error {
	widget, err := ctrl.SavedWidgetService.GetWidget(ctx.UserContext(), middleware.CallerID(ctx), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if widget == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "saved widget not found"})
	}
	return ctx.JSON(widget)
}

// RemoveSavedWidget godoc
// @Summary Remove a saved widget
// @Description No-op when the id is absent
// @Tags saved-widget
// @Param id path string true "Saved widget ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets/{id} [delete]
func (ctrl *SavedWidgetController) RemoveSavedWidget(ctx *fiber.Ctx) error {
	if err := ctrl.SavedWidgetService.RemoveSavedWidget(ctx.UserContext(), middleware.CallerID(ctx), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// ClearSavedWidgets godoc
// @Summary Clear all saved widgets
// @Tags saved-widget
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/saved-widgets [delete]
func (ctrl *SavedWidgetController) ClearSavedWidgets(ctx *fiber.Ctx) error {
	if err := ctrl.SavedWidgetService.ClearSavedWidgets(ctx.UserContext(), middleware.CallerID(ctx)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
