package widget

import (
	"go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WidgetApi struct {
	WidgetController *WidgetController
	Config           *config.Config
}

func NewWidgetApi(widgetController *WidgetController, cfg *config.Config) api.Route {
	return &WidgetApi{
		WidgetController: widgetController,
		Config:           cfg,
	}
}

func (a *WidgetApi) Setup(app *fiber.App) {
	dashboards := app.Group("/api/dashboards", middleware.AuthMiddleware(a.Config.SkipAuth))
	dashboards.Get("/:id/widgets", a.WidgetController.ListWidgets)
	dashboards.Post("/:id/widgets", a.WidgetController.AddWidget)
	dashboards.Get("/:id/layout", a.WidgetController.GetLayout)

	widgets := app.Group("/api/widgets", middleware.AuthMiddleware(a.Config.SkipAuth))
	widgets.Put("/positions", a.WidgetController.BulkUpdatePositions)
	widgets.Put("/:id/position", a.WidgetController.UpdatePosition)
	widgets.Put("/:id/config", a.WidgetController.UpdateConfig)
	widgets.Delete("/:id", a.WidgetController.DeleteWidget)
}
