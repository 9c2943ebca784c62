package export

import (
	"go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	ExportController *ExportController
	Config           *config.Config
}

func NewExportApi(exportController *ExportController, cfg *config.Config) api.Route {
	return &ExportApi{
		ExportController: exportController,
		Config:           cfg,
	}
}

func (a *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboards", middleware.AuthMiddleware(a.Config.SkipAuth))
	group.Get("/:id/export", a.ExportController.ExportDashboard)
}
