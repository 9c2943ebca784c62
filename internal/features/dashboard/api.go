package dashboard

import (
	"go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboards", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.DashboardController.CreateDashboard)
	group.Get("/", a.DashboardController.ListDashboards)
	group.Get("/:id", a.DashboardController.GetDashboard)
	group.Put("/:id", a.DashboardController.UpdateDashboard)
	group.Delete("/:id", a.DashboardController.DeleteDashboard)
}
