package savedwidget

import (
	"go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SavedWidgetApi struct {
	SavedWidgetController *SavedWidgetController
	Config                *config.Config
}

func NewSavedWidgetApi(savedWidgetController *SavedWidgetController, cfg *config.Config) api.Route {
	return &SavedWidgetApi{
		SavedWidgetController: savedWidgetController,
		Config:                cfg,
	}
}

func (a *SavedWidgetApi) Setup(app *fiber.App) {
	group := app.Group("/api/saved-widgets", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/chart", a.SavedWidgetController.SaveChart)
	group.Post("/emoji", a.SavedWidgetController.SaveEmoji)
	group.Post("/text", a.SavedWidgetController.SaveText)
	group.Get("/", a.SavedWidgetController.ListSavedWidgets)
	group.Delete("/", a.SavedWidgetController.ClearSavedWidgets)
	group.Get("/:id", a.SavedWidgetController.GetSavedWidget)
	group.Delete("/:id", a.SavedWidgetController.RemoveSavedWidget)
}
