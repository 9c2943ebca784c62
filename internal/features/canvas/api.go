package canvas

import (
	"go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type CanvasApi struct {
	CanvasController *CanvasController
	Hub              *Hub
	Config           *config.Config
}

func NewCanvasApi(canvasController *CanvasController, hub *Hub, cfg *config.Config) api.Route {
	return &CanvasApi{
		CanvasController: canvasController,
		Hub:              hub,
		Config:           cfg,
	}
}

func (a *CanvasApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboards", middleware.AuthMiddleware(a.Config.SkipAuth))
	group.Post("/:id/layout", a.CanvasController.SubmitLayout)

	// Browsers cannot set headers on websocket requests; the auth
	// middleware also accepts the token as a query parameter.
	ws := app.Group("/api/ws", middleware.AuthMiddleware(a.Config.SkipAuth), func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/dashboards/:id", websocket.New(a.Hub.HandleConnection))
}
