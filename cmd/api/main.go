package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_api "go-canvas/internal/common/api"
	"go-canvas/internal/config"
	"go-canvas/internal/database"
	"go-canvas/internal/features/canvas"
	"go-canvas/internal/features/dashboard"
	"go-canvas/internal/features/export"
	"go-canvas/internal/features/maintenance"
	"go-canvas/internal/features/savedwidget"
	"go-canvas/internal/features/system"
	"go-canvas/internal/features/widget"
	"go-canvas/internal/logger"
	"go-canvas/internal/middleware"
	"go-canvas/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// NewLayoutSaver wires the debounced layout saver against the widget service
// and notifies the websocket hub after every successful flush.
func NewLayoutSaver(widgetService widget.WidgetService, hub *canvas.Hub, cfg *config.Config, zapLogger *zap.Logger) *canvas.LayoutSaver {
	saver := canvas.NewLayoutSaver(widgetService, cfg.LayoutSaveDelay, zapLogger)
	saver.OnSaved(func(dashboardID string) {
		hub.BroadcastRefresh(dashboardID, "layout_saved")
	})
	return saver
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, dashboardRepo dashboard.DashboardRepository, widgetRepo widget.WidgetRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := dashboardRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure dashboard indexes: %v", err)
				}
				if err := widgetRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure widget indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repositories
			dashboard.NewDashboardRepository,
			widget.NewWidgetRepository,
			savedwidget.NewSavedWidgetRepository,

			// Initialize Services
			dashboard.NewDashboardService,
			widget.NewWidgetService,
			savedwidget.NewSavedWidgetService,
			export.NewExportService,
			maintenance.NewMaintenanceService,

			// Canvas sync
			canvas.NewHub,
			NewLayoutSaver,

			// Interface Adapters
			func(h *canvas.Hub) widget.Broadcaster { return h },

			// Initialize Controllers
			dashboard.NewDashboardController,
			widget.NewWidgetController,
			savedwidget.NewSavedWidgetController,
			canvas.NewCanvasController,
			export.NewExportController,

			// Initialize API Routes
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(widget.NewWidgetApi),
			AsRoute(savedwidget.NewSavedWidgetApi),
			AsRoute(canvas.NewCanvasApi),
			AsRoute(export.NewExportApi),
			AsRoute(system.NewHealthApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, maintenanceService maintenance.MaintenanceService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return maintenanceService.StartScheduler(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return maintenanceService.StopScheduler()
					},
				})
			},
			func(lc fx.Lifecycle, saver *canvas.LayoutSaver) {
				lc.Append(fx.Hook{
					OnStop: func(ctx context.Context) error {
						saver.Flush()
						return nil
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
