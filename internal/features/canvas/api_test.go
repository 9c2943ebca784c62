package canvas

import (
	"net/http/httptest"
	"testing"
	"time"

	"go-canvas/internal/config"
	"go-canvas/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newCanvasTestApp(t *testing.T) *fiber.App {
	t.Helper()

	saver := NewLayoutSaver(&MockLayoutStore{}, time.Millisecond, zap.NewNop())
	route := NewCanvasApi(NewCanvasController(saver), NewHub(zap.NewNop()), &config.Config{SkipAuth: false})

	app := fiber.New()
	route.Setup(app)
	return app
}

func TestWebsocketRouteRequiresAuth(t *testing.T) {
	utils.SetSecret("canvas-test-secret")
	app := newCanvasTestApp(t)

	// No credentials: rejected before the upgrade check runs.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/ws/dashboards/abc", nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", resp.StatusCode)
	}

	// Valid query token but a plain HTTP request: falls through to the
	// upgrade guard.
	token, err := utils.GenerateToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/api/ws/dashboards/abc?token="+token, nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("Expected 426 for non-upgrade request, got %d", resp.StatusCode)
	}
}

func TestSubmitLayoutRequiresAuth(t *testing.T) {
	utils.SetSecret("canvas-test-secret")
	app := newCanvasTestApp(t)

	req := httptest.NewRequest("POST", "/api/dashboards/abc/layout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", resp.StatusCode)
	}
}
