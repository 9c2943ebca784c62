package dashboard

import (
	"errors"

	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
	}
}

type createDashboardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrAccessDenied):
		return fiber.StatusForbidden
	case errors.Is(err, ErrDashboardQuota):
		return fiber.StatusForbidden
	case errors.Is(err, ErrDashboardNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// CreateDashboard godoc
// @Summary Create dashboard
// @Description Create a new dashboard; at most 3 per user, first one becomes the default
// @Tags dashboard
// @Accept json
// @Produce json
// @Param dashboard body createDashboardRequest true "Dashboard"
// @Success 201 {object} Dashboard
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/dashboards [post]
func (ctrl *DashboardController) CreateDashboard(ctx *fiber.Ctx) error {
	var req createDashboardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dashboard, err := ctrl.DashboardService.CreateDashboard(ctx.UserContext(), middleware.CallerID(ctx), req.Title, req.Description)
	if err != nil {
		return ctx.Status(statusForServiceError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(dashboard)
}

// ListDashboards godoc
// @Summary List dashboards
// @Description List the current user's dashboards, newest first
// @Tags dashboard
// @Produce json
// @Success 200 {array} Dashboard
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards [get]
func (ctrl *DashboardController) ListDashboards(ctx *fiber.Ctx) error {
	dashboards, err := ctrl.DashboardService.ListUserDashboards(ctx.UserContext(), middleware.CallerID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if dashboards == nil {
		dashboards = []Dashboard{}
	}
	return ctx.JSON(dashboards)
}

// GetDashboard godoc
// @Summary Get dashboard
// @Tags dashboard
// @Produce json
// @Param id path string true "Dashboard ID"
// @Success 200 {object} Dashboard
// @Failure 404 {object} map[string]interface{}
// @Router /api/dashboards/{id} [get]
func (ctrl *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	dashboard, err := ctrl.DashboardService.GetDashboard(ctx.UserContext(), ctx.Params("id"), middleware.CallerID(ctx))
	if err != nil {
		return ctx.Status(statusForServiceError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(dashboard)
}

// UpdateDashboard godoc
// @Summary Update dashboard
// @Description Partial update of title, description and layout config
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Dashboard ID"
// @Param dashboard body DashboardUpdate true "Fields to update"
// @Success 200 {object} Dashboard
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id} [put]
func (ctrl *DashboardController) UpdateDashboard(ctx *fiber.Ctx) error {
	var update DashboardUpdate
	if err := ctx.BodyParser(&update); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dashboard, err := ctrl.DashboardService.UpdateDashboard(ctx.UserContext(), ctx.Params("id"), update, middleware.CallerID(ctx))
	if err != nil {
		return ctx.Status(statusForServiceError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(dashboard)
}

// DeleteDashboard godoc
// @Summary Delete dashboard
// @Description Delete the dashboard and cascade its widgets
// @Tags dashboard
// @Param id path string true "Dashboard ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id} [delete]
func (ctrl *DashboardController) DeleteDashboard(ctx *fiber.Ctx) error {
	if err := ctrl.DashboardService.DeleteDashboard(ctx.UserContext(), ctx.Params("id"), middleware.CallerID(ctx)); err != nil {
		return ctx.Status(statusForServiceError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
