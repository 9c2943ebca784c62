package export

import (
	"fmt"

	"go-canvas/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	ExportService ExportService
}

func NewExportController(exportService ExportService) *ExportController {
	return &ExportController{
		ExportService: exportService,
	}
}

// ExportDashboard godoc
// @Summary Export dashboard to Excel
// @Description Download the dashboard's widgets as an .xlsx attachment
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Dashboard ID"
// @Success 200 {file} binary
// @Failure 500 {object} map[string]interface{}
// @Router /api/dashboards/{id}/export [get]
func (ctrl *ExportController) ExportDashboard(ctx *fiber.Ctx) error {
	data, filename, err := ctrl.ExportService.ExportDashboard(ctx.UserContext(), ctx.Params("id"), middleware.CallerID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(data)
}
