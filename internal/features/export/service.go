package export

import (
	"context"
	"encoding/json"
	"fmt"

	"go-canvas/internal/features/dashboard"
	"go-canvas/internal/features/widget"
	"go-canvas/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExportService interface {
	ExportDashboard(ctx context.Context, dashboardID string, userID primitive.ObjectID) ([]byte, string, error)
}

type ExportServiceImpl struct {
	DashboardService dashboard.DashboardService
	WidgetService    widget.WidgetService
}

func NewExportService(dashboardService dashboard.DashboardService, widgetService widget.WidgetService) ExportService {
	return &ExportServiceImpl{
		DashboardService: dashboardService,
		WidgetService:    widgetService,
	}
}

var exportColumns = []string{
	"id", "widget_type", "x", "y", "w", "h", "z_index", "content", "created_at", "updated_at",
}

// ExportDashboard renders a dashboard's widgets into a one-sheet xlsx file.
func (s *ExportServiceImpl) ExportDashboard(ctx context.Context, dashboardID string, userID primitive.ObjectID) ([]byte, string, error) {
	dash, err := s.DashboardService.GetDashboard(ctx, dashboardID, userID)
	if err != nil {
		return nil, "", err
	}

	widgets, err := s.WidgetService.ListWidgets(ctx, dashboardID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Widgets"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, w := range widgets {
		content, _ := json.Marshal(w.Content)
		values := []interface{}{
			w.ID.Hex(),
			string(w.WidgetType),
			w.Position.X,
			w.Position.Y,
			w.Position.W,
			w.Position.H,
			w.ZIndex,
			string(content),
			w.CreatedAt.Format("2006-01-02 15:04:05"),
			w.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range exportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 15)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.xlsx", utils.Slugify(dash.Title))
	return buffer.Bytes(), filename, nil
}
