package widget

import (
	"context"
	"fmt"

	common_models "go-canvas/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type WidgetService interface {
	ListWidgets(ctx context.Context, dashboardID string) ([]DashboardWidget, error)
	Layout(ctx context.Context, dashboardID string) ([]LayoutItem, error)
	AddWidget(ctx context.Context, dashboardID string, widgetType common_models.WidgetType, content map[string]interface{}, position *common_models.Position, config map[string]interface{}) (*DashboardWidget, error)
	UpdateWidgetPosition(ctx context.Context, widgetID string, position common_models.Position) error
	UpdateWidgetConfig(ctx context.Context, widgetID string, config map[string]interface{}) error
	DeleteWidget(ctx context.Context, widgetID string) error
	BulkUpdatePositions(ctx context.Context, updates []PositionUpdate) error
}

type WidgetServiceImpl struct {
	WidgetRepo WidgetRepository
	Logger     *zap.Logger
}

func NewWidgetService(widgetRepo WidgetRepository, logger *zap.Logger) WidgetService {
	return &WidgetServiceImpl{
		WidgetRepo: widgetRepo,
		Logger:     logger,
	}
}

func (s *WidgetServiceImpl) ListWidgets(ctx context.Context, dashboardID string) ([]DashboardWidget, error) {
	return s.WidgetRepo.FindByDashboard(ctx, dashboardID)
}

// Layout projects the dashboard's widgets into grid descriptors, attaching
// the per-type minimums from the sizing table.
func (s *WidgetServiceImpl) Layout(ctx context.Context, dashboardID string) ([]LayoutItem, error) {
	widgets, err := s.WidgetRepo.FindByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, err
	}

	items := make([]LayoutItem, 0, len(widgets))
	for _, w := range widgets {
		rule := SizeRuleFor(w.WidgetType)
		items = append(items, LayoutItem{
			I:    w.ID.Hex(),
			X:    w.Position.X,
			Y:    w.Position.Y,
			W:    w.Position.W,
			H:    w.Position.H,
			MinW: rule.MinW,
			MinH: rule.MinH,
		})
	}
	return items, nil
}

// AddWidget inserts a new widget row. When position is nil the widget is
// stacked at the left edge below everything already placed. z_index is
// always written as 0, there is no stacking-order computation.
func (s *WidgetServiceImpl) AddWidget(ctx context.Context, dashboardID string, widgetType common_models.WidgetType, content map[string]interface{}, position *common_models.Position, config map[string]interface{}) (*DashboardWidget, error) {
	if !common_models.ValidWidgetTypes[widgetType] {
		return nil, fmt.Errorf("invalid widget type '%s'", widgetType)
	}

	existing, err := s.WidgetRepo.FindByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, err
	}

	var pos common_models.Position
	if position != nil {
		pos = *position
	} else {
		pos = NextPosition(existing, widgetType)
	}

	oid, err := primitive.ObjectIDFromHex(dashboardID)
	if err != nil {
		return nil, err
	}

	w := &DashboardWidget{
		DashboardID: oid,
		WidgetType:  widgetType,
		Content:     content,
		Position:    pos,
		Config:      config,
		ZIndex:      0,
	}

	if err := s.WidgetRepo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.Logger.Info("widget added",
		zap.String("dashboard_id", dashboardID),
		zap.String("widget_id", w.ID.Hex()),
		zap.String("widget_type", string(widgetType)))

	return w, nil
}

func (s *WidgetServiceImpl) UpdateWidgetPosition(ctx context.Context, widgetID string, position common_models.Position) error {
	return s.WidgetRepo.UpdatePosition(ctx, widgetID, position)
}

func (s *WidgetServiceImpl) UpdateWidgetConfig(ctx context.Context, widgetID string, config map[string]interface{}) error {
	return s.WidgetRepo.UpdateConfig(ctx, widgetID, config)
}

func (s *WidgetServiceImpl) DeleteWidget(ctx context.Context, widgetID string) error {
	return s.WidgetRepo.Delete(ctx, widgetID)
}

// BulkUpdatePositions fires one position update per entry concurrently and
// waits for all of them; the first failure is returned. Updates that already
// landed are not rolled back.
func (s *WidgetServiceImpl) BulkUpdatePositions(ctx context.Context, updates []PositionUpdate) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, update := range updates {
		update := update
		g.Go(func() error {
			return s.WidgetRepo.UpdatePosition(ctx, update.ID, update.Position)
		})
	}

	return g.Wait()
}
