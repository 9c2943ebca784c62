package dashboard

import (
	"context"
	"errors"

	"go-canvas/internal/features/widget"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MaxDashboardsPerUser caps how many dashboards one user may own. The check
// is a fresh read before insert, not a transaction, so two concurrent
// creations can still race past it.
const MaxDashboardsPerUser = 3

var (
	ErrNotAuthenticated  = errors.New("user not authenticated")
	ErrDashboardQuota    = errors.New("maximum of 3 dashboards reached")
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrAccessDenied      = errors.New("access denied: dashboard belongs to another user")
)

type DashboardService interface {
	ListUserDashboards(ctx context.Context, userID primitive.ObjectID) ([]Dashboard, error)
	CreateDashboard(ctx context.Context, userID primitive.ObjectID, title, description string) (*Dashboard, error)
	GetDashboard(ctx context.Context, id string, userID primitive.ObjectID) (*Dashboard, error)
	UpdateDashboard(ctx context.Context, id string, update DashboardUpdate, userID primitive.ObjectID) (*Dashboard, error)
	DeleteDashboard(ctx context.Context, id string, userID primitive.ObjectID) error
}

type DashboardServiceImpl struct {
	DashboardRepo DashboardRepository
	WidgetRepo    widget.WidgetRepository
	Logger        *zap.Logger
}

func NewDashboardService(dashboardRepo DashboardRepository, widgetRepo widget.WidgetRepository, logger *zap.Logger) DashboardService {
	return &DashboardServiceImpl{
		DashboardRepo: dashboardRepo,
		WidgetRepo:    widgetRepo,
		Logger:        logger,
	}
}

func (s *DashboardServiceImpl) ListUserDashboards(ctx context.Context, userID primitive.ObjectID) ([]Dashboard, error) {
	return s.DashboardRepo.FindByUserID(ctx, userID)
}

func (s *DashboardServiceImpl) CreateDashboard(ctx context.Context, userID primitive.ObjectID, title, description string) (*Dashboard, error) {
	if userID.IsZero() {
		return nil, ErrNotAuthenticated
	}
	if title == "" {
		return nil, errors.New("title is required")
	}

	count, err := s.DashboardRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= MaxDashboardsPerUser {
		return nil, ErrDashboardQuota
	}

	dashboard := &Dashboard{
		UserID:      userID,
		Title:       title,
		Description: description,
		LayoutConfig: LayoutConfig{
			Cols:      DefaultCols,
			RowHeight: DefaultRowHeight,
		},
		// First dashboard ever created becomes the default and the flag
		// is never recomputed afterward, deletions included.
		IsDefault: count == 0,
	}

	if err := s.DashboardRepo.Create(ctx, dashboard); err != nil {
		return nil, err
	}

	s.Logger.Info("dashboard created",
		zap.String("dashboard_id", dashboard.ID.Hex()),
		zap.String("user_id", userID.Hex()),
		zap.Bool("is_default", dashboard.IsDefault))

	return dashboard, nil
}

func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, id string, userID primitive.ObjectID) (*Dashboard, error) {
	dashboard, err := s.DashboardRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dashboard.UserID != userID {
		return nil, ErrAccessDenied
	}

	return dashboard, nil
}

func (s *DashboardServiceImpl) UpdateDashboard(ctx context.Context, id string, update DashboardUpdate, userID primitive.ObjectID) (*Dashboard, error) {
	existing, err := s.DashboardRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		return nil, ErrAccessDenied
	}

	if update.Title != nil && *update.Title == "" {
		return nil, errors.New("title is required")
	}

	return s.DashboardRepo.Update(ctx, id, update)
}

// DeleteDashboard removes the dashboard row and cascades its widgets. A
// crash between the two deletes leaves orphans for the maintenance sweep.
func (s *DashboardServiceImpl) DeleteDashboard(ctx context.Context, id string, userID primitive.ObjectID) error {
	existing, err := s.DashboardRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if existing.UserID != userID {
		return ErrAccessDenied
	}

	if err := s.DashboardRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.WidgetRepo.DeleteByDashboard(ctx, id); err != nil {
		s.Logger.Error("widget cascade failed",
			zap.String("dashboard_id", id),
			zap.Error(err))
		return err
	}

	s.Logger.Info("dashboard deleted",
		zap.String("dashboard_id", id),
		zap.String("user_id", userID.Hex()))

	return nil
}
