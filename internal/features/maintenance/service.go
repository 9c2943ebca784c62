package maintenance

import (
	"context"
	"fmt"

	"go-canvas/internal/config"
	"go-canvas/internal/features/dashboard"
	"go-canvas/internal/features/widget"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MaintenanceService runs the periodic orphan-widget sweep. The dashboard
// delete path cascades widgets itself; the sweep picks up rows left behind
// when that cascade was interrupted.
type MaintenanceService interface {
	StartScheduler(ctx context.Context) error
	StopScheduler() error
	SweepOrphanedWidgets(ctx context.Context) (int, error)
}

type MaintenanceServiceImpl struct {
	DashboardRepo dashboard.DashboardRepository
	WidgetRepo    widget.WidgetRepository
	Schedule      string
	Logger        *zap.Logger

	scheduler *cron.Cron
}

func NewMaintenanceService(dashboardRepo dashboard.DashboardRepository, widgetRepo widget.WidgetRepository, cfg *config.Config, logger *zap.Logger) MaintenanceService {
	return &MaintenanceServiceImpl{
		DashboardRepo: dashboardRepo,
		WidgetRepo:    widgetRepo,
		Schedule:      cfg.SweepSchedule,
		Logger:        logger,
	}
}

func (s *MaintenanceServiceImpl) StartScheduler(ctx context.Context) error {
	s.scheduler = cron.New()

	_, err := s.scheduler.AddFunc(s.Schedule, func() {
		swept, err := s.SweepOrphanedWidgets(context.Background())
		if err != nil {
			s.Logger.Error("orphan widget sweep failed", zap.Error(err))
			return
		}
		if swept > 0 {
			s.Logger.Info("orphan widget sweep finished", zap.Int("dashboards_swept", swept))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule orphan sweep: %w", err)
	}

	s.scheduler.Start()
	return nil
}

func (s *MaintenanceServiceImpl) StopScheduler() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

// SweepOrphanedWidgets deletes widgets whose parent dashboard row no longer
// exists. Returns how many orphaned dashboard ids were cleaned up.
func (s *MaintenanceServiceImpl) SweepOrphanedWidgets(ctx context.Context) (int, error) {
	ids, err := s.WidgetRepo.DistinctDashboardIDs(ctx)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, id := range ids {
		exists, err := s.DashboardRepo.Exists(ctx, id)
		if err != nil {
			return swept, err
		}
		if exists {
			continue
		}

		if err := s.WidgetRepo.DeleteByDashboard(ctx, id.Hex()); err != nil {
			return swept, err
		}
		swept++
	}

	return swept, nil
}
