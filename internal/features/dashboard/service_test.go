package dashboard

import (
	"context"
	"errors"
	"testing"

	common_models "go-canvas/internal/common/models"
	"go-canvas/internal/features/widget"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockDashboardRepo struct {
	Dashboards []Dashboard
}

func (m *MockDashboardRepo) Create(ctx context.Context, dashboard *Dashboard) error {
	dashboard.ID = primitive.NewObjectID()
	m.Dashboards = append(m.Dashboards, *dashboard)
	return nil
}

func (m *MockDashboardRepo) Get(ctx context.Context, id string) (*Dashboard, error) {
	for i := range m.Dashboards {
		if m.Dashboards[i].ID.Hex() == id {
			d := m.Dashboards[i]
			return &d, nil
		}
	}
	return nil, ErrDashboardNotFound
}

func (m *MockDashboardRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]Dashboard, error) {
	var out []Dashboard
	for _, d := range m.Dashboards {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MockDashboardRepo) CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, d := range m.Dashboards {
		if d.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockDashboardRepo) Update(ctx context.Context, id string, update DashboardUpdate) (*Dashboard, error) {
	for i := range m.Dashboards {
		if m.Dashboards[i].ID.Hex() == id {
			if update.Title != nil {
				m.Dashboards[i].Title = *update.Title
			}
			if update.Description != nil {
				m.Dashboards[i].Description = *update.Description
			}
			if update.LayoutConfig != nil {
				m.Dashboards[i].LayoutConfig = *update.LayoutConfig
			}
			d := m.Dashboards[i]
			return &d, nil
		}
	}
	return nil, ErrDashboardNotFound
}

func (m *MockDashboardRepo) Delete(ctx context.Context, id string) error {
	for i := range m.Dashboards {
		if m.Dashboards[i].ID.Hex() == id {
			m.Dashboards = append(m.Dashboards[:i], m.Dashboards[i+1:]...)
			return nil
		}
	}
	return ErrDashboardNotFound
}

func (m *MockDashboardRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for _, d := range m.Dashboards {
		if d.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockDashboardRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

type MockWidgetRepo struct {
	CascadedDashboardID string
}

func (m *MockWidgetRepo) Create(ctx context.Context, w *widget.DashboardWidget) error {
	return nil
}
func (m *MockWidgetRepo) Get(ctx context.Context, id string) (*widget.DashboardWidget, error) {
	return nil, errors.New("widget not found")
}
func (m *MockWidgetRepo) FindByDashboard(ctx context.Context, dashboardID string) ([]widget.DashboardWidget, error) {
	return []widget.DashboardWidget{}, nil
}
func (m *MockWidgetRepo) UpdatePosition(ctx context.Context, id string, position common_models.Position) error {
	return nil
}
func (m *MockWidgetRepo) UpdateConfig(ctx context.Context, id string, config map[string]interface{}) error {
	return nil
}
func (m *MockWidgetRepo) Delete(ctx context.Context, id string) error {
	return nil
}
func (m *MockWidgetRepo) DeleteByDashboard(ctx context.Context, dashboardID string) error {
	m.CascadedDashboardID = dashboardID
	return nil
}
func (m *MockWidgetRepo) DistinctDashboardIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	return nil, nil
}
func (m *MockWidgetRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func newTestService(repo *MockDashboardRepo, widgetRepo *MockWidgetRepo) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		DashboardRepo: repo,
		WidgetRepo:    widgetRepo,
		Logger:        zap.NewNop(),
	}
}

func TestCreateDashboardQuota(t *testing.T) {
	repo := &MockDashboardRepo{}
	service := newTestService(repo, &MockWidgetRepo{})
	userID := primitive.NewObjectID()
	ctx := context.Background()

	for i := 0; i < MaxDashboardsPerUser; i++ {
		if _, err := service.CreateDashboard(ctx, userID, "Dashboard", ""); err != nil {
			t.Fatalf("Unexpected error creating dashboard %d: %v", i+1, err)
		}
	}

	_, err := service.CreateDashboard(ctx, userID, "One Too Many", "")
	if !errors.Is(err, ErrDashboardQuota) {
		t.Errorf("Expected ErrDashboardQuota, got %v", err)
	}
	if len(repo.Dashboards) != MaxDashboardsPerUser {
		t.Errorf("Expected %d dashboards, got %d", MaxDashboardsPerUser, len(repo.Dashboards))
	}

	// The quota is per user, another user still has room.
	otherID := primitive.NewObjectID()
	if _, err := service.CreateDashboard(ctx, otherID, "Other", ""); err != nil {
		t.Errorf("Unexpected error for second user: %v", err)
	}
}

func TestCreateDashboardDefaultFlag(t *testing.T) {
	repo := &MockDashboardRepo{}
	service := newTestService(repo, &MockWidgetRepo{})
	userID := primitive.NewObjectID()
	ctx := context.Background()

	first, err := service.CreateDashboard(ctx, userID, "First", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !first.IsDefault {
		t.Errorf("Expected first dashboard to be default")
	}

	second, err := service.CreateDashboard(ctx, userID, "Second", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.IsDefault {
		t.Errorf("Expected second dashboard to not be default")
	}

	// Deleting the default does not promote anything; the next creation is
	// not default either because the count is no longer zero.
	if err := service.DeleteDashboard(ctx, first.ID.Hex(), userID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	third, err := service.CreateDashboard(ctx, userID, "Third", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if third.IsDefault {
		t.Errorf("Expected third dashboard to not be default after deletion")
	}
}

func TestCreateDashboardValidation(t *testing.T) {
	service := newTestService(&MockDashboardRepo{}, &MockWidgetRepo{})
	ctx := context.Background()

	_, err := service.CreateDashboard(ctx, primitive.NilObjectID, "Title", "")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Expected ErrNotAuthenticated, got %v", err)
	}

	_, err = service.CreateDashboard(ctx, primitive.NewObjectID(), "", "")
	if err == nil {
		t.Errorf("Expected error for empty title")
	}
}

func TestCreateDashboardLayoutDefaults(t *testing.T) {
	service := newTestService(&MockDashboardRepo{}, &MockWidgetRepo{})

	d, err := service.CreateDashboard(context.Background(), primitive.NewObjectID(), "Grid", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.LayoutConfig.Cols != DefaultCols {
		t.Errorf("Expected %d cols, got %d", DefaultCols, d.LayoutConfig.Cols)
	}
	if d.LayoutConfig.RowHeight != DefaultRowHeight {
		t.Errorf("Expected row height %d, got %d", DefaultRowHeight, d.LayoutConfig.RowHeight)
	}
}

func TestDashboardOwnership(t *testing.T) {
	repo := &MockDashboardRepo{}
	service := newTestService(repo, &MockWidgetRepo{})
	ctx := context.Background()

	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	d, err := service.CreateDashboard(ctx, owner, "Private", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := service.GetDashboard(ctx, d.ID.Hex(), stranger); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied on get, got %v", err)
	}

	title := "Hijacked"
	if _, err := service.UpdateDashboard(ctx, d.ID.Hex(), DashboardUpdate{Title: &title}, stranger); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied on update, got %v", err)
	}

	if err := service.DeleteDashboard(ctx, d.ID.Hex(), stranger); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied on delete, got %v", err)
	}
	if len(repo.Dashboards) != 1 {
		t.Errorf("Expected dashboard to survive denied delete")
	}
}

func TestDeleteDashboardCascadesWidgets(t *testing.T) {
	repo := &MockDashboardRepo{}
	widgetRepo := &MockWidgetRepo{}
	service := newTestService(repo, widgetRepo)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	d, err := service.CreateDashboard(ctx, userID, "Doomed", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := service.DeleteDashboard(ctx, d.ID.Hex(), userID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if widgetRepo.CascadedDashboardID != d.ID.Hex() {
		t.Errorf("Expected widget cascade for %s, got %q", d.ID.Hex(), widgetRepo.CascadedDashboardID)
	}
}

func TestUpdateDashboardEmptyTitleRejected(t *testing.T) {
	repo := &MockDashboardRepo{}
	service := newTestService(repo, &MockWidgetRepo{})
	ctx := context.Background()

	userID := primitive.NewObjectID()
	d, err := service.CreateDashboard(ctx, userID, "Named", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	empty := ""
	if _, err := service.UpdateDashboard(ctx, d.ID.Hex(), DashboardUpdate{Title: &empty}, userID); err == nil {
		t.Errorf("Expected error when clearing title")
	}

	// A nil title leaves the existing one alone.
	desc := "notes"
	updated, err := service.UpdateDashboard(ctx, d.ID.Hex(), DashboardUpdate{Description: &desc}, userID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.Title != "Named" {
		t.Errorf("Expected title preserved, got %q", updated.Title)
	}
}
