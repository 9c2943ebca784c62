package savedwidget

import (
	"context"
	"time"

	common_models "go-canvas/internal/common/models"
	"go-canvas/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type SavedWidgetService interface {
	SaveChartWidget(ctx context.Context, userID primitive.ObjectID, c1Response, query string) (*SavedWidget, error)
	SaveEmojiWidget(ctx context.Context, userID primitive.ObjectID, emoji, size string) (*SavedWidget, error)
	SaveTextWidget(ctx context.Context, userID primitive.ObjectID, text string, fontSize float64, color, fontWeight, textAlign string) (*SavedWidget, error)
	ListSavedWidgets(ctx context.Context, userID primitive.ObjectID) ([]SavedWidget, error)
	GetWidget(ctx context.Context, userID primitive.ObjectID, id string) (*SavedWidget, error)
	RemoveSavedWidget(ctx context.Context, userID primitive.ObjectID, id string) error
	ClearSavedWidgets(ctx context.Context, userID primitive.ObjectID) error
}

type SavedWidgetServiceImpl struct {
	SavedWidgetRepo SavedWidgetRepository
	Logger          *zap.Logger
}

func NewSavedWidgetService(savedWidgetRepo SavedWidgetRepository, logger *zap.Logger) SavedWidgetService {
	return &SavedWidgetServiceImpl{
		SavedWidgetRepo: savedWidgetRepo,
		Logger:          logger,
	}
}

// TruncatePreview shortens a query for the saved-widget preview field,
// appending an ellipsis when anything was cut.
func TruncatePreview(query string) string {
	runes := []rune(query)
	if len(runes) <= PreviewLimit {
		return query
	}
	return string(runes[:PreviewLimit]) + "..."
}

func (s *SavedWidgetServiceImpl) SaveChartWidget(ctx context.Context, userID primitive.ObjectID, c1Response, query string) (*SavedWidget, error) {
	widget := &SavedWidget{
		ID:            utils.LocalWidgetID(string(common_models.WidgetTypeChart)),
		UserID:        userID,
		Type:          common_models.WidgetTypeChart,
		C1Response:    c1Response,
		OriginalQuery: query,
		Preview:       TruncatePreview(query),
		Timestamp:     time.Now().Format(time.RFC3339),
	}

	if err := s.SavedWidgetRepo.Create(ctx, widget); err != nil {
		return nil, err
	}

	s.Logger.Info("chart widget saved",
		zap.String("widget_id", widget.ID),
		zap.String("user_id", userID.Hex()))

	return widget, nil
}

func (s *SavedWidgetServiceImpl) SaveEmojiWidget(ctx context.Context, userID primitive.ObjectID, emoji, size string) (*SavedWidget, error) {
	widget := &SavedWidget{
		ID:     utils.LocalWidgetID(string(common_models.WidgetTypeEmoji)),
		UserID: userID,
		Type:   common_models.WidgetTypeEmoji,
		Emoji:  emoji,
		Size:   size,
	}

	if err := s.SavedWidgetRepo.Create(ctx, widget); err != nil {
		return nil, err
	}

	return widget, nil
}

func (s *SavedWidgetServiceImpl) SaveTextWidget(ctx context.Context, userID primitive.ObjectID, text string, fontSize float64, color, fontWeight, textAlign string) (*SavedWidget, error) {
	widget := &SavedWidget{
		ID:         utils.LocalWidgetID(string(common_models.WidgetTypeText)),
		UserID:     userID,
		Type:       common_models.WidgetTypeText,
		Text:       text,
		FontSize:   fontSize,
		Color:      color,
		FontWeight: fontWeight,
		TextAlign:  textAlign,
	}

	if err := s.SavedWidgetRepo.Create(ctx, widget); err != nil {
		return nil, err
	}

	return widget, nil
}

func (s *SavedWidgetServiceImpl) ListSavedWidgets(ctx context.Context, userID primitive.ObjectID) ([]SavedWidget, error) {
	return s.SavedWidgetRepo.FindByUser(ctx, userID)
}

func (s *SavedWidgetServiceImpl) GetWidget(ctx context.Context, userID primitive.ObjectID, id string) (*SavedWidget, error) {
	return s.SavedWidgetRepo.Get(ctx, userID, id)
}

func (s *SavedWidgetServiceImpl) RemoveSavedWidget(ctx context.Context, userID primitive.ObjectID, id string) error {
	return s.SavedWidgetRepo.Delete(ctx, userID, id)
}

func (s *SavedWidgetServiceImpl) ClearSavedWidgets(ctx context.Context, userID primitive.ObjectID) error {
	return s.SavedWidgetRepo.DeleteByUser(ctx, userID)
}
