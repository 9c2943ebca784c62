package savedwidget

import (
	"time"

	common_models "go-canvas/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PreviewLimit is how many characters of the originating query survive into
// the preview before an ellipsis is appended.
const PreviewLimit = 100

// SavedWidget is a widget payload a user produced (from the chat assistant
// or the toolbar builders) but has not yet placed on a canvas. Placing one
// copies its content into a new dashboard widget row; the saved entry is
// kept, so the same widget can be placed any number of times. The cache is
// unbounded on purpose.
//
// The id keeps the client-style "<type>-<millis>-<random>" format.
type SavedWidget struct {
	ID        string                   `json:"id" bson:"_id"`
	UserID    primitive.ObjectID       `json:"user_id" bson:"user_id"`
	Type      common_models.WidgetType `json:"type" bson:"type"`
	CreatedAt time.Time                `json:"created_at" bson:"created_at"`

	// chart
	C1Response    string `json:"c1Response,omitempty" bson:"c1_response,omitempty"`
	OriginalQuery string `json:"originalQuery,omitempty" bson:"original_query,omitempty"`
	Preview       string `json:"preview,omitempty" bson:"preview,omitempty"`
	Timestamp     string `json:"timestamp,omitempty" bson:"timestamp,omitempty"`

	// emoji
	Emoji string `json:"emoji,omitempty" bson:"emoji,omitempty"`
	Size  string `json:"size,omitempty" bson:"size,omitempty"`

	// text
	Text       string  `json:"text,omitempty" bson:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty" bson:"font_size,omitempty"`
	Color      string  `json:"color,omitempty" bson:"color,omitempty"`
	FontWeight string  `json:"fontWeight,omitempty" bson:"font_weight,omitempty"`
	TextAlign  string  `json:"textAlign,omitempty" bson:"text_align,omitempty"`
}

// Content builds the dashboard-widget content payload for placement.
func (w *SavedWidget) Content() map[string]interface{} {
	switch w.Type {
	case common_models.WidgetTypeEmoji:
		return map[string]interface{}{
			"emoji": w.Emoji,
			"size":  w.Size,
		}
	case common_models.WidgetTypeText:
		content := map[string]interface{}{
			"text":       w.Text,
			"fontSize":   w.FontSize,
			"color":      w.Color,
			"fontWeight": w.FontWeight,
		}
		if w.TextAlign != "" {
			content["textAlign"] = w.TextAlign
		}
		return content
	default: // chart
		return map[string]interface{}{
			"c1Response":    w.C1Response,
			"originalQuery": w.OriginalQuery,
			"timestamp":     w.Timestamp,
		}
	}
}
