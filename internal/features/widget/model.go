package widget

import (
	"time"

	common_models "go-canvas/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardWidget is a single placed widget row. Content is free-form JSON
// whose shape depends on widget_type; the service validates the type, not
// the content shape.
type DashboardWidget struct {
	ID          primitive.ObjectID       `json:"id" bson:"_id,omitempty"`
	DashboardID primitive.ObjectID       `json:"dashboard_id" bson:"dashboard_id"`
	WidgetType  common_models.WidgetType `json:"widget_type" bson:"widget_type"`
	Content     map[string]interface{}   `json:"content" bson:"content"`
	Position    common_models.Position   `json:"position" bson:"position"`
	Config      map[string]interface{}   `json:"config,omitempty" bson:"config,omitempty"`
	ZIndex      int                      `json:"z_index" bson:"z_index"`
	CreatedAt   time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at" bson:"updated_at"`
}

// PositionUpdate is one entry of a bulk layout save.
type PositionUpdate struct {
	ID       string                 `json:"id"`
	Position common_models.Position `json:"position"`
}

// LayoutItem is the grid-layout descriptor consumed by the drag/resize grid.
type LayoutItem struct {
	I    string `json:"i"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	MinW int    `json:"minW"`
	MinH int    `json:"minH"`
}
