package dashboard

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LayoutConfig is the per-dashboard grid configuration. Cols is 12 in
// practice; RowHeight falls back to 80 when absent.
type LayoutConfig struct {
	Cols      int `json:"cols" bson:"cols"`
	RowHeight int `json:"rowHeight" bson:"row_height"`
}

const (
	DefaultCols      = 12
	DefaultRowHeight = 80
)

type Dashboard struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	LayoutConfig LayoutConfig       `json:"layout_config" bson:"layout_config"`
	IsDefault    bool               `json:"is_default" bson:"is_default"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// DashboardUpdate carries the partial-update fields; nil means unchanged.
type DashboardUpdate struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	LayoutConfig *LayoutConfig `json:"layout_config"`
}
