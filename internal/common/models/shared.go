package models

import "time"

// WidgetType is the closed set of widget kinds a canvas can render.
type WidgetType string

const (
	WidgetTypeChart       WidgetType = "chart"
	WidgetTypeEmoji       WidgetType = "emoji"
	WidgetTypeText        WidgetType = "text"
	WidgetTypeCustomChart WidgetType = "custom-chart"
)

// ValidWidgetTypes is used wherever a widget_type needs validating on write.
var ValidWidgetTypes = map[WidgetType]bool{
	WidgetTypeChart:       true,
	WidgetTypeEmoji:       true,
	WidgetTypeText:        true,
	WidgetTypeCustomChart: true,
}

// Position is a widget's placement in grid-cell units on the 12-column grid.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
	W int `json:"w" bson:"w"`
	H int `json:"h" bson:"h"`
}

// Log is the record shape the async zap sink writes to the logs collection.
type Log struct {
	Message      string    `bson:"message" json:"message"`
	Caller       string    `bson:"caller" json:"caller"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
