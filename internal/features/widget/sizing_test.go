package widget

import (
	"testing"

	common_models "go-canvas/internal/common/models"
)

func TestSizeRuleFor(t *testing.T) {
	tests := []struct {
		name       string
		widgetType common_models.WidgetType
		want       SizeRule
	}{
		{"emoji", common_models.WidgetTypeEmoji, SizeRule{MinW: 1, MinH: 1, DefaultW: 2, DefaultH: 2}},
		{"chart", common_models.WidgetTypeChart, SizeRule{MinW: 2, MinH: 2, DefaultW: 4, DefaultH: 3}},
		{"text", common_models.WidgetTypeText, SizeRule{MinW: 2, MinH: 2, DefaultW: 4, DefaultH: 3}},
		{"custom-chart", common_models.WidgetTypeCustomChart, SizeRule{MinW: 2, MinH: 2, DefaultW: 4, DefaultH: 3}},
		{"unknown falls back", common_models.WidgetType("mystery"), SizeRule{MinW: 2, MinH: 2, DefaultW: 4, DefaultH: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeRuleFor(tt.widgetType)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestNextPosition(t *testing.T) {
	tests := []struct {
		name       string
		existing   []DashboardWidget
		widgetType common_models.WidgetType
		wantX      int
		wantY      int
	}{
		{
			name:       "empty dashboard",
			existing:   nil,
			widgetType: common_models.WidgetTypeChart,
			wantX:      0,
			wantY:      0,
		},
		{
			name: "below single widget",
			existing: []DashboardWidget{
				{Position: common_models.Position{X: 0, Y: 0, W: 4, H: 3}},
			},
			widgetType: common_models.WidgetTypeText,
			wantX:      0,
			wantY:      3,
		},
		{
			name: "below lowest of several",
			existing: []DashboardWidget{
				{Position: common_models.Position{X: 0, Y: 0, W: 4, H: 3}},
				{Position: common_models.Position{X: 4, Y: 2, W: 2, H: 5}},
				{Position: common_models.Position{X: 6, Y: 1, W: 2, H: 2}},
			},
			widgetType: common_models.WidgetTypeEmoji,
			wantX:      0,
			wantY:      7,
		},
		{
			name: "gap on a row is not packed",
			existing: []DashboardWidget{
				{Position: common_models.Position{X: 8, Y: 0, W: 4, H: 2}},
			},
			widgetType: common_models.WidgetTypeEmoji,
			wantX:      0,
			wantY:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPosition(tt.existing, tt.widgetType)
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("Expected position %d,%d, got %d,%d", tt.wantX, tt.wantY, got.X, got.Y)
			}
			rule := SizeRuleFor(tt.widgetType)
			if got.W != rule.DefaultW || got.H != rule.DefaultH {
				t.Errorf("Expected default size %dx%d, got %dx%d", rule.DefaultW, rule.DefaultH, got.W, got.H)
			}
		})
	}
}
