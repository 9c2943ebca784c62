package widget

import (
	common_models "go-canvas/internal/common/models"
)

// SizeRule is the per-type grid sizing policy: minimums enforced by the
// grid at resize time, defaults used when a widget is first placed.
type SizeRule struct {
	MinW     int
	MinH     int
	DefaultW int
	DefaultH int
}

// sizeRules is the single lookup table consulted everywhere sizes are
// decided. Emoji widgets are the only type allowed down to a 1x1 cell.
var sizeRules = map[common_models.WidgetType]SizeRule{
	common_models.WidgetTypeEmoji: {MinW: 1, MinH: 1, DefaultW: 2, DefaultH: 2},
}

var defaultSizeRule = SizeRule{MinW: 2, MinH: 2, DefaultW: 4, DefaultH: 3}

// SizeRuleFor returns the sizing policy for a widget type.
func SizeRuleFor(widgetType common_models.WidgetType) SizeRule {
	if rule, ok := sizeRules[widgetType]; ok {
		return rule
	}
	return defaultSizeRule
}

// NextPosition computes where a newly added widget lands: always at the
// left edge, directly below the lowest existing widget. Horizontal gaps
// are never packed.
func NextPosition(existing []DashboardWidget, widgetType common_models.WidgetType) common_models.Position {
	rule := SizeRuleFor(widgetType)

	maxBottom := 0
	for _, w := range existing {
		if bottom := w.Position.Y + w.Position.H; bottom > maxBottom {
			maxBottom = bottom
		}
	}

	return common_models.Position{
		X: 0,
		Y: maxBottom,
		W: rule.DefaultW,
		H: rule.DefaultH,
	}
}
