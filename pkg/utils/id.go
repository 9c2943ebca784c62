package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalWidgetID builds the client-style id used for saved widgets,
// e.g. "chart-1718000000000-3f2a9c1d". The prefix is the widget type.
func LocalWidgetID(widgetType string) string {
	random := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%d-%s", widgetType, time.Now().UnixMilli(), random)
}
