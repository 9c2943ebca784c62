package dashboard

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not authenticated", ErrNotAuthenticated, fiber.StatusUnauthorized},
		{"access denied", ErrAccessDenied, fiber.StatusForbidden},
		{"quota reached", ErrDashboardQuota, fiber.StatusForbidden},
		{"not found", ErrDashboardNotFound, fiber.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("lookup"), ErrDashboardNotFound), fiber.StatusNotFound},
		{"anything else", errors.New("db down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusForServiceError(tt.err); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
