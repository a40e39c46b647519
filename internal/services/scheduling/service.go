// Package scheduling answers booking slot availability queries.
package scheduling

import (
	"fmt"
	"strings"

	"github.com/ventaroai/storefront/internal/domain/booking"
)

// Service serves the slot list for a requested date. Availability is a fixed
// constant; real calendars live outside this system.
type Service struct{}

// New constructs a scheduling service.
func New() *Service {
	return &Service{}
}

// SlotsFor returns the available slots for the given date. The date is
// required but only echoed back; it does not affect the slot list.
func (s *Service) SlotsFor(date string) ([]string, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("date parameter is required")
	}
	return booking.AvailableSlots(), nil
}
