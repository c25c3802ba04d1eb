package utils

import (
	"fmt"
	"slices"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

// ValidateWeeklySchedules checks a set of weekly-hours rows before they are
// written. Days must be unique within the set; open days need a well-formed
// window and a supported booking interval. Times on closed days are
// ignored.
func ValidateWeeklySchedules(schedules []domain.Schedule) error {
	seen := make(map[int32]bool)

	for i, s := range schedules {
		if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
			return fmt.Errorf("schedule %d: day of week must be between 0 and 6", i)
		}
		if seen[s.DayOfWeek] {
			return fmt.Errorf("schedule %d: duplicate day of week %d", i, s.DayOfWeek)
		}
		seen[s.DayOfWeek] = true

		if !s.IsOpen {
			continue
		}

		openTime, err := time.Parse("15:04", s.OpenTime)
		if err != nil {
			return fmt.Errorf("schedule %d: opening time is malformed", i)
		}
		closeTime, err := time.Parse("15:04", s.CloseTime)
		if err != nil {
			return fmt.Errorf("schedule %d: closing time is malformed", i)
		}
		if !closeTime.After(openTime) {
			return fmt.Errorf("schedule %d: closing time must be after opening time", i)
		}

		if !slices.Contains(domain.BookingIntervals, s.BookingInterval) {
			return fmt.Errorf("schedule %d: booking interval must be one of 15, 30, 45 or 60 minutes", i)
		}
	}

	return nil
}
