// Package availability turns a business's weekly hours into the list of
// bookable time slots for a concrete date.
package availability

import (
	"fmt"
	"time"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
)

// Slots enumerates slot start times from openTime up to, but never
// including, closeTime, advancing by interval minutes. Times already
// present in booked are skipped. Only the slot start is checked against
// closing time, not start plus duration, matching the booking grid the
// rest of the system uses.
//
// The result is in chronological order and empty (never nil) when the
// window admits no slot.
func Slots(openTime, closeTime string, interval int32, booked map[string]struct{}) []string {
	slots := []string{}

	openHour, openMinute, err := parseHHMM(openTime)
	if err != nil {
		return slots
	}
	closeHour, closeMinute, err := parseHHMM(closeTime)
	if err != nil {
		return slots
	}
	if interval <= 0 {
		return slots
	}

	hour, minute := openHour, openMinute
	for hour < closeHour || (hour == closeHour && minute < closeMinute) {
		slot := fmt.Sprintf("%02d:%02d", hour, minute)
		if _, taken := booked[slot]; !taken {
			slots = append(slots, slot)
		}

		minute += int(interval)
		hour += minute / 60
		minute %= 60
	}

	return slots
}

// ForDate resolves the schedule for the date's weekday and enumerates its
// free slots. A closed day, or a day without a schedule row, yields an
// empty list rather than an error.
func ForDate(schedules []domain.Schedule, date string, booked map[string]struct{}) ([]string, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return nil, err
	}

	for _, s := range schedules {
		if s.DayOfWeek == weekday && s.IsOpen {
			return Slots(s.OpenTime, s.CloseTime, s.BookingInterval, booked), nil
		}
	}

	return []string{}, nil
}

// Weekday maps a YYYY-MM-DD date to its day of week, 0 = Sunday.
func Weekday(date string) (int32, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return int32(t.Weekday()), nil
}

func parseHHMM(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
