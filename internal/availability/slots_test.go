package availability

import (
	"testing"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booked(times ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(times))
	for _, t := range times {
		m[t] = struct{}{}
	}
	return m
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		interval int32
		booked   map[string]struct{}
		want     []string
	}{
		{
			name: "close is exclusive", open: "09:00", close: "10:00", interval: 30,
			want: []string{"09:00", "09:30"},
		},
		{
			name: "minute overflow carries into the hour", open: "09:45", close: "11:00", interval: 30,
			want: []string{"09:45", "10:15", "10:45"},
		},
		{
			name: "booked times are skipped", open: "09:00", close: "10:00", interval: 30,
			booked: booked("09:30"),
			want:   []string{"09:00"},
		},
		{
			name: "partial slot before close is dropped", open: "09:00", close: "09:50", interval: 30,
			want: []string{"09:00", "09:30"},
		},
		{
			name: "fully booked day", open: "09:00", close: "10:00", interval: 30,
			booked: booked("09:00", "09:30"),
			want:   []string{},
		},
		{
			name: "open equals close", open: "09:00", close: "09:00", interval: 30,
			want: []string{},
		},
		{
			name: "hourly interval", open: "10:00", close: "13:00", interval: 60,
			want: []string{"10:00", "11:00", "12:00"},
		},
		{
			name: "quarter hour interval", open: "09:00", close: "10:00", interval: 15,
			want: []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name: "zero interval yields nothing", open: "09:00", close: "10:00", interval: 0,
			want: []string{},
		},
		{
			name: "malformed open time yields nothing", open: "9am", close: "10:00", interval: 30,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slots(tt.open, tt.close, tt.interval, tt.booked)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotsNeverNil(t *testing.T) {
	got := Slots("09:00", "09:00", 30, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWeekday(t *testing.T) {
	// 2024-01-08 is a Monday
	day, err := Weekday("2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, int32(1), day)

	day, err = Weekday("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, int32(0), day)

	_, err = Weekday("08-01-2024")
	assert.Error(t, err)
}

func TestForDate(t *testing.T) {
	schedules := []domain.Schedule{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "10:00", BookingInterval: 30},
		{DayOfWeek: 2, IsOpen: false, OpenTime: "09:00", CloseTime: "18:00", BookingInterval: 30},
	}

	// Monday is open
	slots, err := ForDate(schedules, "2024-01-08", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)

	// Tuesday exists but is closed
	slots, err = ForDate(schedules, "2024-01-09", nil)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Wednesday has no schedule row at all
	slots, err = ForDate(schedules, "2024-01-10", nil)
	require.NoError(t, err)
	assert.Empty(t, slots)

	_, err = ForDate(schedules, "not-a-date", nil)
	assert.Error(t, err)
}

// Booking a slot and cancelling it must round-trip through availability:
// the slot disappears while the booking is active and comes back once the
// exclusion set no longer contains it.
func TestForDateCancelFreesSlot(t *testing.T) {
	schedules := []domain.Schedule{
		{DayOfWeek: 1, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00", BookingInterval: 30},
	}

	free, err := ForDate(schedules, "2024-01-08", booked("09:00"))
	require.NoError(t, err)
	assert.NotContains(t, free, "09:00")
	assert.Contains(t, free, "09:30")

	free, err = ForDate(schedules, "2024-01-08", booked())
	require.NoError(t, err)
	assert.Contains(t, free, "09:00")
}
