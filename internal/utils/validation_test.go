package utils

import (
	"testing"

	"github.com/bookingmap-cl/bookingmap/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateWeeklySchedules(t *testing.T) {
	open := func(day int32, openTime, closeTime string, interval int32) domain.Schedule {
		return domain.Schedule{DayOfWeek: day, IsOpen: true, OpenTime: openTime, CloseTime: closeTime, BookingInterval: interval}
	}

	tests := []struct {
		name      string
		schedules []domain.Schedule
		wantErr   bool
	}{
		{
			name: "valid week",
			schedules: []domain.Schedule{
				open(1, "09:00", "18:00", 30),
				open(2, "09:00", "18:00", 30),
				{DayOfWeek: 0, IsOpen: false},
			},
		},
		{
			name:      "duplicate day",
			schedules: []domain.Schedule{open(1, "09:00", "18:00", 30), open(1, "10:00", "17:00", 30)},
			wantErr:   true,
		},
		{
			name:      "day out of range",
			schedules: []domain.Schedule{open(7, "09:00", "18:00", 30)},
			wantErr:   true,
		},
		{
			name:      "close before open",
			schedules: []domain.Schedule{open(1, "18:00", "09:00", 30)},
			wantErr:   true,
		},
		{
			name:      "close equals open",
			schedules: []domain.Schedule{open(1, "09:00", "09:00", 30)},
			wantErr:   true,
		},
		{
			name:      "unsupported interval",
			schedules: []domain.Schedule{open(1, "09:00", "18:00", 20)},
			wantErr:   true,
		},
		{
			name:      "malformed open time",
			schedules: []domain.Schedule{open(1, "9am", "18:00", 30)},
			wantErr:   true,
		},
		{
			name: "closed day ignores times entirely",
			schedules: []domain.Schedule{
				{DayOfWeek: 6, IsOpen: false, OpenTime: "bogus", CloseTime: "", BookingInterval: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeeklySchedules(tt.schedules)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
