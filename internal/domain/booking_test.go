package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingActive(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}
	assert.True(t, b.Active())

	b.Status = BookingStatusCompleted
	assert.True(t, b.Active())

	// only cancelled bookings release their slot
	b.Status = BookingStatusCancelled
	assert.False(t, b.Active())
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus("Confirmed"))
	assert.True(t, ValidBookingStatus("Cancelled"))
	assert.True(t, ValidBookingStatus("Completed"))
	assert.False(t, ValidBookingStatus("confirmed"))
	assert.False(t, ValidBookingStatus("Pending"))
	assert.False(t, ValidBookingStatus(""))
}
