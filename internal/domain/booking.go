package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking carries a snapshot of the business and user details taken at
// booking time, so the record stays meaningful if either is later changed
// or deleted.
type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	BusinessID      int64         `json:"businessId"`
	BusinessName    string        `json:"businessName"`
	BusinessAddress string        `json:"businessAddress"`
	UserName        string        `json:"userName"`
	UserEmail       string        `json:"userEmail"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Time            string        `json:"time"` // HH:MM
	Service         *string       `json:"service"`
	Notes           *string       `json:"notes"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Active reports whether the booking counts against availability.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}

// IsTerminal reports whether no further transition is defined out of the
// status. Cancelled and Completed are terminal; the admin endpoint does not
// enforce this, it only documents the intended lifecycle.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}
