package domain

import (
	"time"
)

type BusinessType string

const (
	BusinessTypePyme    BusinessType = "pyme"
	BusinessTypeCompany BusinessType = "company"
)

type Business struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Type         string       `json:"type"` // "bookable" or "info-only"
	BusinessType BusinessType `json:"businessType"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	OwnerID      *int64       `json:"ownerId"`
	AvgRating    *float64     `json:"avgRating"`
	ReviewCount  int64        `json:"reviewCount"`
	Schedules    []Schedule   `json:"schedules,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Schedule is one weekly-hours row. DayOfWeek follows time.Weekday
// numbering (0 = Sunday). There is at most one row per business and day.
type Schedule struct {
	ID              int64  `json:"id"`
	BusinessID      int64  `json:"businessId"`
	DayOfWeek       int32  `json:"dayOfWeek"`
	IsOpen          bool   `json:"isOpen"`
	OpenTime        string `json:"openTime"`  // HH:MM
	CloseTime       string `json:"closeTime"` // HH:MM
	BookingInterval int32  `json:"bookingInterval"`
}

// BookingIntervals are the slot lengths a business may choose from.
var BookingIntervals = []int32{15, 30, 45, 60}
