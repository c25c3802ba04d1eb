package domain

import (
	"time"
)

type Review struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
