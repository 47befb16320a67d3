package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Reservation is one booked stay segment as imported from the PMS export.
// Status is free text; cancellation is detected by substring because the
// upstream mixes French and English labels ("Annulée", "cancelled", ...).
type Reservation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string     `gorm:"column:reference_code;size:64;index" json:"referenceCode,omitempty"`
	ArrivalDate   *time.Time `gorm:"column:arrival_date;index" json:"arrivalDate,omitempty"`
	DepartureDate *time.Time `gorm:"column:departure_date" json:"departureDate,omitempty"`
	Status        string     `gorm:"column:status;size:64" json:"status"`
	Rooms         int        `gorm:"column:rooms" json:"rooms"`
	Nights        int        `gorm:"column:nights" json:"nights"`
	TotalAmount   float64    `gorm:"column:total_amount" json:"totalAmount"`
	PurchaseDate  *time.Time `gorm:"column:purchase_date;index" json:"purchaseDate,omitempty"`
	RoomType      string     `gorm:"column:room_type;size:100" json:"roomType"`
}

// IsCancelled matches "annul"/"cancel" case-insensitively, which covers
// the accented French variants after lowercasing.
func (r Reservation) IsCancelled() bool {
	s := strings.ToLower(r.Status)
	return strings.Contains(s, "annul") || strings.Contains(s, "cancel")
}

// RoomCount returns the booked room count, inferring 1 when the field is
// absent and 2 for connecting-room types.
func (r Reservation) RoomCount() int {
	if r.Rooms > 0 {
		return r.Rooms
	}
	rt := strings.ToLower(r.RoomType)
	if strings.Contains(rt, "communicant") || strings.Contains(rt, "connecting") {
		return 2
	}
	return 1
}
