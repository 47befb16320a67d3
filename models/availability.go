package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Availability is remaining sellable inventory for one (date, room type).
type Availability struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date           *time.Time `gorm:"column:date;index;uniqueIndex:uniq_avail_date_type" json:"date,omitempty"`
	RoomType       string     `gorm:"column:room_type;size:100;uniqueIndex:uniq_avail_date_type" json:"roomType"`
	AvailableCount int        `gorm:"column:available_count" json:"availableCount"`
	ClosedFlag     string     `gorm:"column:closed_flag;size:8" json:"closedFlag,omitempty"`
	LastUpdatedAt  *time.Time `gorm:"column:last_updated_at" json:"lastUpdatedAt,omitempty"`
}

// IsClosed: the literal marker "x" closes the date regardless of count;
// a count of exactly 0 closes it too.
func (a Availability) IsClosed() bool {
	return strings.EqualFold(strings.TrimSpace(a.ClosedFlag), "x") || a.AvailableCount == 0
}

// ClosureReasons distinguishes an operator close-out ("ferme") from a
// sold-out date ("stock"). Both can apply to the same row.
func (a Availability) ClosureReasons() []string {
	reasons := []string{}
	if strings.EqualFold(strings.TrimSpace(a.ClosedFlag), "x") {
		reasons = append(reasons, "ferme")
	}
	if a.AvailableCount == 0 {
		reasons = append(reasons, "stock")
	}
	return reasons
}
