package models

import "time"

// HotelSetting is the hotel profile shown in the dashboard header.
type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	Website   string    `gorm:"size:255" json:"website"`
	Logo      string    `gorm:"size:255" json:"logo"`
	Currency  string    `gorm:"size:8;default:EUR" json:"currency"`
	Timezone  string    `gorm:"size:64;default:Europe/Paris" json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
