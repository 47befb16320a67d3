package models

import (
	"time"

	"gorm.io/gorm"
)

// MarketSnapshot ("aperçu") is one calendar day's market overview: own
// lowest published price, competitor-set median, demand index and a
// free-text events field. DemandIndex is stored raw — some source tables
// deliver 0–1 fractions, others 0–100 percentages — and is normalized by
// the signal extractor, not here.
type MarketSnapshot struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Date             *time.Time `gorm:"column:date;uniqueIndex" json:"date,omitempty"`
	OwnPrice         float64    `gorm:"column:own_price" json:"ownPrice"`
	CompetitorMedian float64    `gorm:"column:competitor_median" json:"competitorMedian"`
	DemandIndex      float64    `gorm:"column:demand_index" json:"demandIndex"`
	EventsText       string     `gorm:"column:events_text;type:text" json:"eventsText,omitempty"`
}
