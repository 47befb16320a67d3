package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a calendar event with a 0–10 demand-impact score. The impact
// applies to every date of [StartDate, EndDate] inclusive; EndDate
// defaults to StartDate when absent.
type Event struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `gorm:"column:name;size:255" json:"name"`
	StartDate   *time.Time `gorm:"column:start_date;index" json:"startDate,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate,omitempty"`
	ImpactScore float64    `gorm:"column:impact_score" json:"impactScore"`
}

// ImpactPercent maps the 0–10 score to a 0–100 percentage.
func (e Event) ImpactPercent() float64 {
	pct := e.ImpactScore * 10
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// EffectiveEnd returns EndDate, falling back to StartDate.
func (e Event) EffectiveEnd() *time.Time {
	if e.EndDate != nil {
		return e.EndDate
	}
	return e.StartDate
}
