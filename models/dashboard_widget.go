package models

import (
	"time"

	"gorm.io/datatypes"
)

// DashboardWidget stores one widget's placement and configuration.
// Writes are benign last-writer-wins upserts keyed by Slug.
type DashboardWidget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Slug     string         `gorm:"column:slug;uniqueIndex;size:64" json:"slug"`
	Title    string         `gorm:"column:title;size:255" json:"title"`
	Enabled  bool           `gorm:"column:enabled;default:true" json:"enabled"`
	Position int            `gorm:"column:position" json:"position"`
	Layout   datatypes.JSON `gorm:"column:layout" json:"layout,omitempty"`
}
