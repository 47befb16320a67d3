package services

import (
	"fmt"
	"time"

	"rms-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevenueDataService wraps *gorm.DB and hands the pure computation layer
// already-fetched, already-range-filtered collections. All date-window
// filtering lives here so the core stays free of I/O.
type RevenueDataService struct {
	DB *gorm.DB
}

func NewRevenueDataService(db *gorm.DB) *RevenueDataService {
	return &RevenueDataService{DB: db}
}

// RevenueWindow is one query window's worth of source rows.
type RevenueWindow struct {
	Reservations []models.Reservation
	Availability []models.Availability
	Snapshots    []models.MarketSnapshot
	Events       []models.Event
}

// FetchWindow loads every collection the engine consumes for [from, to].
func (s *RevenueDataService) FetchWindow(from, to time.Time) (RevenueWindow, error) {
	var w RevenueWindow

	if err := s.DB.
		Where("arrival_date >= ? AND arrival_date <= ?", from, to).
		Find(&w.Reservations).Error; err != nil {
		return w, fmt.Errorf("failed to load reservations: %w", err)
	}

	if err := s.DB.
		Where("date >= ? AND date <= ?", from, to).
		Find(&w.Availability).Error; err != nil {
		return w, fmt.Errorf("failed to load availability: %w", err)
	}

	if err := s.DB.
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&w.Snapshots).Error; err != nil {
		return w, fmt.Errorf("failed to load market snapshots: %w", err)
	}

	if err := s.DB.
		Where("start_date <= ? AND (end_date >= ? OR (end_date IS NULL AND start_date >= ?))", to, from, from).
		Find(&w.Events).Error; err != nil {
		return w, fmt.Errorf("failed to load events: %w", err)
	}

	return w, nil
}

// Settings returns the singleton RMS parameter row, creating the seeded
// defaults when none exists yet.
func (s *RevenueDataService) Settings() (models.RMSSettings, error) {
	var settings models.RMSSettings
	err := s.DB.First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return settings, fmt.Errorf("failed to load rms settings: %w", err)
	}
	settings = models.DefaultRMSSettings()
	if err := s.DB.Create(&settings).Error; err != nil {
		return settings, fmt.Errorf("failed to seed rms settings: %w", err)
	}
	return settings, nil
}

// UpsertSnapshots writes market rows last-writer-wins on their date.
func (s *RevenueDataService) UpsertSnapshots(rows []models.MarketSnapshot) error {
	if len(rows) == 0 {
		return nil
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// UpsertAvailability writes inventory rows last-writer-wins on
// (date, room_type).
func (s *RevenueDataService) UpsertAvailability(rows []models.Availability) error {
	if len(rows) == 0 {
		return nil
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "room_type"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// InsertReservations appends imported stay segments.
func (s *RevenueDataService) InsertReservations(rows []models.Reservation) error {
	if len(rows) == 0 {
		return nil
	}
	return s.DB.Create(&rows).Error
}

// InsertEvents appends calendar events.
func (s *RevenueDataService) InsertEvents(rows []models.Event) error {
	if len(rows) == 0 {
		return nil
	}
	return s.DB.Create(&rows).Error
}
