package services

import (
	"strings"
	"time"

	"rms-backend/models"
	"rms-backend/utils"
)

// DaySignals is the flat per-day signal set fed to the pricing engine.
// All percentage fields are on a 0–100 scale.
type DaySignals struct {
	Date             time.Time `json:"date"`
	CurrentPrice     float64   `json:"currentPrice"`
	CompetitorMedian float64   `json:"competitorMedian"`
	DemandIndex      float64   `json:"demandIndex"`
	EventImpact      float64   `json:"eventImpact"`
	RoomsOnBooks     int       `json:"roomsOnBooks"`
	OccupancyOnBooks float64   `json:"occupancyOnBooks"`
	PickupPressure   float64   `json:"pickupPressure"`
}

// pressureWindowDays is the trailing purchase window for per-day pickup
// pressure (shorter than the KPI pickup window).
const pressureWindowDays = 2

// NormalizeDemandIndex maps the ambiguous raw demand scale to 0–100:
// values ≤ 1 are treated as fractions and scaled, anything else is
// clamped directly. Heuristic, not a guarantee — both shapes coexist in
// the source tables.
func NormalizeDemandIndex(raw float64) float64 {
	if raw <= 1 {
		raw = raw * 100
	}
	return utils.Clamp(raw, 0, 100)
}

// BuildEventImpactByDay expands the event calendar into a per-day map of
// the maximum impact percentage, inclusive of both endpoints.
func BuildEventImpactByDay(events []models.Event) map[string]float64 {
	impact := map[string]float64{}
	for _, e := range events {
		if e.StartDate == nil {
			continue
		}
		start := *e.StartDate
		end := *e.EffectiveEnd()
		if end.Before(start) {
			end = start
		}
		pct := e.ImpactPercent()
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := utils.DayKey(d)
			if pct > impact[key] {
				impact[key] = pct
			}
		}
	}
	return impact
}

// ExtractDaySignals produces one DaySignals per market-snapshot day,
// joining confirmed reservations to their arrival date.
func ExtractDaySignals(
	snapshots []models.MarketSnapshot,
	reservations []models.Reservation,
	events []models.Event,
	capacity int,
	refNow time.Time,
) []DaySignals {
	eventImpact := BuildEventImpactByDay(events)

	// index confirmed reservations by arrival day
	type arrivalBucket struct {
		rooms       int
		pickupRooms int
	}
	pickupSince := refNow.AddDate(0, 0, -pressureWindowDays)
	arrivals := map[string]*arrivalBucket{}
	for _, r := range reservations {
		if r.IsCancelled() || r.ArrivalDate == nil {
			continue
		}
		key := utils.DayKey(*r.ArrivalDate)
		b := arrivals[key]
		if b == nil {
			b = &arrivalBucket{}
			arrivals[key] = b
		}
		rooms := r.RoomCount()
		b.rooms += rooms
		if r.PurchaseDate != nil && !r.PurchaseDate.Before(pickupSince) && !r.PurchaseDate.After(refNow) {
			b.pickupRooms += rooms
		}
	}

	signals := make([]DaySignals, 0, len(snapshots))
	for _, snap := range snapshots {
		if snap.Date == nil {
			continue
		}
		day := *snap.Date
		key := utils.DayKey(day)

		sig := DaySignals{
			Date:         day,
			CurrentPrice: snap.OwnPrice,
			DemandIndex:  NormalizeDemandIndex(snap.DemandIndex),
		}

		// zero gap when the competitor set is empty for the day
		sig.CompetitorMedian = snap.CompetitorMedian
		if sig.CompetitorMedian <= 0 {
			sig.CompetitorMedian = snap.OwnPrice
		}

		if strings.TrimSpace(snap.EventsText) != "" {
			sig.EventImpact = 100
		} else {
			sig.EventImpact = eventImpact[key]
		}

		if b := arrivals[key]; b != nil {
			sig.RoomsOnBooks = b.rooms
			if capacity > 0 {
				sig.OccupancyOnBooks = utils.Clamp(float64(b.rooms)/float64(capacity)*100, 0, 100)
				sig.PickupPressure = utils.Clamp(float64(b.pickupRooms)/float64(capacity)*100, 0, 100)
			}
		}

		signals = append(signals, sig)
	}
	return signals
}
