package services

import (
	"fmt"
	"time"

	"rms-backend/models"
	"rms-backend/utils"
)

// KPISet is the aggregated picture of one date window. Occupancy values
// are percentages; ADR here is revenue per room sold (the source model
// does not divide by nights).
type KPISet struct {
	OccupancyRate      float64 `json:"occupancyRate"`
	Adr                float64 `json:"adr"`
	Revpar             float64 `json:"revpar"`
	PickupRooms        int     `json:"pickupRooms"`
	PickupRevenue      float64 `json:"pickupRevenue"`
	TotalRooms         int     `json:"totalRooms"`
	OccupiedRooms      int     `json:"occupiedRooms"`
	AvailableRooms     int     `json:"availableRooms"`
	ProjectedOccupancy float64 `json:"projectedOccupancy"`
}

// pickupWindowDays is the trailing purchase window for pickup sums.
const pickupWindowDays = 7

// ComputeKPIs aggregates reservations, availability and market rows that
// were already filtered to the caller's date window. refNow is the
// reference clock for the trailing pickup window; callers needing
// reproducible output must pin it instead of passing time.Now().
func ComputeKPIs(
	reservations []models.Reservation,
	availability []models.Availability,
	snapshots []models.MarketSnapshot,
	capacity int,
	refNow time.Time,
) KPISet {
	dayCount := windowDayCount(availability, snapshots)
	totalRooms := capacity * dayCount

	occupied := 0
	totalRevenue := 0.0
	pickupRooms := 0
	pickupRevenue := 0.0
	pickupSince := refNow.AddDate(0, 0, -pickupWindowDays)

	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		rooms := r.RoomCount()
		occupied += rooms
		totalRevenue += r.TotalAmount

		if r.PurchaseDate != nil && !r.PurchaseDate.Before(pickupSince) && !r.PurchaseDate.After(refNow) {
			pickupRooms += rooms
			pickupRevenue += r.TotalAmount
		}
	}

	k := KPISet{
		TotalRooms:    totalRooms,
		OccupiedRooms: occupied,
		PickupRooms:   pickupRooms,
		PickupRevenue: pickupRevenue,
	}

	if totalRooms > 0 {
		k.OccupancyRate = float64(occupied) / float64(totalRooms) * 100
		k.Revpar = totalRevenue / float64(totalRooms)
	}
	if occupied > 0 {
		k.Adr = totalRevenue / float64(occupied)
	}

	if len(availability) > 0 {
		remaining := 0
		for _, a := range availability {
			remaining += a.AvailableCount
		}
		k.AvailableRooms = remaining
	} else {
		remaining := totalRooms - occupied
		if remaining < 0 {
			remaining = 0
		}
		k.AvailableRooms = remaining
	}

	projected := k.OccupancyRate
	if capacity > 0 {
		projected += float64(pickupRooms) / float64(capacity) * 100
	}
	k.ProjectedOccupancy = utils.Clamp(projected, 0, 100)

	return k
}

// windowDayCount = max(distinct availability dates, snapshot count, 1).
func windowDayCount(availability []models.Availability, snapshots []models.MarketSnapshot) int {
	days := map[string]struct{}{}
	for _, a := range availability {
		if a.Date != nil {
			days[utils.DayKey(*a.Date)] = struct{}{}
		}
	}
	count := len(days)
	if len(snapshots) > count {
		count = len(snapshots)
	}
	if count < 1 {
		count = 1
	}
	return count
}

// BuildAlerts derives free-text operator warnings from the aggregated
// KPIs: occupancy far below target, ADR under the configured floor, or
// projected occupancy near sell-out.
func BuildAlerts(k KPISet, settings models.RMSSettings) []string {
	alerts := []string{}

	if settings.TargetOccupancy > 0 && k.OccupancyRate < settings.TargetOccupancy-20 {
		alerts = append(alerts, fmt.Sprintf(
			"Occupancy at %.1f%% is well below the %.0f%% target", k.OccupancyRate, settings.TargetOccupancy))
	}
	if k.Adr > 0 && settings.MinAdr > 0 && k.Adr < settings.MinAdr {
		alerts = append(alerts, fmt.Sprintf(
			"ADR %.2f is below the configured floor of %.2f", k.Adr, settings.MinAdr))
	}
	if k.ProjectedOccupancy >= 95 {
		alerts = append(alerts, fmt.Sprintf(
			"Projected occupancy %.1f%% — close to sell-out, consider raising rates", k.ProjectedOccupancy))
	}

	return alerts
}
