package models

import (
	"time"

	"gorm.io/datatypes"
)

// RMSSettings is the singleton parameter row driving the pricing engine.
// The engine does not validate the bounds against each other; if the
// floor exceeds the ceiling the clamp degenerates (kept as-is, see
// DESIGN.md).
type RMSSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HotelCapacity      int            `gorm:"column:hotel_capacity" json:"hotelCapacity"`
	RoomTypeCapacities datatypes.JSON `gorm:"column:room_type_capacities" json:"roomTypeCapacities,omitempty"`

	// conservative | balanced | aggressive
	Strategy        string  `gorm:"column:strategy;size:32" json:"strategy"`
	TargetOccupancy float64 `gorm:"column:target_occupancy" json:"targetOccupancy"`

	MinAdr   float64 `gorm:"column:min_adr" json:"minAdr"`
	MaxAdr   float64 `gorm:"column:max_adr" json:"maxAdr"`
	MinPrice float64 `gorm:"column:min_price" json:"minPrice"`
	MaxPrice float64 `gorm:"column:max_price" json:"maxPrice"`

	WeekendPremiumPct     float64 `gorm:"column:weekend_premium_pct" json:"weekendPremiumPct"`
	LastMinuteDiscountPct float64 `gorm:"column:last_minute_discount_pct" json:"lastMinuteDiscountPct"`

	// the four weights are expected to sum near 1.0; a fixed 0.20
	// occupancy-pressure coefficient participates alongside them
	DemandWeight     float64 `gorm:"column:demand_weight" json:"demandWeight"`
	CompetitorWeight float64 `gorm:"column:competitor_weight" json:"competitorWeight"`
	EventWeight      float64 `gorm:"column:event_weight" json:"eventWeight"`
	PickupWeight     float64 `gorm:"column:pickup_weight" json:"pickupWeight"`

	PriceStep               float64 `gorm:"column:price_step" json:"priceStep"`
	AutoApproveThresholdPct float64 `gorm:"column:auto_approve_threshold_pct" json:"autoApproveThresholdPct"`
}

// DefaultRMSSettings are the seeded engine parameters for a mid-size
// independent hotel.
func DefaultRMSSettings() RMSSettings {
	return RMSSettings{
		HotelCapacity:           45,
		Strategy:                "balanced",
		TargetOccupancy:         80,
		MinAdr:                  60,
		MaxAdr:                  400,
		MinPrice:                50,
		MaxPrice:                500,
		WeekendPremiumPct:       10,
		LastMinuteDiscountPct:   8,
		DemandWeight:            0.35,
		CompetitorWeight:        0.30,
		EventWeight:             0.20,
		PickupWeight:            0.15,
		PriceStep:               5,
		AutoApproveThresholdPct: 5,
	}
}
