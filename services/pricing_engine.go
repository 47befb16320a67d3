package services

import (
	"fmt"
	"math"
	"time"

	"rms-backend/models"
	"rms-backend/utils"
)

// PricingDecision is the per-day engine output: the signals it saw, the
// bounded recommendation, a confidence score and a human-readable
// justification. Recomputed fresh on every request, never persisted.
type PricingDecision struct {
	Date             time.Time `json:"date"`
	CurrentPrice     float64   `json:"currentPrice"`
	RecommendedPrice float64   `json:"recommendedPrice"`
	DemandIndex      float64   `json:"demandIndex"`
	CompetitorMedian float64   `json:"competitorMedian"`
	EventImpact      float64   `json:"eventImpact"`
	PickupPressure   float64   `json:"pickupPressure"`
	OccupancyOnBooks float64   `json:"occupancyOnBooks"`
	WeightedSignal   float64   `json:"weightedSignal"`
	ChangePercent    float64   `json:"changePercent"`
	Confidence       float64   `json:"confidence"`
	Reason           string    `json:"reason"`
	Formula          string    `json:"formula"`
	AutoApprove      bool      `json:"shouldAutoApprove"`
}

// occupancyPressureWeight always participates in the weighted signal
// alongside the four configurable weights. Inherited behavior — do not
// fold it into the configurable set (see DESIGN.md).
const occupancyPressureWeight = 0.20

// DecidePrice maps one day's signals and the RMS settings to a bounded,
// explainable recommended rate. Pure; refNow drives weekend/last-minute
// day-distance checks.
func DecidePrice(sig DaySignals, settings models.RMSSettings, refNow time.Time) PricingDecision {
	current := sig.CurrentPrice

	competitorGapPct := 0.0
	if sig.CompetitorMedian > 0 {
		competitorGapPct = (sig.CompetitorMedian - current) / sig.CompetitorMedian * 100
	}

	occupancyPressure := sig.OccupancyOnBooks - settings.TargetOccupancy

	// days without any event contribute nothing, they are not treated
	// as a -50 event signal
	eventTerm := 0.0
	if sig.EventImpact > 0 {
		eventTerm = ((sig.EventImpact - 50) / 2) * settings.EventWeight
	}

	weightedSignal := (sig.DemandIndex-50)*settings.DemandWeight +
		competitorGapPct*settings.CompetitorWeight +
		eventTerm +
		(sig.PickupPressure-30)*settings.PickupWeight +
		occupancyPressure*occupancyPressureWeight

	price := current * (1 + weightedSignal/100)

	daysAhead := calendarDaysAhead(refNow, sig.Date)
	weekday := sig.Date.Weekday()
	if (weekday == time.Friday || weekday == time.Saturday) && daysAhead >= 2 {
		price *= 1 + settings.WeekendPremiumPct/100
	}
	if daysAhead <= 3 && sig.OccupancyOnBooks < settings.TargetOccupancy-10 {
		price *= 1 - settings.LastMinuteDiscountPct/100
	}

	switch settings.Strategy {
	case "conservative":
		price = (price + current) / 2
	case "aggressive":
		price *= 1.03
	}

	lower := math.Max(settings.MinAdr, settings.MinPrice)
	upper := math.Min(settings.MaxAdr, settings.MaxPrice)
	price = utils.Clamp(price, lower, upper)
	if settings.PriceStep > 0 {
		price = math.Round(price/settings.PriceStep) * settings.PriceStep
	} else {
		price = math.Round(price)
	}

	changePct := 0.0
	if current > 0 {
		changePct = (price - current) / current * 100
	}

	confidence := 45 + math.Abs(weightedSignal)*1.1
	if sig.EventImpact > 0 {
		confidence += 8
	}
	if sig.PickupPressure > 15 {
		confidence += 5
	}
	confidence = utils.Clamp(confidence, 50, 98)

	formula := fmt.Sprintf(
		"signal = (demand %.1f - 50) * %.2f + competitorGap %.2f%% * %.2f + eventTerm %.2f (impact %.1f, weight %.2f) + (pickup %.1f - 30) * %.2f + occupancyPressure %.1f * %.2f = %.2f",
		sig.DemandIndex, settings.DemandWeight,
		competitorGapPct, settings.CompetitorWeight,
		eventTerm, sig.EventImpact, settings.EventWeight,
		sig.PickupPressure, settings.PickupWeight,
		occupancyPressure, occupancyPressureWeight,
		weightedSignal,
	)

	return PricingDecision{
		Date:             sig.Date,
		CurrentPrice:     current,
		RecommendedPrice: price,
		DemandIndex:      sig.DemandIndex,
		CompetitorMedian: sig.CompetitorMedian,
		EventImpact:      sig.EventImpact,
		PickupPressure:   sig.PickupPressure,
		OccupancyOnBooks: sig.OccupancyOnBooks,
		WeightedSignal:   weightedSignal,
		ChangePercent:    changePct,
		Confidence:       confidence,
		Reason:           reasonForChange(changePct),
		Formula:          formula,
		AutoApprove:      math.Abs(changePct) <= settings.AutoApproveThresholdPct,
	}
}

// BuildDailyDecisions runs the engine over every extracted day signal.
func BuildDailyDecisions(signals []DaySignals, settings models.RMSSettings, refNow time.Time) []PricingDecision {
	decisions := make([]PricingDecision, 0, len(signals))
	for _, sig := range signals {
		decisions = append(decisions, DecidePrice(sig, settings, refNow))
	}
	return decisions
}

// reasonForChange picks the justification by fixed thresholds, checked
// in this order.
func reasonForChange(changePct float64) string {
	switch {
	case changePct >= 6:
		return "Strong increase: sustained demand"
	case changePct >= 2:
		return "Moderate increase: priced under market"
	case changePct <= -6:
		return "Strong decrease: under-occupancy risk"
	case changePct <= -2:
		return "Tactical decrease: stimulate short-term pickup"
	default:
		return "Hold current price"
	}
}

// calendarDaysAhead counts whole calendar days between the reference
// clock's date and the target date.
func calendarDaysAhead(refNow, target time.Time) int {
	from := time.Date(refNow.Year(), refNow.Month(), refNow.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
