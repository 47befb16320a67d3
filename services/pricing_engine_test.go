package services

import (
	"math"
	"strings"
	"testing"
	"time"

	"rms-backend/models"
)

func engineSettings() models.RMSSettings {
	s := models.DefaultRMSSettings()
	// target 80, weights 0.35/0.30/0.20/0.15, step 5, bounds [60,400]
	return s
}

func TestDecidePriceReferenceScenario(t *testing.T) {
	refNow := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	sig := DaySignals{
		Date:             time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), // Monday, no weekend premium
		CurrentPrice:     100,
		CompetitorMedian: 120,
		DemandIndex:      80,
		EventImpact:      0,
		PickupPressure:   30,
		OccupancyOnBooks: 80, // exactly on target
	}

	d := DecidePrice(sig, engineSettings(), refNow)

	// (80-50)*0.35 + (20/120*100)*0.30 + 0 + 0 + 0 = 10.5 + 5.0
	if math.Abs(d.WeightedSignal-15.5) > 1e-9 {
		t.Fatalf("weighted signal = %v, want 15.5", d.WeightedSignal)
	}
	// 115.5 stepped to the nearest multiple of 5
	if d.RecommendedPrice != 115 {
		t.Fatalf("recommended = %v, want 115", d.RecommendedPrice)
	}
	if math.Abs(d.ChangePercent-15) > 1e-9 {
		t.Fatalf("change pct = %v, want 15", d.ChangePercent)
	}
	// 45 + 15.5*1.1 + 5 (pickup 30 > 15), unrounded
	if math.Abs(d.Confidence-67.05) > 1e-9 {
		t.Fatalf("confidence = %v, want 67.05", d.Confidence)
	}
	if d.Reason != "Strong increase: sustained demand" {
		t.Fatalf("unexpected reason %q", d.Reason)
	}
	if d.AutoApprove {
		t.Fatal("a 15 percent move must not auto-approve at a 5 percent threshold")
	}
	if !strings.Contains(d.Formula, "= 15.50") {
		t.Fatalf("formula must embed the computed signal, got %q", d.Formula)
	}
	if !strings.Contains(d.Formula, "0.35") || !strings.Contains(d.Formula, "0.30") {
		t.Fatalf("formula must embed the live weights, got %q", d.Formula)
	}
}

func TestDecidePriceBoundsAndStep(t *testing.T) {
	refNow := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	settings := engineSettings()
	lower := math.Max(settings.MinAdr, settings.MinPrice)
	upper := math.Min(settings.MaxAdr, settings.MaxPrice)

	extremes := []DaySignals{
		{Date: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), CurrentPrice: 390, CompetitorMedian: 900, DemandIndex: 100, EventImpact: 100, PickupPressure: 100, OccupancyOnBooks: 100},
		{Date: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), CurrentPrice: 65, CompetitorMedian: 10, DemandIndex: 0, EventImpact: 0, PickupPressure: 0, OccupancyOnBooks: 0},
		{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), CurrentPrice: 0, CompetitorMedian: 0, DemandIndex: 50, EventImpact: 0, PickupPressure: 30, OccupancyOnBooks: 0},
	}

	for _, sig := range extremes {
		d := DecidePrice(sig, settings, refNow)
		if d.RecommendedPrice < lower || d.RecommendedPrice > upper {
			t.Fatalf("price %v outside [%v, %v]", d.RecommendedPrice, lower, upper)
		}
		if rem := math.Mod(d.RecommendedPrice, settings.PriceStep); math.Abs(rem) > 1e-9 {
			t.Fatalf("price %v is not a multiple of step %v", d.RecommendedPrice, settings.PriceStep)
		}
		if d.Confidence < 50 || d.Confidence > 98 {
			t.Fatalf("confidence %v outside [50, 98]", d.Confidence)
		}
		if got, want := d.AutoApprove, math.Abs(d.ChangePercent) <= settings.AutoApproveThresholdPct; got != want {
			t.Fatalf("auto-approve %v inconsistent with change %v%%", got, d.ChangePercent)
		}
	}
}

func TestDecidePriceZeroCurrentPrice(t *testing.T) {
	refNow := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	sig := DaySignals{
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CurrentPrice:   0,
		DemandIndex:    80,
		PickupPressure: 30,
	}

	d := DecidePrice(sig, engineSettings(), refNow)

	if d.ChangePercent != 0 {
		t.Fatalf("zero current price must yield zero change pct, got %v", d.ChangePercent)
	}
	if !d.AutoApprove {
		t.Fatal("zero change must auto-approve")
	}
}

func TestDecidePriceWeekendPremium(t *testing.T) {
	refNow := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // Monday
	settings := engineSettings()
	neutral := DaySignals{
		CurrentPrice:     100,
		CompetitorMedian: 100,
		DemandIndex:      50,
		PickupPressure:   30,
		OccupancyOnBooks: 80,
	}

	friday := neutral
	friday.Date = time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC) // 4 days ahead
	monday := neutral
	monday.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	df := DecidePrice(friday, settings, refNow)
	dm := DecidePrice(monday, settings, refNow)

	if df.RecommendedPrice != 110 { // 100 * 1.10, stepped
		t.Fatalf("friday price = %v, want 110", df.RecommendedPrice)
	}
	if dm.RecommendedPrice != 100 {
		t.Fatalf("monday price = %v, want 100", dm.RecommendedPrice)
	}

	// a Friday inside the 2-day fence gets no premium
	nearFriday := neutral
	nearFriday.Date = time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	refThursday := time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC)
	near := DecidePrice(nearFriday, settings, refThursday)
	if near.RecommendedPrice != 100 {
		t.Fatalf("near-term friday price = %v, want 100", near.RecommendedPrice)
	}
}

func TestDecidePriceLastMinuteDiscount(t *testing.T) {
	refNow := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	settings := engineSettings()
	sig := DaySignals{
		CurrentPrice:     100,
		CompetitorMedian: 100,
		DemandIndex:      50,
		PickupPressure:   30,
		OccupancyOnBooks: 60, // 20 points under target
	}

	near := sig
	near.Date = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC) // 2 days ahead
	far := sig
	far.Date = time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	dNear := DecidePrice(near, settings, refNow)
	dFar := DecidePrice(far, settings, refNow)

	if dNear.RecommendedPrice >= dFar.RecommendedPrice {
		t.Fatalf("last-minute discount missing: near %v, far %v",
			dNear.RecommendedPrice, dFar.RecommendedPrice)
	}
}

func TestDecidePriceStrategyModifiers(t *testing.T) {
	refNow := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	sig := DaySignals{
		Date:             time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CurrentPrice:     100,
		CompetitorMedian: 120,
		DemandIndex:      80,
		PickupPressure:   30,
		OccupancyOnBooks: 80,
	}

	balanced := engineSettings()
	conservative := engineSettings()
	conservative.Strategy = "conservative"
	aggressive := engineSettings()
	aggressive.Strategy = "aggressive"

	db := DecidePrice(sig, balanced, refNow)
	dc := DecidePrice(sig, conservative, refNow)
	da := DecidePrice(sig, aggressive, refNow)

	if dc.RecommendedPrice != 110 { // (115.5 + 100)/2 = 107.75, stepped
		t.Fatalf("conservative price = %v, want 110", dc.RecommendedPrice)
	}
	if db.RecommendedPrice != 115 {
		t.Fatalf("balanced price = %v, want 115", db.RecommendedPrice)
	}
	if da.RecommendedPrice != 120 { // 115.5 * 1.03 = 118.965, stepped
		t.Fatalf("aggressive price = %v, want 120", da.RecommendedPrice)
	}
}

func TestDecidePriceIdempotent(t *testing.T) {
	refNow := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	sig := DaySignals{
		Date:             time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		CurrentPrice:     130,
		CompetitorMedian: 150,
		DemandIndex:      0.9,
		EventImpact:      70,
		PickupPressure:   20,
		OccupancyOnBooks: 55,
	}
	a := DecidePrice(sig, engineSettings(), refNow)
	b := DecidePrice(sig, engineSettings(), refNow)
	if a != b {
		t.Fatalf("identical inputs produced different decisions:\n%+v\n%+v", a, b)
	}
}

func TestReasonThresholdOrdering(t *testing.T) {
	cases := []struct {
		changePct float64
		want      string
	}{
		{8, "Strong increase: sustained demand"},
		{6, "Strong increase: sustained demand"}, // boundary goes to the first match
		{3, "Moderate increase: priced under market"},
		{2, "Moderate increase: priced under market"},
		{0, "Hold current price"},
		{-2, "Tactical decrease: stimulate short-term pickup"},
		{-6, "Strong decrease: under-occupancy risk"},
		{-9, "Strong decrease: under-occupancy risk"},
	}
	for _, tc := range cases {
		if got := reasonForChange(tc.changePct); got != tc.want {
			t.Fatalf("reasonForChange(%v) = %q, want %q", tc.changePct, got, tc.want)
		}
	}
}
