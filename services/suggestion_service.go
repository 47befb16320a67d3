package services

import (
	"math"

	"rms-backend/utils"
)

// PriceSuggestion is the delta-against-current-price record consumed by
// the suggestion feed. Days whose recommendation rounds to the same
// integer price as the current rate are suppressed.
type PriceSuggestion struct {
	Date           string  `json:"date"`
	CurrentPrice   float64 `json:"currentPrice"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	Change         int     `json:"change"`
	ChangePercent  float64 `json:"changePercent"`
	Reason         string  `json:"reason"`
	Formula        string  `json:"formulaText"`
	Confidence     float64 `json:"confidence"`
	AutoApprove    bool    `json:"shouldAutoApprove"`
}

// BuildSuggestions filters the daily decisions down to actionable
// price moves. math.Round is half-away-from-zero, matching the feed's
// rounding rule.
func BuildSuggestions(decisions []PricingDecision) []PriceSuggestion {
	suggestions := []PriceSuggestion{}
	for _, d := range decisions {
		change := int(math.Round(d.RecommendedPrice)) - int(math.Round(d.CurrentPrice))
		if change == 0 {
			continue
		}
		suggestions = append(suggestions, PriceSuggestion{
			Date:           utils.DayKey(d.Date),
			CurrentPrice:   d.CurrentPrice,
			SuggestedPrice: d.RecommendedPrice,
			Change:         change,
			ChangePercent:  d.ChangePercent,
			Reason:         d.Reason,
			Formula:        d.Formula,
			Confidence:     d.Confidence,
			AutoApprove:    d.AutoApprove,
		})
	}
	return suggestions
}
