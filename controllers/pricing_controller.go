package controllers

import (
	"log"
	"net/http"

	"rms-backend/services"
	"rms-backend/utils"

	"github.com/gin-gonic/gin"
)

type PricingController struct {
	Data *services.RevenueDataService
}

func NewPricingController(data *services.RevenueDataService) *PricingController {
	return &PricingController{Data: data}
}

// GetRecommendations (GET /api/pricing/recommendations) returns the full
// per-day decision list, one per market-snapshot day in the window.
func (pc *PricingController) GetRecommendations(c *gin.Context) {
	from, to, refNow, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := pc.Data.FetchWindow(from, to)
	if err != nil {
		log.Printf("❌ pricing window load failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load pricing data")
		return
	}
	settings, err := pc.Data.Settings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	signals := services.ExtractDaySignals(window.Snapshots, window.Reservations, window.Events,
		settings.HotelCapacity, refNow)
	decisions := services.BuildDailyDecisions(signals, settings, refNow)

	c.JSON(http.StatusOK, gin.H{
		"decisions": decisions,
		"window":    gin.H{"start": utils.DayKey(from), "end": utils.DayKey(to)},
	})
}

// GetSuggestions (GET /api/pricing/suggestions) returns the actionable
// subset: days whose recommendation rounds to a different integer price.
func (pc *PricingController) GetSuggestions(c *gin.Context) {
	from, to, refNow, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := pc.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load pricing data")
		return
	}
	settings, err := pc.Data.Settings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	signals := services.ExtractDaySignals(window.Snapshots, window.Reservations, window.Events,
		settings.HotelCapacity, refNow)
	decisions := services.BuildDailyDecisions(signals, settings, refNow)

	c.JSON(http.StatusOK, gin.H{
		"suggestions": services.BuildSuggestions(decisions),
		"window":      gin.H{"start": utils.DayKey(from), "end": utils.DayKey(to)},
	})
}
