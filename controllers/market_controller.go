package controllers

import (
	"log"
	"net/http"

	"rms-backend/config"
	"rms-backend/models"
	"rms-backend/services"
	"rms-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MarketController struct {
	Data *services.RevenueDataService
}

func NewMarketController(data *services.RevenueDataService) *MarketController {
	return &MarketController{Data: data}
}

type marketRow struct {
	models.MarketSnapshot
	GapPercent      float64 `json:"gapPercent"`
	NormalizedIndex float64 `json:"normalizedDemandIndex"`
}

// GetSnapshots (GET /api/market/snapshots) — the competitor pricing
// table: stored rows plus the gap-vs-competitor the dashboard renders.
func (mc *MarketController) GetSnapshots(c *gin.Context) {
	from, to, _, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := mc.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load market snapshots")
		return
	}

	rows := make([]marketRow, 0, len(window.Snapshots))
	for _, snap := range window.Snapshots {
		row := marketRow{
			MarketSnapshot:  snap,
			NormalizedIndex: services.NormalizeDemandIndex(snap.DemandIndex),
		}
		if snap.CompetitorMedian > 0 {
			row.GapPercent = (snap.CompetitorMedian - snap.OwnPrice) / snap.CompetitorMedian * 100
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": rows})
}

// ImportSnapshots (POST /api/market/snapshots/import) accepts loose rows
// with locale-formatted prices and mixed date layouts; every field goes
// through the tolerant parsers and degrades silently.
func (mc *MarketController) ImportSnapshots(c *gin.Context) {
	var rows []map[string]interface{}
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	snapshots := make([]models.MarketSnapshot, 0, len(rows))
	for _, row := range rows {
		date := getDateFromMap(row, "date", "jour", "day")
		if date == nil {
			continue
		}
		snapshots = append(snapshots, models.MarketSnapshot{
			Date:             date,
			OwnPrice:         getNumberFromMap(row, 0, "ownPrice", "own_price", "prix", "price"),
			CompetitorMedian: getNumberFromMap(row, 0, "competitorMedian", "competitor_median", "median_concurrents"),
			DemandIndex:      getNumberFromMap(row, 0, "demandIndex", "demand_index", "indice_demande"),
			EventsText:       getStringFromMap(row, "eventsText", "events_text", "events", "evenements"),
		})
	}

	if err := mc.Data.UpsertSnapshots(snapshots); err != nil {
		log.Printf("❌ market snapshot import failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to import market snapshots")
		return
	}

	utils.JSONImported(c, http.StatusOK, uuid.NewString(), len(snapshots))
}

// DeleteSnapshot (DELETE /api/market/snapshots/:id)
func (mc *MarketController) DeleteSnapshot(c *gin.Context) {
	if err := config.DB.Delete(&models.MarketSnapshot{}, c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete snapshot")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
