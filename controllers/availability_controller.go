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

type AvailabilityController struct {
	Data *services.RevenueDataService
}

func NewAvailabilityController(data *services.RevenueDataService) *AvailabilityController {
	return &AvailabilityController{Data: data}
}

type availabilityRow struct {
	models.Availability
	Closed         bool     `json:"closed"`
	ClosureReasons []string `json:"closureReasons"`
}

// GetAvailability (GET /api/availability) — inventory rows with their
// derived closure state ("ferme" operator close-out vs "stock" sold out).
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	from, to, _, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := ac.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load availability")
		return
	}

	rows := make([]availabilityRow, 0, len(window.Availability))
	for _, a := range window.Availability {
		rows = append(rows, availabilityRow{
			Availability:   a,
			Closed:         a.IsClosed(),
			ClosureReasons: a.ClosureReasons(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"availability": rows})
}

// ImportAvailability (POST /api/availability/import) — loose rows,
// last-writer-wins on (date, room type). A closed flag of the literal
// "x" survives import untouched.
func (ac *AvailabilityController) ImportAvailability(c *gin.Context) {
	var rows []map[string]interface{}
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	availability := make([]models.Availability, 0, len(rows))
	for _, row := range rows {
		date := getDateFromMap(row, "date", "jour", "day")
		if date == nil {
			continue
		}
		count := int(getNumberFromMap(row, 0, "availableCount", "available_count", "disponible", "stock"))
		if count < 0 {
			count = 0
		}
		availability = append(availability, models.Availability{
			Date:           date,
			RoomType:       getStringFromMap(row, "roomType", "room_type", "type_chambre"),
			AvailableCount: count,
			ClosedFlag:     getStringFromMap(row, "closedFlag", "closed_flag", "ferme"),
			LastUpdatedAt:  getDateFromMap(row, "lastUpdatedAt", "last_updated_at", "maj"),
		})
	}

	if err := ac.Data.UpsertAvailability(availability); err != nil {
		log.Printf("❌ availability import failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to import availability")
		return
	}

	utils.JSONImported(c, http.StatusOK, uuid.NewString(), len(availability))
}

// DeleteAvailability (DELETE /api/availability/:id)
func (ac *AvailabilityController) DeleteAvailability(c *gin.Context) {
	if err := config.DB.Delete(&models.Availability{}, c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete availability row")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
