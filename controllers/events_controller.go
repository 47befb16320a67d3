package controllers

import (
	"net/http"

	"rms-backend/config"
	"rms-backend/models"
	"rms-backend/services"
	"rms-backend/utils"

	"github.com/gin-gonic/gin"
)

type EventsController struct {
	Data *services.RevenueDataService
}

func NewEventsController(data *services.RevenueDataService) *EventsController {
	return &EventsController{Data: data}
}

type eventRow struct {
	models.Event
	ImpactPercent float64 `json:"impactPercent"`
}

// GetEvents (GET /api/events) — calendar events overlapping the window.
func (ec *EventsController) GetEvents(c *gin.Context) {
	from, to, _, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := ec.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load events")
		return
	}

	rows := make([]eventRow, 0, len(window.Events))
	for _, e := range window.Events {
		rows = append(rows, eventRow{Event: e, ImpactPercent: e.ImpactPercent()})
	}
	c.JSON(http.StatusOK, gin.H{"events": rows})
}

// CreateEvents (POST /api/events) — accepts loose rows; impact scores
// arrive on the 0–10 scale, sometimes as strings.
func (ec *EventsController) CreateEvents(c *gin.Context) {
	var rows []map[string]interface{}
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		start := getDateFromMap(row, "startDate", "start_date", "debut", "date_debut")
		if start == nil {
			continue
		}
		events = append(events, models.Event{
			Name:        getStringFromMap(row, "name", "nom", "title"),
			StartDate:   start,
			EndDate:     getDateFromMap(row, "endDate", "end_date", "fin", "date_fin"),
			ImpactScore: getNumberFromMap(row, 0, "impactScore", "impact_score", "impact"),
		})
	}

	if err := ec.Data.InsertEvents(events); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create events")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"created": len(events)})
}

// DeleteEvent (DELETE /api/events/:id)
func (ec *EventsController) DeleteEvent(c *gin.Context) {
	if err := config.DB.Delete(&models.Event{}, c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete event")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
