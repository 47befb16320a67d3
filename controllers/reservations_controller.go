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

type ReservationsController struct {
	Data *services.RevenueDataService
}

func NewReservationsController(data *services.RevenueDataService) *ReservationsController {
	return &ReservationsController{Data: data}
}

// GetReservations (GET /api/reservations) — window-filtered stay rows.
func (rc *ReservationsController) GetReservations(c *gin.Context) {
	from, to, _, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := rc.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": window.Reservations})
}

// ImportReservations (POST /api/reservations/import) — loose PMS export
// rows. Amounts may arrive as "1 234,50 €"; dates in ISO or French
// layouts. Rows without a parseable arrival date are skipped, nothing
// errors out.
func (rc *ReservationsController) ImportReservations(c *gin.Context) {
	var rows []map[string]interface{}
	if err := c.ShouldBindJSON(&rows); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	reservations := make([]models.Reservation, 0, len(rows))
	for _, row := range rows {
		arrival := getDateFromMap(row, "arrivalDate", "arrival_date", "arrivee", "date_arrivee", "checkin")
		if arrival == nil {
			continue
		}
		reservations = append(reservations, models.Reservation{
			ReferenceCode: getStringFromMap(row, "referenceCode", "reference_code", "reference"),
			ArrivalDate:   arrival,
			DepartureDate: getDateFromMap(row, "departureDate", "departure_date", "depart", "date_depart", "checkout"),
			Status:        getStringFromMap(row, "status", "statut"),
			Rooms:         int(getNumberFromMap(row, 0, "rooms", "chambres", "nb_chambres")),
			Nights:        int(getNumberFromMap(row, 0, "nights", "nuits", "nb_nuits")),
			TotalAmount:   getNumberFromMap(row, 0, "totalAmount", "total_amount", "montant", "montant_total"),
			PurchaseDate:  getDateFromMap(row, "purchaseDate", "purchase_date", "date_achat", "date_reservation"),
			RoomType:      getStringFromMap(row, "roomType", "room_type", "type_chambre"),
		})
	}

	if err := rc.Data.InsertReservations(reservations); err != nil {
		log.Printf("❌ reservation import failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to import reservations")
		return
	}

	utils.JSONImported(c, http.StatusOK, uuid.NewString(), len(reservations))
}

// DeleteReservation (DELETE /api/reservations/:id)
func (rc *ReservationsController) DeleteReservation(c *gin.Context) {
	if err := config.DB.Delete(&models.Reservation{}, c.Param("id")).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete reservation")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
