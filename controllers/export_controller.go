package controllers

import (
	"fmt"
	"log"
	"net/http"

	"rms-backend/services"
	"rms-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type ExportController struct {
	Data *services.RevenueDataService
}

func NewExportController(data *services.RevenueDataService) *ExportController {
	return &ExportController{Data: data}
}

// ExportSuggestions (GET /api/export/suggestions) streams the suggestion
// feed as an xlsx workbook for operator review.
func (xc *ExportController) ExportSuggestions(c *gin.Context) {
	from, to, refNow, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := xc.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load pricing data")
		return
	}
	settings, err := xc.Data.Settings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	signals := services.ExtractDaySignals(window.Snapshots, window.Reservations, window.Events,
		settings.HotelCapacity, refNow)
	decisions := services.BuildDailyDecisions(signals, settings, refNow)
	suggestions := services.BuildSuggestions(decisions)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close workbook: %v", err)
		}
	}()

	sheet := "Suggestions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Current price", "Suggested price", "Change", "Change %", "Confidence", "Auto-approve", "Reason", "Formula"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, sug := range suggestions {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sug.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sug.CurrentPrice)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), sug.SuggestedPrice)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sug.Change)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.2f%%", sug.ChangePercent))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sug.Confidence)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), sug.AutoApprove)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), sug.Reason)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), sug.Formula)
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "E", 14)
	f.SetColWidth(sheet, "H", "H", 40)
	f.SetColWidth(sheet, "I", "I", 80)

	filename := fmt.Sprintf("suggestions_%s_%s_%s.xlsx",
		utils.DayKey(from), utils.DayKey(to), uuid.NewString()[:8])
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Printf("❌ workbook write failed: %v", err)
	}
}
