package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"rms-backend/services"
	"rms-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// kpiCacheTTL keeps dashboard refreshes cheap while staying close to
// live; source rows change at operator pace, not per request.
const kpiCacheTTL = 60 * time.Second

type DashboardController struct {
	Data  *services.RevenueDataService
	Cache *redis.Client
}

func NewDashboardController(data *services.RevenueDataService, cache *redis.Client) *DashboardController {
	return &DashboardController{Data: data, Cache: cache}
}

// parseWindow reads start/end query params (default: today .. +30 days)
// and the optional ref_now override used by audits and tests.
func parseWindow(c *gin.Context) (from, to, refNow time.Time, ok bool) {
	refNow = time.Now().UTC()
	if raw := c.Query("ref_now"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "ref_now must be RFC3339")
			return
		}
		refNow = t.UTC()
	}

	from = time.Date(refNow.Year(), refNow.Month(), refNow.Day(), 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, 30)

	if raw := c.Query("start"); raw != "" {
		t := utils.ParseDate(raw)
		if t == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid start date")
			return
		}
		from = *t
	}
	if raw := c.Query("end"); raw != "" {
		t := utils.ParseDate(raw)
		if t == nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end date")
			return
		}
		to = *t
	}
	if to.Before(from) {
		utils.JSONError(c, http.StatusBadRequest, "end date before start date")
		return
	}

	ok = true
	return
}

type kpiResponse struct {
	Kpis   services.KPISet `json:"kpis"`
	Alerts []string        `json:"alerts"`
	Window gin.H           `json:"window"`
}

// kpiCacheKey builds the cache key for one window. The reference clock
// only participates when the caller pinned it explicitly; live traffic
// shares one key per window so the TTL can do its job.
func kpiCacheKey(from, to time.Time, pinnedRef *time.Time) string {
	ref := "live"
	if pinnedRef != nil {
		ref = pinnedRef.Format(time.RFC3339)
	}
	return fmt.Sprintf("dashboard:kpis:%s:%s:%s", utils.DayKey(from), utils.DayKey(to), ref)
}

// GetKPIs (GET /api/dashboard/kpis)
func (dc *DashboardController) GetKPIs(c *gin.Context) {
	from, to, refNow, ok := parseWindow(c)
	if !ok {
		return
	}

	var pinnedRef *time.Time
	if c.Query("ref_now") != "" {
		pinnedRef = &refNow
	}
	cacheKey := kpiCacheKey(from, to, pinnedRef)
	ctx := context.Background()

	if dc.Cache != nil {
		if cached, err := dc.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp kpiResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	window, err := dc.Data.FetchWindow(from, to)
	if err != nil {
		log.Printf("❌ dashboard window load failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard data")
		return
	}
	settings, err := dc.Data.Settings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	kpis := services.ComputeKPIs(window.Reservations, window.Availability, window.Snapshots,
		settings.HotelCapacity, refNow)

	resp := kpiResponse{
		Kpis:   kpis,
		Alerts: services.BuildAlerts(kpis, settings),
		Window: gin.H{"start": utils.DayKey(from), "end": utils.DayKey(to)},
	}

	if dc.Cache != nil {
		if body, mErr := json.Marshal(resp); mErr == nil {
			if err := dc.Cache.Set(ctx, cacheKey, body, kpiCacheTTL).Err(); err != nil {
				log.Printf("warning: kpi cache write failed: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type calendarDay struct {
	Date         string  `json:"date"`
	Arrivals     int     `json:"arrivals"`
	RoomsOnBooks int     `json:"roomsOnBooks"`
	Revenue      float64 `json:"revenue"`
}

// GetCalendar (GET /api/dashboard/calendar) — arrivals per day.
func (dc *DashboardController) GetCalendar(c *gin.Context) {
	from, to, _, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := dc.Data.FetchWindow(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load calendar data")
		return
	}

	byDay := map[string]*calendarDay{}
	for _, r := range window.Reservations {
		if r.IsCancelled() || r.ArrivalDate == nil {
			continue
		}
		key := utils.DayKey(*r.ArrivalDate)
		day := byDay[key]
		if day == nil {
			day = &calendarDay{Date: key}
			byDay[key] = day
		}
		day.Arrivals++
		day.RoomsOnBooks += r.RoomCount()
		day.Revenue += r.TotalAmount
	}

	days := make([]calendarDay, 0, len(byDay))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := utils.DayKey(d)
		if day := byDay[key]; day != nil {
			days = append(days, *day)
		} else {
			days = append(days, calendarDay{Date: key})
		}
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}
