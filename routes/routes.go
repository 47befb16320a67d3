package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rms-backend/controllers"
	"rms-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances into the route tree.
func SetupRouter(
	dc *controllers.DashboardController,
	pc *controllers.PricingController,
	mc *controllers.MarketController,
	rc *controllers.ReservationsController,
	ac *controllers.AvailabilityController,
	ec *controllers.EventsController,
	xc *controllers.ExportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/kpis", dc.GetKPIs)
				dashboard.GET("/calendar", dc.GetCalendar)
			}

			pricing := protected.Group("/pricing")
			{
				pricing.GET("/recommendations", pc.GetRecommendations)
				pricing.GET("/suggestions", pc.GetSuggestions)
			}

			market := protected.Group("/market")
			{
				market.GET("/snapshots", mc.GetSnapshots)
				market.POST("/snapshots/import", mc.ImportSnapshots)
				market.DELETE("/snapshots/:id", mc.DeleteSnapshot)
			}

			reservations := protected.Group("/reservations")
			{
				reservations.GET("", rc.GetReservations)
				reservations.POST("/import", rc.ImportReservations)
				reservations.DELETE("/:id", rc.DeleteReservation)
			}

			availability := protected.Group("/availability")
			{
				availability.GET("", ac.GetAvailability)
				availability.POST("/import", ac.ImportAvailability)
				availability.DELETE("/:id", ac.DeleteAvailability)
			}

			events := protected.Group("/events")
			{
				events.GET("", ec.GetEvents)
				events.POST("", ec.CreateEvents)
				events.DELETE("/:id", ec.DeleteEvent)
			}

			settings := protected.Group("/settings")
			{
				settings.GET("/hotel", controllers.GetHotelSettings)
				settings.PUT("/hotel", controllers.UpdateHotelSettings)
				settings.GET("/rms", controllers.GetRMSSettings)
				settings.PUT("/rms", controllers.UpdateRMSSettings)
				settings.GET("/widgets", controllers.GetWidgets)
				settings.PUT("/widgets", controllers.UpdateWidgets)
			}

			admins := protected.Group("/admins")
			{
				admins.GET("", controllers.GetAdmins)
				admins.POST("", controllers.CreateAdmin)
				admins.DELETE("/:id", controllers.DeleteAdmin)
			}

			export := protected.Group("/export")
			{
				export.GET("/suggestions", xc.ExportSuggestions)
			}
		}
	}

	return r
}
