package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rms-backend/config"
	"rms-backend/controllers"
	"rms-backend/middleware"
	"rms-backend/routes"
	"rms-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required JWT secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot start auth layer.")
	}
	middleware.InitJWT(jwtSecret)
	log.Println("✅ JWT_SECRET detected.")

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Dashboard response cache (best-effort)
	config.InitializeCache()

	// Initialize services
	dataService := services.NewRevenueDataService(db)

	// Initialize controllers
	dashboardController := controllers.NewDashboardController(dataService, config.Cache)
	pricingController := controllers.NewPricingController(dataService)
	marketController := controllers.NewMarketController(dataService)
	reservationsController := controllers.NewReservationsController(dataService)
	availabilityController := controllers.NewAvailabilityController(dataService)
	eventsController := controllers.NewEventsController(dataService)
	exportController := controllers.NewExportController(dataService)

	// Build router
	router := routes.SetupRouter(
		dashboardController,
		pricingController,
		marketController,
		reservationsController,
		availabilityController,
		eventsController,
		exportController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
