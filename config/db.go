package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"rms-backend/models"
	"rms-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "rms_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin, the RMS parameter row and the
// default widget layout exist.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Revenue Manager",
				Username: "admin@hotel.local",
				Password: string(hash),
				Role:     "owner",
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- RMS settings ----------------
	var settingsCount int64
	DB.Model(&models.RMSSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := models.DefaultRMSSettings()
		if err := DB.Create(&settings).Error; err != nil {
			log.Printf("warning: failed to seed rms settings: %v", err)
		} else {
			log.Println("RMS settings seeded")
		}
	}

	// ---------------- Widgets ----------------
	var widgetCount int64
	DB.Model(&models.DashboardWidget{}).Count(&widgetCount)
	if widgetCount == 0 {
		widgets := []models.DashboardWidget{
			{Slug: "kpi-summary", Title: "Occupancy / ADR / RevPAR", Enabled: true, Position: 1},
			{Slug: "pricing-suggestions", Title: "Suggested prices", Enabled: true, Position: 2},
			{Slug: "competitor-table", Title: "Competitor pricing", Enabled: true, Position: 3},
			{Slug: "arrivals-calendar", Title: "Arrivals calendar", Enabled: true, Position: 4},
		}
		if err := DB.Create(&widgets).Error; err != nil {
			log.Printf("warning: failed to seed widgets: %v", err)
		} else {
			log.Println("Dashboard widgets seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.RMSSettings{},
		&models.DashboardWidget{},
		&models.Reservation{},
		&models.Availability{},
		&models.MarketSnapshot{},
		&models.Event{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
