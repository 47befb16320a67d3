package controllers

import (
	"errors"
	"net/http"

	"rms-backend/config"
	"rms-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hotelSettingsPayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Logo     string `json:"logo"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}

func GetHotelSettings(c *gin.Context) {
	var hotel models.HotelSetting
	if err := config.DB.First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"hotel": models.HotelSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

func UpdateHotelSettings(c *gin.Context) {
	var payload hotelSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var hotel models.HotelSetting
	err := config.DB.First(&hotel).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	hotel.Name = payload.Name
	hotel.Address = payload.Address
	hotel.Phone = payload.Phone
	hotel.Email = payload.Email
	hotel.Website = payload.Website
	hotel.Logo = payload.Logo
	if payload.Currency != "" {
		hotel.Currency = payload.Currency
	}
	if payload.Timezone != "" {
		hotel.Timezone = payload.Timezone
	}

	if err := config.DB.Save(&hotel).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// GetRMSSettings (GET /api/settings/rms) — engine parameters, seeded
// with defaults on first read.
func GetRMSSettings(c *gin.Context) {
	var settings models.RMSSettings
	if err := config.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultRMSSettings()
			if err := config.DB.Create(&settings).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"settings": settings})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateRMSSettings (PUT /api/settings/rms) — last-writer-wins upsert.
// The engine does not cross-validate floors against ceilings; the
// payload is stored as sent.
func UpdateRMSSettings(c *gin.Context) {
	var payload models.RMSSettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.RMSSettings
	err := config.DB.First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		settings = models.DefaultRMSSettings()
	}

	payload.ID = settings.ID
	payload.CreatedAt = settings.CreatedAt
	if err := config.DB.Save(&payload).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": payload})
}

// GetWidgets (GET /api/settings/widgets)
func GetWidgets(c *gin.Context) {
	var widgets []models.DashboardWidget
	if err := config.DB.Order("position ASC").Find(&widgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

// UpdateWidgets (PUT /api/settings/widgets) — upsert by slug,
// last-writer-wins.
func UpdateWidgets(c *gin.Context) {
	var widgets []models.DashboardWidget
	if err := c.ShouldBindJSON(&widgets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(widgets) == 0 {
		c.JSON(http.StatusOK, gin.H{"widgets": widgets})
		return
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(&widgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}
