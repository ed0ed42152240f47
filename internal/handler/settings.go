package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aitech-backend/internal/model"
)

// GetSettings returns the admin profile, creating an empty one on first read
func (h *Handlers) GetSettings(c *gin.Context) {
	var profile model.AdminProfile
	if err := h.db.FirstOrCreate(&profile, model.AdminProfile{ID: 1}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch settings",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateSettings updates the admin profile
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var profile model.AdminProfile
	if err := h.db.FirstOrCreate(&profile, model.AdminProfile{ID: 1}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch settings",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	profile.Firstname = req.Firstname
	profile.Lastname = req.Lastname
	profile.Email = req.Email
	profile.PhoneNumber = req.PhoneNumber
	profile.Country = req.Country

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to update settings",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
