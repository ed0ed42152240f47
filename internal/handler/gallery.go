package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aitech-backend/internal/model"
)

// GetGalleryImages returns all gallery entries, newest first
func (h *Handlers) GetGalleryImages(c *gin.Context) {
	query := h.db.Model(&model.GalleryImage{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var images []model.GalleryImage
	if err := query.Order("created_at DESC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch gallery images",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage creates a gallery entry
func (h *Handlers) CreateGalleryImage(c *gin.Context) {
	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	image := model.GalleryImage{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		ImagePath:   req.ImagePath,
	}

	if err := h.db.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create gallery image",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// GetGalleryImage returns a specific gallery entry
func (h *Handlers) GetGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid gallery image ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var image model.GalleryImage
	if err := h.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Gallery image not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch gallery image",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, image)
}

// UpdateGalleryImage updates a gallery entry
func (h *Handlers) UpdateGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid gallery image ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var image model.GalleryImage
	if err := h.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Gallery image not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch gallery image",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	image.Title = req.Title
	image.Description = req.Description
	image.Category = req.Category
	image.ImageURL = req.ImageURL
	image.ImagePath = req.ImagePath

	if err := h.db.Save(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to update gallery image",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteGalleryImage deletes a gallery entry
func (h *Handlers) DeleteGalleryImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid gallery image ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.db.Delete(&model.GalleryImage{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete gallery image",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
