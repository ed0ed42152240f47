package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aitech-backend/internal/model"
)

// GetNotifications returns queued emails with pagination, newest first. The
// admin UI polls this (filtered by type=email_reply) for its status badges.
func (h *Handlers) GetNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	offset := (page - 1) * limit

	query := h.db.Model(&model.Notification{})

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to count notifications",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var notifications []model.Notification
	if err := query.Order("timestamp DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch notifications",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, NotificationResponse{
			ID:             n.ID,
			Type:           n.Type,
			InquiryID:      n.InquiryID,
			RecipientEmail: n.RecipientEmail,
			RecipientName:  n.RecipientName,
			Message:        n.Message,
			Timestamp:      n.Timestamp,
			Status:         n.Status,
			Error:          n.Error,
			DeliveredAt:    n.DeliveredAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": responses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}
