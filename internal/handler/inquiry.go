package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"aitech-backend/internal/model"
	"aitech-backend/internal/service"
)

// GetInquiries returns inquiries with optional status filter, search and
// pagination, newest first
func (h *Handlers) GetInquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	offset := (page - 1) * limit

	query := h.db.Model(&model.Inquiry{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to count inquiries",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var inquiries []model.Inquiry
	if err := query.Order("timestamp DESC").Offset(offset).Limit(limit).Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch inquiries",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	responses := make([]InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		responses = append(responses, toInquiryResponse(inquiry))
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": responses,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// GetInquiry returns a specific inquiry
func (h *Handlers) GetInquiry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var inquiry model.Inquiry
	if err := h.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Inquiry not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch inquiry",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// DeleteInquiry deletes an inquiry. Its replies and notifications are kept;
// the dispatcher degrades to a placeholder if one is still pending.
func (h *Handlers) DeleteInquiry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := h.db.Delete(&model.Inquiry{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete inquiry",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// ArchiveInquiry marks an inquiry as archived
func (h *Handlers) ArchiveInquiry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	result := h.db.Model(&model.Inquiry{}).Where("id = ?", id).
		Update("status", model.InquiryStatusArchived)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to archive inquiry",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Inquiry not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SendReply records an admin reply and queues the outbound email
func (h *Handlers) SendReply(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	reply, err := h.replies.SendReply(c.Request.Context(), uint(id), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyReply):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: "Reply message must not be empty",
				Code:    http.StatusBadRequest,
			})
		case errors.Is(err, service.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "not_found",
				Message: "Inquiry not found",
				Code:    http.StatusNotFound,
			})
		default:
			logrus.Errorf("Failed to send reply: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "database_error",
				Message: "Failed to send reply",
				Code:    http.StatusInternalServerError,
			})
		}
		return
	}

	h.metrics.RepliesSent.Inc()

	c.JSON(http.StatusCreated, toReplyResponse(*reply))
}

// GetReplies returns the message thread for an inquiry, oldest first
func (h *Handlers) GetReplies(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	replies, err := h.repo.RepliesForInquiry(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch replies",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	responses := make([]ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		responses = append(responses, toReplyResponse(reply))
	}

	c.JSON(http.StatusOK, responses)
}

// GetEmailStatus returns the delivery state of the latest reply email for an
// inquiry. The inquiry's own status and this status move independently, so a
// replied inquiry may still report a pending or failed email here.
func (h *Handlers) GetEmailStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid inquiry ID",
			Code:    http.StatusBadRequest,
		})
		return
	}

	notification, err := h.repo.LatestEmailStatus(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to fetch email status",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if notification == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "No reply email found for inquiry",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       notification.Status,
		"error":        notification.Error,
		"delivered_at": notification.DeliveredAt,
	})
}

func toInquiryResponse(inquiry model.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:             inquiry.ID,
		Name:           inquiry.Name,
		Email:          inquiry.Email,
		Phone:          inquiry.Phone,
		Company:        inquiry.Company,
		Country:        inquiry.Country,
		JobTitle:       inquiry.JobTitle,
		JobDetails:     inquiry.JobDetails,
		Type:           inquiry.Type,
		Timestamp:      inquiry.Timestamp,
		Status:         inquiry.Status,
		Reply:          inquiry.Reply,
		ReplyTimestamp: inquiry.ReplyTimestamp,
	}
}

func toReplyResponse(reply model.Reply) ReplyResponse {
	return ReplyResponse{
		ID:          reply.ID,
		InquiryID:   reply.InquiryID,
		Message:     reply.Message,
		Timestamp:   reply.Timestamp,
		To:          reply.To,
		CompanyName: reply.CompanyName,
		Status:      reply.Status,
	}
}
