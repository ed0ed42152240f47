package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aitech-backend/internal/model"
)

// SubmitContact handles public contact form submissions
func (h *Handlers) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if msg := validateContact(&req); msg != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: msg,
			Code:    http.StatusBadRequest,
		})
		return
	}

	inquiry := model.Inquiry{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Company:    strings.TrimSpace(req.Company),
		Country:    strings.TrimSpace(req.Country),
		JobTitle:   strings.TrimSpace(req.JobTitle),
		JobDetails: strings.TrimSpace(req.JobDetails),
		Type:       req.Type,
		Timestamp:  time.Now(),
		Status:     model.InquiryStatusNew,
	}

	if err := h.db.Create(&inquiry).Error; err != nil {
		logrus.Errorf("Failed to save contact submission: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to save contact submission",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	h.metrics.InquiriesReceived.Inc()
	logrus.Infof("Contact submission received: id=%d, email=%s", inquiry.ID, inquiry.Email)

	c.JSON(http.StatusCreated, gin.H{
		"id":      inquiry.ID,
		"message": "Thank you for contacting us! We'll get back to you soon.",
	})
}

// validateContact applies the field checks that go beyond binding tags.
// Returns an empty string when the request is acceptable.
func validateContact(req *ContactRequest) string {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 100 {
		return "Name must be between 2 and 100 characters"
	}

	details := strings.TrimSpace(req.JobDetails)
	if details == "" {
		return "Job details are required"
	}
	if len(details) > 5000 {
		return "Job details must not exceed 5000 characters"
	}

	if req.Type != "" && req.Type != model.InquiryTypeEventRegistration {
		return "Unknown submission type"
	}

	return ""
}

// TrackPageView records one page view for the analytics summary
func (h *Handlers) TrackPageView(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid request body",
			Code:    http.StatusBadRequest,
		})
		return
	}

	view := model.PageView{
		Path:      req.Path,
		Referrer:  req.Referrer,
		VisitorID: req.VisitorID,
		CreatedAt: time.Now(),
	}

	if err := h.db.Create(&view).Error; err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to record page view",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
