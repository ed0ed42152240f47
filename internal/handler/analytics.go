package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"aitech-backend/internal/model"
)

// GetAnalyticsSummary aggregates inquiry, reply, notification and traffic
// counters for the back-office dashboard.
func (h *Handlers) GetAnalyticsSummary(c *gin.Context) {
	var summary AnalyticsSummaryResponse

	err := h.db.Model(&model.Inquiry{}).Count(&summary.TotalInquiries).Error
	if err == nil {
		err = h.db.Model(&model.Inquiry{}).Where("status = ?", model.InquiryStatusNew).Count(&summary.NewInquiries).Error
	}
	if err == nil {
		err = h.db.Model(&model.Inquiry{}).Where("status = ?", model.InquiryStatusReplied).Count(&summary.RepliedInquiries).Error
	}
	if err == nil {
		err = h.db.Model(&model.Reply{}).Count(&summary.TotalReplies).Error
	}
	if err == nil {
		err = h.db.Model(&model.PageView{}).Count(&summary.PageViews).Error
	}
	if err == nil {
		err = h.db.Model(&model.PageView{}).Distinct("visitor_id").Count(&summary.UniqueVisitors).Error
	}

	var rows []struct {
		Status string
		Total  int64
	}
	if err == nil {
		err = h.db.Model(&model.Notification{}).
			Select("status, COUNT(*) as total").
			Group("status").
			Find(&rows).Error
	}

	if err != nil {
		logrus.WithError(err).Error("Failed to compute analytics summary")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "database_error",
			Message: "Failed to compute analytics summary",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	summary.Notifications = make(map[string]int64, len(rows))
	for _, row := range rows {
		summary.Notifications[row.Status] = row.Total
	}

	c.JSON(http.StatusOK, summary)
}
