package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"aitech-backend/internal/dispatcher"
	metricsPkg "aitech-backend/internal/metrics"
	"aitech-backend/internal/repository"
	"aitech-backend/internal/service"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	db         *gorm.DB
	repo       *repository.Repository
	replies    *service.ReplyService
	dispatcher *dispatcher.Dispatcher
	metrics    *metricsPkg.Metrics
}

// NewHandlers creates new HTTP handlers
func NewHandlers(db *gorm.DB, repo *repository.Repository, replies *service.ReplyService, d *dispatcher.Dispatcher, metrics *metricsPkg.Metrics) *Handlers {
	return &Handlers{
		db:         db,
		repo:       repo,
		replies:    replies,
		dispatcher: d,
		metrics:    metrics,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	router.GET("/healthz", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Public site
		api.POST("/contact", h.SubmitContact)
		api.POST("/track", h.TrackPageView)

		// Inquiries and the reply pipeline
		api.GET("/inquiries", h.GetInquiries)
		api.GET("/inquiries/:id", h.GetInquiry)
		api.DELETE("/inquiries/:id", h.DeleteInquiry)
		api.PATCH("/inquiries/:id/archive", h.ArchiveInquiry)
		api.POST("/inquiries/:id/reply", h.SendReply)
		api.GET("/inquiries/:id/replies", h.GetReplies)
		api.GET("/inquiries/:id/email-status", h.GetEmailStatus)

		api.GET("/notifications", h.GetNotifications)

		// Site content
		api.GET("/events", h.GetEvents)
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.GET("/articles", h.GetArticles)
		api.POST("/articles", h.CreateArticle)
		api.GET("/articles/:id", h.GetArticle)
		api.PUT("/articles/:id", h.UpdateArticle)
		api.DELETE("/articles/:id", h.DeleteArticle)

		api.GET("/gallery", h.GetGalleryImages)
		api.POST("/gallery", h.CreateGalleryImage)
		api.GET("/gallery/:id", h.GetGalleryImage)
		api.PUT("/gallery/:id", h.UpdateGalleryImage)
		api.DELETE("/gallery/:id", h.DeleteGalleryImage)

		// Back office
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)
		api.GET("/analytics/summary", h.GetAnalyticsSummary)

		// Dispatcher control
		api.POST("/dispatcher/start", h.StartDispatcher)
		api.POST("/dispatcher/stop", h.StopDispatcher)
		api.POST("/dispatcher/run-once", h.RunDispatcherOnce)
		api.GET("/dispatcher/status", h.GetDispatcherStatus)
	}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Database:  "ok",
		Metrics:   make(map[string]string),
	}

	if err := h.db.Raw("SELECT 1").Error; err != nil {
		response.Status = "error"
		response.Database = "error"
		logrus.Errorf("Database health check failed: %v", err)
	}

	if h.dispatcher.IsRunning() {
		response.Metrics["dispatcher"] = "running"
		response.Metrics["next_run"] = h.dispatcher.GetNextRun().Format(time.RFC3339)
		response.Metrics["last_run"] = h.dispatcher.GetLastRun().Format(time.RFC3339)
	} else {
		response.Metrics["dispatcher"] = "stopped"
	}

	if pending, err := h.repo.CountPendingNotifications(); err == nil {
		response.Metrics["pending_notifications"] = formatInt64(pending)
	}

	statusCode := http.StatusOK
	if response.Status == "error" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
