package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aitech-backend/internal/config"
	"aitech-backend/internal/db"
	"aitech-backend/internal/dispatcher"
	"aitech-backend/internal/mailer"
	"aitech-backend/internal/metrics"
	"aitech-backend/internal/model"
	"aitech-backend/internal/repository"
	"aitech-backend/internal/service"
)

// The Prometheus default registry rejects duplicate registration, so the
// metrics are created once for the whole test binary.
var testMetrics = metrics.NewMetrics()

type noopTransport struct{}

func (noopTransport) Send(ctx context.Context, msg mailer.Message) error { return nil }
func (noopTransport) Close() error                                       { return nil }

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	repo := repository.New(conn)
	replies := service.NewReplyService(conn)
	disp := dispatcher.New(&config.DispatcherConfig{IntervalSeconds: 60, BatchSize: 25}, repo, noopTransport{}, testMetrics)

	h := NewHandlers(conn, repo, replies, disp, testMetrics)
	r := gin.New()
	h.SetupRoutes(r)
	return r, conn
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	r, conn := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/contact", ContactRequest{
		Name:       "Jane Doe",
		Email:      "Jane@Example.com",
		Company:    "Acme Corp",
		JobDetails: "We need a website",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Thank you for contacting us")

	var inquiry model.Inquiry
	require.NoError(t, conn.First(&inquiry).Error)
	assert.Equal(t, "jane@example.com", inquiry.Email)
	assert.Equal(t, model.InquiryStatusNew, inquiry.Status)
}

func TestSubmitContactValidation(t *testing.T) {
	r, _ := newTestServer(t)

	// Name too short
	w := doJSON(t, r, http.MethodPost, "/api/v1/contact", ContactRequest{
		Name:       "J",
		Email:      "jane@example.com",
		JobDetails: "details",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown submission type
	w = doJSON(t, r, http.MethodPost, "/api/v1/contact", ContactRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		JobDetails: "details",
		Type:       "carrier_pigeon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing email fails binding
	w = doJSON(t, r, http.MethodPost, "/api/v1/contact", map[string]string{
		"name":        "Jane Doe",
		"job_details": "details",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackPageView(t *testing.T) {
	r, conn := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/track", TrackRequest{
		Path:      "/services",
		VisitorID: "v-1",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, conn.Model(&model.PageView{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetInquiriesFilterAndPagination(t *testing.T) {
	r, conn := newTestServer(t)

	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, conn.Create(&model.Inquiry{
			Name:       fmt.Sprintf("Visitor %d", i),
			Email:      fmt.Sprintf("v%d@example.com", i),
			JobDetails: "details",
			Timestamp:  now.Add(time.Duration(i) * time.Minute),
			Status:     model.InquiryStatusNew,
		}).Error)
	}
	require.NoError(t, conn.Create(&model.Inquiry{
		Name:       "Replied Visitor",
		Email:      "replied@example.com",
		JobDetails: "details",
		Timestamp:  now,
		Status:     model.InquiryStatusReplied,
	}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/inquiries?status=new&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Inquiries  []InquiryResponse `json:"inquiries"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Inquiries, 2)
	assert.EqualValues(t, 3, resp.Pagination.Total)
	// Newest first
	assert.Equal(t, "Visitor 2", resp.Inquiries[0].Name)
}

func TestSendReplyEndpoint(t *testing.T) {
	r, conn := newTestServer(t)

	inquiry := model.Inquiry{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		JobDetails: "details",
		Timestamp:  time.Now(),
		Status:     model.InquiryStatusNew,
	}
	require.NoError(t, conn.Create(&inquiry).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/inquiries/%d/reply", inquiry.ID), ReplyRequest{
		Message: "We will follow up next week.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var notifications []model.Notification
	require.NoError(t, conn.Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationStatusPending, notifications[0].Status)

	// Empty message
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/inquiries/%d/reply", inquiry.ID), ReplyRequest{
		Message: "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown inquiry
	w = doJSON(t, r, http.MethodPost, "/api/v1/inquiries/9999/reply", ReplyRequest{
		Message: "hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEmailStatus(t *testing.T) {
	r, conn := newTestServer(t)

	inquiry := model.Inquiry{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		JobDetails: "details",
		Timestamp:  time.Now(),
		Status:     model.InquiryStatusNew,
	}
	require.NoError(t, conn.Create(&inquiry).Error)

	// Never replied
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/inquiries/%d/email-status", inquiry.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, conn.Create(&model.Notification{
		Type:           model.NotificationTypeEmailReply,
		InquiryID:      inquiry.ID,
		RecipientEmail: inquiry.Email,
		Message:        "hello",
		Timestamp:      time.Now(),
		Status:         model.NotificationStatusFailed,
		Error:          "SMTP timeout",
	}).Error)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/inquiries/%d/email-status", inquiry.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.NotificationStatusFailed, resp["status"])
	assert.Equal(t, "SMTP timeout", resp["error"])
}

func TestArchiveInquiry(t *testing.T) {
	r, conn := newTestServer(t)

	inquiry := model.Inquiry{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		JobDetails: "details",
		Timestamp:  time.Now(),
		Status:     model.InquiryStatusNew,
	}
	require.NoError(t, conn.Create(&inquiry).Error)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/inquiries/%d/archive", inquiry.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var updated model.Inquiry
	require.NoError(t, conn.First(&updated, inquiry.ID).Error)
	assert.Equal(t, model.InquiryStatusArchived, updated.Status)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/inquiries/9999/archive", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventsCRUD(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events", EventRequest{
		Title:    "Tech Expo 2026",
		Date:     "2026-10-01",
		Location: "Lagos",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.EventStatusUpcoming, created.Status)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/events/%d", created.ID), EventRequest{
		Title:  "Tech Expo 2026",
		Status: model.EventStatusCompleted,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/events/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/events/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleTagsRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/articles", ArticleRequest{
		Title: "Launch notes",
		Tags:  []string{"news", "product"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{"news", "product"}, created.Tags)
	assert.Equal(t, model.ArticleStatusDraft, created.Status)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/articles/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"news", "product"}, got.Tags)
}

func TestSettingsRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	// First read creates the empty profile
	w := doJSON(t, r, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/settings", SettingsRequest{
		Firstname: "Ada",
		Lastname:  "Obi",
		Email:     "admin@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile model.AdminProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ada", profile.Firstname)
	assert.Equal(t, "admin@example.com", profile.Email)
}

func TestAnalyticsSummary(t *testing.T) {
	r, conn := newTestServer(t)

	require.NoError(t, conn.Create(&model.Inquiry{
		Name: "Jane", Email: "jane@example.com", JobDetails: "d",
		Timestamp: time.Now(), Status: model.InquiryStatusNew,
	}).Error)
	require.NoError(t, conn.Create(&model.PageView{Path: "/", VisitorID: "v-1", CreatedAt: time.Now()}).Error)
	require.NoError(t, conn.Create(&model.PageView{Path: "/about", VisitorID: "v-1", CreatedAt: time.Now()}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary AnalyticsSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.EqualValues(t, 1, summary.TotalInquiries)
	assert.EqualValues(t, 1, summary.NewInquiries)
	assert.EqualValues(t, 2, summary.PageViews)
	assert.EqualValues(t, 1, summary.UniqueVisitors)
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "stopped", resp.Metrics["dispatcher"])
}
