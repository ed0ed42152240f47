package handler

import (
	"strconv"
	"time"
)

// ContactRequest is the public contact form payload
type ContactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	Country    string `json:"country"`
	JobTitle   string `json:"job_title"`
	JobDetails string `json:"job_details" binding:"required"`
	Type       string `json:"type"`
}

// InquiryResponse represents the response structure for inquiries
type InquiryResponse struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Company        string     `json:"company,omitempty"`
	Country        string     `json:"country,omitempty"`
	JobTitle       string     `json:"job_title,omitempty"`
	JobDetails     string     `json:"job_details"`
	Type           string     `json:"type,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
	Status         string     `json:"status"`
	Reply          *string    `json:"reply,omitempty"`
	ReplyTimestamp *time.Time `json:"reply_timestamp,omitempty"`
}

// ReplyRequest is the admin reply payload
type ReplyRequest struct {
	Message string `json:"message" binding:"required"`
}

// ReplyResponse represents one thread message
type ReplyResponse struct {
	ID          uint      `json:"id"`
	InquiryID   uint      `json:"inquiry_id"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	To          string    `json:"to"`
	CompanyName string    `json:"company_name,omitempty"`
	Status      string    `json:"status"`
}

// NotificationResponse represents one queued email and its delivery state
type NotificationResponse struct {
	ID             uint       `json:"id"`
	Type           string     `json:"type"`
	InquiryID      uint       `json:"inquiry_id"`
	RecipientEmail string     `json:"recipient_email"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Message        string     `json:"message"`
	Timestamp      time.Time  `json:"timestamp"`
	Status         string     `json:"status"`
	Error          string     `json:"error,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// EventRequest is the create/update payload for events
type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ArticleRequest is the create/update payload for articles
type ArticleRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
}

// GalleryImageRequest is the create/update payload for gallery entries
type GalleryImageRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	ImagePath   string `json:"image_path"`
}

// SettingsRequest is the admin profile payload
type SettingsRequest struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phonenumber"`
	Country     string `json:"country"`
}

// TrackRequest records one page view
type TrackRequest struct {
	Path      string `json:"path" binding:"required"`
	Referrer  string `json:"referrer"`
	VisitorID string `json:"visitor_id"`
}

// AnalyticsSummaryResponse aggregates back-office counters
type AnalyticsSummaryResponse struct {
	TotalInquiries   int64            `json:"total_inquiries"`
	NewInquiries     int64            `json:"new_inquiries"`
	RepliedInquiries int64            `json:"replied_inquiries"`
	TotalReplies     int64            `json:"total_replies"`
	PageViews        int64            `json:"page_views"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	Notifications    map[string]int64 `json:"notifications"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Database  string            `json:"database"`
	Metrics   map[string]string `json:"metrics,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}
