package model

import "time"

// NotificationTypeEmailReply is the only notification kind the mail
// dispatcher handles; the table may carry other kinds in the future.
const NotificationTypeEmailReply = "email_reply"

// Notification statuses. Pending transitions at most once, to exactly one of
// delivered or failed; both are terminal.
const (
	NotificationStatusPending   = "pending"
	NotificationStatusDelivered = "delivered"
	NotificationStatusFailed    = "failed"
)

// Notification represents one queued unit of outbound-email work
type Notification struct {
	ID             uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Type           string `json:"type" gorm:"type:varchar(50);not null;index"`
	InquiryID      uint   `json:"inquiry_id" gorm:"index"`
	RecipientEmail string `json:"recipient_email" gorm:"type:varchar(255);not null"`
	RecipientName  string `json:"recipient_name" gorm:"type:varchar(255)"`
	Message        string `json:"message" gorm:"type:text;not null"`

	Timestamp   time.Time  `json:"timestamp" gorm:"index"`
	Status      string     `json:"status" gorm:"type:varchar(50);not null;default:pending;index"`
	Error       string     `json:"error,omitempty" gorm:"type:text"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
