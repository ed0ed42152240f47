package model

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry statuses.
const (
	InquiryStatusNew      = "new"
	InquiryStatusReplied  = "replied"
	InquiryStatusArchived = "archived"
)

// InquiryTypeEventRegistration marks submissions that came through an event
// sign-up form rather than the general contact form.
const InquiryTypeEventRegistration = "event_registration"

// Inquiry represents a customer-submitted contact request
type Inquiry struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"type:varchar(255);not null"`
	Email      string `json:"email" gorm:"type:varchar(255);not null;index"`
	Phone      string `json:"phone" gorm:"type:varchar(50)"`
	Company    string `json:"company" gorm:"type:varchar(255)"`
	Country    string `json:"country" gorm:"type:varchar(100)"`
	JobTitle   string `json:"job_title" gorm:"type:varchar(255)"`
	JobDetails string `json:"job_details" gorm:"type:text"`
	Type       string `json:"type" gorm:"type:varchar(50);index"`

	Timestamp time.Time `json:"timestamp" gorm:"index"`
	Status    string    `json:"status" gorm:"type:varchar(50);not null;default:new;index"`

	// Reply and ReplyTimestamp are both set or both nil; Status is
	// "replied" exactly when Reply is set.
	Reply          *string    `json:"reply,omitempty" gorm:"type:text"`
	ReplyTimestamp *time.Time `json:"reply_timestamp,omitempty"`

	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "contact_submissions"
}
