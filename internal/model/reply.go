package model

import "time"

// ReplyStatusSent is the only status a reply row ever carries.
const ReplyStatusSent = "sent"

// Reply is one admin-sent message in an inquiry thread. Rows are append-only
// and independent of the inquiry record they refer to.
type Reply struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	InquiryID   uint      `json:"inquiry_id" gorm:"not null;index"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"index"`
	To          string    `json:"to" gorm:"type:varchar(255);not null"`
	CompanyName string    `json:"company_name" gorm:"type:varchar(255)"`
	Status      string    `json:"status" gorm:"type:varchar(50);not null"`
}

// TableName specifies the table name for Reply
func (Reply) TableName() string {
	return "replies"
}
