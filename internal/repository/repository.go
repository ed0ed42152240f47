package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"aitech-backend/internal/model"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetInquiry returns the inquiry with the given id, or nil if it does not
// exist (a deleted inquiry is not an error for callers like the dispatcher).
func (r *Repository) GetInquiry(id uint) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	result := r.db.First(&inquiry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error fetching inquiry: %w", result.Error)
	}
	return &inquiry, nil
}

// PendingNotifications returns up to limit notifications still waiting for
// dispatch, oldest first.
func (r *Repository) PendingNotifications(limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	result := r.db.
		Where("status = ?", model.NotificationStatusPending).
		Order("timestamp ASC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get pending notifications: %w", result.Error)
	}
	return notifications, nil
}

// CountPendingNotifications returns the number of notifications waiting for
// dispatch.
func (r *Repository) CountPendingNotifications() (int64, error) {
	var count int64
	result := r.db.Model(&model.Notification{}).
		Where("status = ?", model.NotificationStatusPending).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count pending notifications: %w", result.Error)
	}
	return count, nil
}

// MarkNotificationDelivered moves a pending notification to delivered. The
// guard on the current status keeps terminal states terminal: a row that has
// already been delivered or failed is left untouched.
func (r *Repository) MarkNotificationDelivered(id uint, deliveredAt time.Time) error {
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND status = ?", id, model.NotificationStatusPending).
		Updates(map[string]interface{}{
			"status":       model.NotificationStatusDelivered,
			"delivered_at": deliveredAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as delivered: %w", result.Error)
	}
	return nil
}

// MarkNotificationFailed moves a pending notification to failed and records
// the transport error message.
func (r *Repository) MarkNotificationFailed(id uint, errorMsg string) error {
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND status = ?", id, model.NotificationStatusPending).
		Updates(map[string]interface{}{
			"status": model.NotificationStatusFailed,
			"error":  errorMsg,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as failed: %w", result.Error)
	}
	return nil
}

// GetNotification returns a single notification by id, or nil if absent.
func (r *Repository) GetNotification(id uint) (*model.Notification, error) {
	var notification model.Notification
	result := r.db.First(&notification, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error fetching notification: %w", result.Error)
	}
	return &notification, nil
}

// LatestEmailStatus returns the newest email_reply notification for an
// inquiry, or nil when the inquiry has never been replied to.
func (r *Repository) LatestEmailStatus(inquiryID uint) (*model.Notification, error) {
	var notification model.Notification
	result := r.db.
		Where("inquiry_id = ? AND type = ?", inquiryID, model.NotificationTypeEmailReply).
		Order("timestamp DESC").
		First(&notification)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error fetching email status: %w", result.Error)
	}
	return &notification, nil
}

// RepliesForInquiry returns the message thread for an inquiry, oldest first.
func (r *Repository) RepliesForInquiry(inquiryID uint) ([]model.Reply, error) {
	var replies []model.Reply
	result := r.db.
		Where("inquiry_id = ?", inquiryID).
		Order("timestamp ASC").
		Find(&replies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get replies: %w", result.Error)
	}
	return replies, nil
}
