package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"aitech-backend/internal/model"
)

// ReplyService handles admin replies to customer inquiries. One reply fans
// out into three writes: the inquiry record, the reply thread, and the
// notification queue the mail dispatcher consumes. All three are committed in
// a single transaction so a reply is either fully recorded or not at all.
type ReplyService struct {
	db *gorm.DB
}

// NewReplyService creates a new reply service
func NewReplyService(db *gorm.DB) *ReplyService {
	return &ReplyService{db: db}
}

// SendReply records an admin reply to the given inquiry and queues the
// outbound email. Replying again to an already-replied inquiry is allowed:
// each reply appends its own thread entry and notification, and the inquiry
// keeps only the latest reply text.
func (s *ReplyService) SendReply(ctx context.Context, inquiryID uint, message string) (*model.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyReply
	}

	var reply model.Reply

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inquiry model.Inquiry
		if err := tx.First(&inquiry, inquiryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInquiryNotFound
			}
			return fmt.Errorf("failed to load inquiry: %w", err)
		}

		now := time.Now()

		if err := tx.Model(&inquiry).Updates(map[string]interface{}{
			"reply":           message,
			"reply_timestamp": now,
			"status":          model.InquiryStatusReplied,
		}).Error; err != nil {
			return fmt.Errorf("failed to update inquiry: %w", err)
		}

		reply = model.Reply{
			InquiryID:   inquiry.ID,
			Message:     message,
			Timestamp:   now,
			To:          inquiry.Email,
			CompanyName: inquiry.Company,
			Status:      model.ReplyStatusSent,
		}
		if err := tx.Create(&reply).Error; err != nil {
			return fmt.Errorf("failed to create reply: %w", err)
		}

		notification := model.Notification{
			Type:           model.NotificationTypeEmailReply,
			InquiryID:      inquiry.ID,
			RecipientEmail: inquiry.Email,
			RecipientName:  inquiry.Name,
			Message:        message,
			Timestamp:      now,
			Status:         model.NotificationStatusPending,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return fmt.Errorf("failed to queue notification: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Reply recorded for inquiry %d, notification queued", inquiryID)
	return &reply, nil
}
