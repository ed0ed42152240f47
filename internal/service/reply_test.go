package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aitech-backend/internal/db"
	"aitech-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return conn
}

func seedInquiry(t *testing.T, conn *gorm.DB) *model.Inquiry {
	t.Helper()
	inquiry := &model.Inquiry{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Company:    "Acme Corp",
		JobDetails: "your request for a site audit",
		Timestamp:  time.Now(),
		Status:     model.InquiryStatusNew,
	}
	require.NoError(t, conn.Create(inquiry).Error)
	return inquiry
}

func TestSendReplyFanOut(t *testing.T) {
	conn := newTestDB(t)
	inquiry := seedInquiry(t, conn)
	svc := NewReplyService(conn)

	reply, err := svc.SendReply(context.Background(), inquiry.ID, "We will follow up next week.")
	require.NoError(t, err)
	require.NotNil(t, reply)

	// Inquiry carries the reply and flips to replied
	var updated model.Inquiry
	require.NoError(t, conn.First(&updated, inquiry.ID).Error)
	assert.Equal(t, model.InquiryStatusReplied, updated.Status)
	require.NotNil(t, updated.Reply)
	assert.Equal(t, "We will follow up next week.", *updated.Reply)
	assert.NotNil(t, updated.ReplyTimestamp)

	// Thread entry recorded
	var replies []model.Reply
	require.NoError(t, conn.Where("inquiry_id = ?", inquiry.ID).Find(&replies).Error)
	require.Len(t, replies, 1)
	assert.Equal(t, "jane@example.com", replies[0].To)
	assert.Equal(t, "Acme Corp", replies[0].CompanyName)
	assert.Equal(t, model.ReplyStatusSent, replies[0].Status)

	// Notification queued as pending
	var notifications []model.Notification
	require.NoError(t, conn.Where("inquiry_id = ?", inquiry.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationTypeEmailReply, notifications[0].Type)
	assert.Equal(t, model.NotificationStatusPending, notifications[0].Status)
	assert.Equal(t, "jane@example.com", notifications[0].RecipientEmail)
	assert.Equal(t, "Jane Doe", notifications[0].RecipientName)
}

func TestSendReplyEmptyMessage(t *testing.T) {
	conn := newTestDB(t)
	inquiry := seedInquiry(t, conn)
	svc := NewReplyService(conn)

	_, err := svc.SendReply(context.Background(), inquiry.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyReply)

	// Nothing written
	var count int64
	require.NoError(t, conn.Model(&model.Reply{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendReplyMissingInquiry(t *testing.T) {
	conn := newTestDB(t)
	svc := NewReplyService(conn)

	_, err := svc.SendReply(context.Background(), 9999, "Hello")
	assert.ErrorIs(t, err, ErrInquiryNotFound)

	var count int64
	require.NoError(t, conn.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendReplyTwiceAppendsThread(t *testing.T) {
	conn := newTestDB(t)
	inquiry := seedInquiry(t, conn)
	svc := NewReplyService(conn)

	_, err := svc.SendReply(context.Background(), inquiry.ID, "First answer")
	require.NoError(t, err)
	_, err = svc.SendReply(context.Background(), inquiry.ID, "Second answer")
	require.NoError(t, err)

	var replies []model.Reply
	require.NoError(t, conn.Where("inquiry_id = ?", inquiry.ID).Order("id").Find(&replies).Error)
	require.Len(t, replies, 2)

	var notifications []model.Notification
	require.NoError(t, conn.Where("inquiry_id = ?", inquiry.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 2)

	// Inquiry keeps the latest reply text
	var updated model.Inquiry
	require.NoError(t, conn.First(&updated, inquiry.ID).Error)
	require.NotNil(t, updated.Reply)
	assert.Equal(t, "Second answer", *updated.Reply)
}
