package repository

import (
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

func seedNotification(t *testing.T, conn *gorm.DB, status string, ts time.Time) model.Notification {
	t.Helper()
	n := model.Notification{
		Type:           model.NotificationTypeEmailReply,
		InquiryID:      1,
		RecipientEmail: "jane@example.com",
		RecipientName:  "Jane",
		Message:        "hello",
		Timestamp:      ts,
		Status:         status,
	}
	require.NoError(t, conn.Create(&n).Error)
	return n
}

func TestPendingNotificationsOldestFirst(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	now := time.Now()
	newer := seedNotification(t, conn, model.NotificationStatusPending, now)
	older := seedNotification(t, conn, model.NotificationStatusPending, now.Add(-time.Hour))
	seedNotification(t, conn, model.NotificationStatusDelivered, now.Add(-2*time.Hour))

	pending, err := repo.PendingNotifications(10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, older.ID, pending[0].ID)
	assert.Equal(t, newer.ID, pending[1].ID)

	count, err := repo.CountPendingNotifications()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestPendingNotificationsLimit(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	now := time.Now()
	for i := 0; i < 5; i++ {
		seedNotification(t, conn, model.NotificationStatusPending, now.Add(time.Duration(i)*time.Minute))
	}

	pending, err := repo.PendingNotifications(3)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestMarkNotificationDelivered(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	n := seedNotification(t, conn, model.NotificationStatusPending, time.Now())
	deliveredAt := time.Now()

	require.NoError(t, repo.MarkNotificationDelivered(n.ID, deliveredAt))

	got, err := repo.GetNotification(n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.NotificationStatusDelivered, got.Status)
	require.NotNil(t, got.DeliveredAt)
}

func TestMarkNotificationFailedRecordsError(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	n := seedNotification(t, conn, model.NotificationStatusPending, time.Now())

	require.NoError(t, repo.MarkNotificationFailed(n.ID, "SMTP timeout"))

	got, err := repo.GetNotification(n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.NotificationStatusFailed, got.Status)
	assert.Equal(t, "SMTP timeout", got.Error)
}

func TestTerminalStatusesStayTerminal(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	delivered := seedNotification(t, conn, model.NotificationStatusDelivered, time.Now())
	failed := seedNotification(t, conn, model.NotificationStatusFailed, time.Now())

	// Neither transition touches a row that already reached a terminal state
	require.NoError(t, repo.MarkNotificationFailed(delivered.ID, "late error"))
	require.NoError(t, repo.MarkNotificationDelivered(failed.ID, time.Now()))

	got, err := repo.GetNotification(delivered.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationStatusDelivered, got.Status)
	assert.Empty(t, got.Error)

	got, err = repo.GetNotification(failed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationStatusFailed, got.Status)
	assert.Nil(t, got.DeliveredAt)
}

func TestGetInquiryMissingIsNil(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	inquiry, err := repo.GetInquiry(42)
	require.NoError(t, err)
	assert.Nil(t, inquiry)
}

func TestLatestEmailStatus(t *testing.T) {
	conn := newTestDB(t)
	repo := New(conn)

	now := time.Now()
	seedNotification(t, conn, model.NotificationStatusFailed, now.Add(-time.Hour))
	latest := seedNotification(t, conn, model.NotificationStatusDelivered, now)

	got, err := repo.LatestEmailStatus(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, latest.ID, got.ID)

	// No notifications for an unknown inquiry
	got, err = repo.LatestEmailStatus(99)
	require.NoError(t, err)
	assert.Nil(t, got)
}
