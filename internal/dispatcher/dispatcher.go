package dispatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"aitech-backend/internal/config"
	"aitech-backend/internal/mailer"
	"aitech-backend/internal/metrics"
	"aitech-backend/internal/model"
	"aitech-backend/internal/repository"
)

// Dispatcher polls the notification queue and turns pending email_reply
// notifications into sent mail, writing the terminal status back onto each
// row. A notification is handled at most once: the status guard in the
// repository keeps delivered and failed terminal.
type Dispatcher struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	config    *config.DispatcherConfig
	repo      *repository.Repository
	transport mailer.Transport
	metrics   *metrics.Metrics
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.RWMutex
}

// New creates a new dispatcher
func New(cfg *config.DispatcherConfig, repo *repository.Repository, transport mailer.Transport, m *metrics.Metrics) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		cron:      cron.New(cron.WithSeconds()),
		config:    cfg,
		repo:      repo,
		transport: transport,
		metrics:   m,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start starts the dispatcher
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		return fmt.Errorf("dispatcher is already running")
	}

	// A restart after Stop needs a fresh context.
	if d.ctx.Err() != nil {
		d.ctx, d.cancel = context.WithCancel(context.Background())
	}

	if d.entryID == 0 {
		schedule := fmt.Sprintf("*/%d * * * * *", d.config.IntervalSeconds)

		entryID, err := d.cron.AddFunc(schedule, d.processNotifications)
		if err != nil {
			return fmt.Errorf("failed to add cron job: %w", err)
		}
		d.entryID = entryID
	}

	d.cron.Start()
	d.isRunning = true

	logrus.Infof("Mail dispatcher started with interval: %d seconds", d.config.IntervalSeconds)
	return nil
}

// Stop stops the dispatcher
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isRunning {
		return nil
	}

	// Cancel context to stop any in-flight sends
	d.cancel()

	ctx := d.cron.Stop()

	select {
	case <-ctx.Done():
		logrus.Info("Mail dispatcher stopped gracefully")
	case <-time.After(30 * time.Second):
		logrus.Warn("Mail dispatcher stop timeout, forcing shutdown")
	}

	d.isRunning = false
	return nil
}

// IsRunning returns whether the dispatcher is running
func (d *Dispatcher) IsRunning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isRunning
}

// processNotifications is the main processing function that runs periodically
func (d *Dispatcher) processNotifications() {
	d.wg.Add(1)
	defer d.wg.Done()

	d.mu.RLock()
	if !d.isRunning {
		d.mu.RUnlock()
		logrus.Info("Dispatcher not running, skipping processing cycle")
		return
	}
	d.mu.RUnlock()

	startTime := time.Now()
	d.metrics.DispatchCycles.Inc()

	notifications, err := d.repo.PendingNotifications(d.config.BatchSize)
	if err != nil {
		logrus.Errorf("Failed to fetch pending notifications: %v", err)
		return
	}

	if len(notifications) > 0 {
		logrus.Infof("Dispatching %d pending notifications", len(notifications))
	}

	for _, notification := range notifications {
		if err := d.processNotification(notification); err != nil {
			logrus.Errorf("Failed to process notification %d: %v", notification.ID, err)
		}
	}

	if pending, err := d.repo.CountPendingNotifications(); err == nil {
		d.metrics.PendingNotifications.Set(float64(pending))
	}

	d.metrics.DispatchDuration.Observe(time.Since(startTime).Seconds())
}

// processNotification handles a single queued notification. Transport errors
// are recorded on the row and swallowed; they never propagate, so a failed
// notification stays failed with no retry.
func (d *Dispatcher) processNotification(notification model.Notification) error {
	select {
	case <-d.ctx.Done():
		return fmt.Errorf("context cancelled")
	default:
	}

	// Other notification kinds may share the queue; leave them untouched.
	if notification.Type != model.NotificationTypeEmailReply {
		logrus.Debugf("Notification %d is not an email reply, skipping", notification.ID)
		d.metrics.NotificationsSkipped.Inc()
		return nil
	}

	// Best-effort context lookup: a deleted inquiry degrades the rendering,
	// it does not block the send.
	inquiryDetails := ""
	inquiry, err := d.repo.GetInquiry(notification.InquiryID)
	if err != nil {
		logrus.Warnf("Failed to load inquiry %d for notification %d: %v",
			notification.InquiryID, notification.ID, err)
	} else if inquiry != nil {
		inquiryDetails = inquiry.JobDetails
	}

	htmlBody, err := mailer.RenderReplyEmail(notification.RecipientName, notification.Message, inquiryDetails)
	if err != nil {
		logrus.Errorf("Failed to render email for notification %d: %v", notification.ID, err)
		if markErr := d.repo.MarkNotificationFailed(notification.ID, err.Error()); markErr != nil {
			logrus.Errorf("Failed to record render failure: %v", markErr)
		}
		d.metrics.DeliveryFailures.Inc()
		return nil
	}

	msg := mailer.Message{
		To:       notification.RecipientEmail,
		ToName:   notification.RecipientName,
		Subject:  mailer.ReplySubject,
		HTMLBody: htmlBody,
	}

	if err := d.transport.Send(d.ctx, msg); err != nil {
		logrus.Errorf("Failed to send reply email for notification %d: %v", notification.ID, err)
		if markErr := d.repo.MarkNotificationFailed(notification.ID, err.Error()); markErr != nil {
			logrus.Errorf("Failed to record delivery failure: %v", markErr)
		}
		d.metrics.DeliveryFailures.Inc()
		return nil
	}

	if err := d.repo.MarkNotificationDelivered(notification.ID, time.Now()); err != nil {
		logrus.Errorf("Failed to mark notification %d as delivered: %v", notification.ID, err)
	}
	d.metrics.DeliverySuccesses.Inc()

	logrus.Infof("Reply email for notification %d delivered to %s", notification.ID, notification.RecipientEmail)
	return nil
}

// RunOnce runs the notification processing once (for manual triggering)
func (d *Dispatcher) RunOnce() error {
	logrus.Info("Running mail dispatch once")
	d.processNotifications()
	return nil
}

// GetNextRun returns the time of the next scheduled run
func (d *Dispatcher) GetNextRun() time.Time {
	if !d.IsRunning() {
		return time.Time{}
	}

	entry := d.cron.Entry(d.entryID)
	return entry.Next
}

// GetLastRun returns the time of the last run
func (d *Dispatcher) GetLastRun() time.Time {
	if !d.IsRunning() {
		return time.Time{}
	}

	entry := d.cron.Entry(d.entryID)
	return entry.Prev
}

// Wait waits for in-flight processing to finish
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
