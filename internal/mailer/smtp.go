package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"aitech-backend/internal/config"
)

// SMTPTransport sends mail through an SMTP relay.
type SMTPTransport struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

// NewSMTPTransport creates a transport for the configured SMTP relay. The
// dialer connects lazily on each send; no connection is held open.
func NewSMTPTransport(cfg *config.MailConfig) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.From,
		name:   cfg.SenderName,
	}
}

// Send delivers a single message, honoring context cancellation while the
// dial-and-send runs.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", t.from, t.name)
	m.SetAddressHeader("To", msg.To, msg.ToName)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the transport (no-op, connections are per-send)
func (t *SMTPTransport) Close() error {
	return nil
}
