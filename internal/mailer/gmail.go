package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailTransport sends mail via the Gmail API using OAuth2 credentials.
type GmailTransport struct {
	service   *gmail.Service
	userEmail string
	name      string
}

// GmailCredentials holds the OAuth2 material for the Gmail transport.
type GmailCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	UserEmail    string
	SenderName   string
}

// NewGmailTransport creates a Gmail API transport
func NewGmailTransport(creds GmailCredentials) (*GmailTransport, error) {
	ctx := context.Background()

	oauth2Config := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: creds.RefreshToken,
	}

	tokenSource := oauth2Config.TokenSource(ctx, token)

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &GmailTransport{
		service:   service,
		userEmail: creds.UserEmail,
		name:      creds.SenderName,
	}, nil
}

// Send delivers a single message through the Gmail API
func (t *GmailTransport) Send(ctx context.Context, msg Message) error {
	raw := t.buildRawMessage(msg)
	encoded := base64.URLEncoding.EncodeToString([]byte(raw))

	_, err := t.service.Users.Messages.Send(t.userEmail, &gmail.Message{Raw: encoded}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}
	return nil
}

// buildRawMessage assembles the RFC 822 message the Gmail API expects
func (t *GmailTransport) buildRawMessage(msg Message) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %q <%s>\r\n", t.name, t.userEmail))
	if msg.ToName != "" {
		b.WriteString(fmt.Sprintf("To: %q <%s>\r\n", msg.ToName, msg.To))
	} else {
		b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)

	return b.String()
}

// TestConnection verifies the Gmail API credentials by fetching the profile
func (t *GmailTransport) TestConnection(ctx context.Context) error {
	_, err := t.service.Users.GetProfile(t.userEmail).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to test Gmail API connection: %w", err)
	}
	return nil
}

// Close closes the transport (no-op for the Gmail API)
func (t *GmailTransport) Close() error {
	return nil
}
