package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// Transport delivers outbound mail. Implementations are constructor-injected
// into the dispatcher so tests can substitute a double.
type Transport interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}
