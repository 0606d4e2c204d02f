package mail

import (
	"context"
	"io"
)

// Message is a provider-neutral email payload. Nothing here is SMTP
// specific, so an API-based sender can satisfy Mail with the same type.
type Message struct {
	// From overrides the configured default sender when non-empty.
	From string
	// To holds the primary recipients and must not be empty.
	To []string
	// Cc holds carbon copy recipients.
	Cc []string
	// Bcc holds blind carbon copy recipients.
	Bcc []string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body, used when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML body.
	HTMLBody string
}

// Mail is the delivery contract the application depends on.
type Mail interface {
	io.Closer
	// Send delivers msg through the underlying provider.
	Send(ctx context.Context, msg Message) error
}
