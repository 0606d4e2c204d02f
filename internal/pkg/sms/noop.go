package sms

import (
	"context"
	"log/slog"
)

// Noop is an SMS implementation that only logs messages.
//
// It is used in development environments where no gateway is configured.
type Noop struct{}

// NewNoop constructs a Noop SMS sender.
func NewNoop() *Noop {
	return &Noop{}
}

// Send logs the message without delivering it.
func (n *Noop) Send(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "sms send skipped, no gateway configured", "to", msg.To)
	return nil
}

// Close implements io.Closer for interface compatibility.
func (n *Noop) Close() error {
	return nil
}
