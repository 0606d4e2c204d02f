package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrGatewayURLRequired is returned when the gateway base URL is missing.
	ErrGatewayURLRequired = errors.New("sms gateway url is required")
	// ErrGatewayNoRecipient is returned when Message.To is empty.
	ErrGatewayNoRecipient = errors.New("no recipient provided")
)

// Gateway is an SMS implementation that posts messages to an HTTP gateway.
type Gateway struct {
	url    string
	apiKey string
	sender string
	client *http.Client
}

// GatewayConfig configures the HTTP gateway implementation.
type GatewayConfig struct {
	// URL is the gateway send endpoint.
	URL string
	// APIKey authenticates requests to the gateway.
	APIKey string
	// Sender is the sender ID attached to outgoing messages.
	Sender string
	// Timeout bounds each HTTP call; defaults to 10 seconds.
	Timeout time.Duration
}

// NewGateway constructs an HTTP gateway SMS sender.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.URL == "" {
		return nil, ErrGatewayURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Gateway{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Send posts a message to the gateway.
func (g *Gateway) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrGatewayNoRecipient
	}

	payload, err := json.Marshal(map[string]string{
		"to":     msg.To,
		"body":   msg.Body,
		"sender": g.sender,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, body)
	}

	return nil
}

// Close implements io.Closer for interface compatibility.
func (g *Gateway) Close() error {
	g.client.CloseIdleConnections()
	return nil
}
