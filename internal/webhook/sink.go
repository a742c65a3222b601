package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

const maxResponseBody = 4 * 1024

// ErrDeliveryFailed is returned when the endpoint does not accept an event
var ErrDeliveryFailed = errors.New("webhook delivery failed")

// Config holds the configuration for forwarding events to a webhook endpoint
type Config struct {
	URL    string
	Secret string
	// EventTypes filters the forwarded events, empty or "*" forwards everything
	EventTypes []string
	// Timeout bounds a single delivery
	Timeout time.Duration
}

// Sink forwards ledger events to an HTTP endpoint as signed JSON
// A failed delivery returns an error so the bridge redelivers the event
type Sink struct {
	config     Config
	httpClient adapter.HTTPClient
	io         adapter.IO
	json       adapter.JSON
	clock      adapter.Clock
}

// NewSink validates the configuration and creates a webhook sink
func NewSink(cfg Config, httpClient adapter.HTTPClient, ioAdapter adapter.IO, jsonAdapter adapter.JSON, clock adapter.Clock) (*Sink, error) {
	if cfg.URL == "" {
		return nil, errors.New("webhook URL is required")
	}
	if cfg.Secret == "" {
		return nil, errors.New("webhook secret is required")
	}
	for _, eventType := range cfg.EventTypes {
		if eventType != EventTypeWildcard && !slices.Contains(EventTypes, eventType) {
			return nil, fmt.Errorf("unknown webhook event type: %s", eventType)
		}
	}

	return &Sink{
		config:     cfg,
		httpClient: httpClient,
		io:         ioAdapter,
		json:       jsonAdapter,
		clock:      clock,
	}, nil
}

// Matches reports whether the event type passes the configured filter
func (s *Sink) Matches(eventType string) bool {
	if len(s.config.EventTypes) == 0 {
		return true
	}
	return slices.Contains(s.config.EventTypes, EventTypeWildcard) || slices.Contains(s.config.EventTypes, eventType)
}

// HandleEvent delivers the event when it passes the filter
func (s *Sink) HandleEvent(ctx context.Context, event *domain.LedgerEvent) error {
	webhookEvent := NewWebhookEvent(event)
	if !s.Matches(webhookEvent.EventType) {
		logger.DebugCtx(ctx, "Skipping filtered webhook event",
			zap.String("eventID", webhookEvent.EventID),
			zap.String("eventType", webhookEvent.EventType))
		return nil
	}

	result, err := s.Deliver(ctx, webhookEvent)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, result.Error)
	}

	logger.InfoCtx(ctx, "Webhook delivered",
		zap.String("eventID", webhookEvent.EventID),
		zap.String("eventType", webhookEvent.EventType),
		zap.Int("statusCode", result.StatusCode))
	return nil
}

// Deliver sends a single signed POST
// Transport failures and non-2xx answers are reported in the result, not as errors
func (s *Sink) Deliver(ctx context.Context, event WebhookEvent) (*DeliveryResult, error) {
	payload, signature, timestamp, err := GenerateSignedPayload(s.json, s.config.Secret, event, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	headers := map[string]string{
		"Content-Type":         "application/json",
		"X-Webhook-Signature":  signature,
		"X-Webhook-Event-ID":   event.EventID,
		"X-Webhook-Event-Type": event.EventType,
		"X-Webhook-Timestamp":  strconv.FormatInt(timestamp, 10),
	}

	resp, err := s.httpClient.PostWithHeadersNoRetry(ctx, s.config.URL, headers, bytes.NewReader(payload))
	if err != nil {
		logger.WarnCtx(ctx, "Webhook request failed", zap.Error(err), zap.String("eventID", event.EventID))
		return &DeliveryResult{Error: err.Error()}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := s.io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read webhook response", zap.Error(err))
	}

	result := &DeliveryResult{
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
	if !result.Success {
		result.Error = fmt.Sprintf("unexpected status code %d", resp.StatusCode)
		logger.WarnCtx(ctx, "Webhook endpoint rejected event",
			zap.String("eventID", event.EventID),
			zap.Int("statusCode", resp.StatusCode),
			zap.String("body", result.Body))
	}

	return result, nil
}
