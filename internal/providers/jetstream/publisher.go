package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/messaging"
)

// SubjectPrefix prefixes every published subject
const SubjectPrefix = "events"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// PublishRetries is the number of retries after a failed publish
	PublishRetries uint64
	// RetryInterval is the initial backoff between publish attempts
	RetryInterval time.Duration
}

type publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config Config
}

// ConnectOptions returns the connection options shared by publishers and consumers
func ConnectOptions(cfg Config) []nats.Option {
	return []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}

// NewPublisher connects to NATS and makes sure the event stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, ConnectOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{SubjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create or update stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// PublishEvent publishes a ledger event to NATS JetStream
// The event id doubles as the JetStream message id so retried publishes are deduplicated
func (p *publisher) PublishEvent(ctx context.Context, event *domain.LedgerEvent) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := Subject(event)

	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(event.EventID))
		if err != nil {
			logger.WarnCtx(ctx, "Failed to publish event, retrying",
				zap.Error(err),
				zap.String("subject", subject),
				zap.String("eventID", event.EventID))
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	if p.config.RetryInterval > 0 {
		b.InitialInterval = p.config.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, p.config.PublishRetries), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subject builds the NATS subject of an event
// Format: events.{contract}.{event}, e.g. events.marketplace.bought
func Subject(event *domain.LedgerEvent) string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, event.Subject())
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
