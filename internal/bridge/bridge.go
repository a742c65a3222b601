package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	natsjs "github.com/conquerblocks/nft-marketplace/internal/providers/jetstream"
)

// Config holds the configuration for the event bridge
type Config struct {
	NATS natsjs.Config
	// ConsumerName makes the consumer durable, an empty name creates an ephemeral one
	ConsumerName string
	// FilterSubject narrows the consumed subjects, defaults to every event
	FilterSubject  string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	// DeliverNew skips the events already stored in the stream
	DeliverNew bool
}

// Sink receives the events consumed by the bridge
type Sink interface {
	HandleEvent(ctx context.Context, event *domain.LedgerEvent) error
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(ctx context.Context, event *domain.LedgerEvent) error

// HandleEvent calls f(ctx, event)
func (f SinkFunc) HandleEvent(ctx context.Context, event *domain.LedgerEvent) error {
	return f(ctx, event)
}

// Bridge defines the interface for the event bridge
//
//go:generate mockgen -source=bridge.go -destination=../mocks/bridge.go -package=mocks -mock_names=Bridge=MockBridge,Sink=MockEventSink
type Bridge interface {
	// Run consumes events until the context is done
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	sink   Sink
	json   adapter.JSON
	config Config
}

// NewBridge connects to NATS and returns a bridge that forwards stream events to the sink
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	sink Sink,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	nc, js, err := natsJS.Connect(cfg.NATS.URL, natsjs.ConnectOptions(cfg.NATS)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.FilterSubject == "" {
		cfg.FilterSubject = natsjs.SubjectPrefix + ".>"
	}

	return &bridge{
		nc:     nc,
		js:     js,
		sink:   sink,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event bridge",
		zap.String("stream", b.config.NATS.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("subject", b.config.FilterSubject))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: b.config.FilterSubject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	}
	if b.config.DeliverNew {
		consumerConfig.DeliverPolicy = jetstream.DeliverNewPolicy
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.NATS.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	// Messages are handled one at a time so the sink sees them in stream order
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single NATS message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}

	var event domain.LedgerEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		// Unparseable data never succeeds on redelivery
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.DebugCtx(ctx, "Received event",
		zap.String("eventID", event.EventID),
		zap.String("subject", event.Subject()),
		zap.String("txHash", event.TxHash),
		zap.Uint64("deliveryCount", deliveries),
	)

	if err := b.sink.HandleEvent(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to handle event"), zap.String("eventID", event.EventID))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
