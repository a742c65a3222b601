package emitter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/messaging"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainID         uint64
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
}

// CursorName is the cursor key the emitter of a chain persists its progress under
func CursorName(chainID uint64) string {
	return fmt.Sprintf("ledger:%d", chainID)
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter tails ledger events and publishes them to NATS
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	cursors    store.CursorStore
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	cursors store.CursorStore,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		cursors:    cursors,
		config:     cfg,
		clock:      clock,
	}
}

// startBlock picks the configured block, then the block after the saved cursor, then genesis
func (e *emitter) startBlock(ctx context.Context, cursor string) (uint64, error) {
	if e.config.StartBlock > 0 {
		logger.InfoCtx(ctx, "Starting from configured block", zap.Uint64("block", e.config.StartBlock))
		return e.config.StartBlock, nil
	}

	lastBlock, err := e.cursors.GetBlockCursor(ctx, cursor)
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	if lastBlock > 0 {
		logger.InfoCtx(ctx, "Resuming from last processed block", zap.Uint64("block", lastBlock+1))
		return lastBlock + 1, nil
	}

	logger.InfoCtx(ctx, "Starting from genesis")
	return 0, nil
}

// Run starts the event emitter
//
// The cursor only ever points at a block whose events were all published. A block is
// known to be complete once an event of a later block arrives, so after a restart the
// events of the last block seen may be published again.
func (e *emitter) Run(ctx context.Context) error {
	cursor := CursorName(e.config.ChainID)

	startBlock, err := e.startBlock(ctx, cursor)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		logger.InfoCtx(ctx, "Starting event subscription", zap.String("cursor", cursor), zap.Uint64("block", startBlock))

		var lastSavedBlock uint64
		if startBlock > 0 {
			lastSavedBlock = startBlock - 1
		}
		currentBlock := startBlock
		lastSaveTime := e.clock.Now()

		handler := func(event *domain.LedgerEvent) error {
			if event.BlockNumber > currentBlock {
				completed := event.BlockNumber - 1
				shouldSave := completed-lastSavedBlock >= e.config.CursorSaveFreq ||
					e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

				if shouldSave && completed > lastSavedBlock {
					if err := e.cursors.SetBlockCursor(ctx, cursor, completed); err != nil {
						logger.WarnCtx(ctx, "Failed to save block cursor", zap.Error(err), zap.String("cursor", cursor), zap.Uint64("block", completed))
					} else {
						lastSavedBlock = completed
						lastSaveTime = e.clock.Now()
					}
				}
				currentBlock = event.BlockNumber
			}

			if err := e.publisher.PublishEvent(ctx, event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.EventID, err)
			}

			logger.DebugCtx(ctx, "Published event",
				zap.String("eventID", event.EventID),
				zap.String("event", string(event.Event)),
				zap.Uint64("block", event.BlockNumber))

			return nil
		}

		errCh <- e.subscriber.SubscribeEvents(ctx, startBlock, handler)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
