package messaging

import (
	"context"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// EventHandler is called for every decoded ledger event, in block and log order
type EventHandler func(event *domain.LedgerEvent) error

// Subscriber defines the interface for following ledger events
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents delivers events starting at fromBlock until ctx is done
	// or the handler fails. The handler error is returned.
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the latest block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close releases the resources held by the subscriber
	Close()
}
