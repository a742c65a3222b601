package ledger

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/messaging"
	"github.com/conquerblocks/nft-marketplace/internal/store"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

// Config holds the configuration for following the ledger
type Config struct {
	ChainID uint64
	// PollInterval is the wait between polls once the head is reached
	PollInterval time.Duration
	// BatchSize is the number of blocks read per poll
	BatchSize uint64
}

// HeadReader reports the latest block of the ledger
type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type subscriber struct {
	store  store.Store
	head   HeadReader
	json   adapter.JSON
	clock  adapter.Clock
	config Config
	kinds  map[string]domain.ContractKind
}

// NewSubscriber creates a subscriber that polls the stored event logs of the ledger
func NewSubscriber(cfg Config, st store.Store, head HeadReader, jsonAdapter adapter.JSON, clock adapter.Clock) messaging.Subscriber {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	return &subscriber{
		store:  st,
		head:   head,
		json:   jsonAdapter,
		clock:  clock,
		config: cfg,
		kinds:  make(map[string]domain.ContractKind),
	}
}

// SubscribeEvents reads whole block ranges so a block is never split across polls
func (s *subscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	next := fromBlock

	for {
		head, err := s.head.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get latest block: %w", err)
		}

		if next > head {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.clock.After(s.config.PollInterval):
				continue
			}
		}

		to := min(head, next+s.config.BatchSize-1)
		rows, err := s.store.FilterEventLogs(ctx, store.EventLogFilter{
			FromBlock: &next,
			ToBlock:   &to,
		})
		if err != nil {
			return fmt.Errorf("failed to filter event logs: %w", err)
		}

		logger.DebugCtx(ctx, "Read ledger logs",
			zap.Uint64("from", next),
			zap.Uint64("to", to),
			zap.Int("logs", len(rows)))

		for i := range rows {
			event, err := s.toEvent(ctx, &rows[i])
			if err != nil {
				return err
			}
			if event == nil {
				continue
			}
			if err := handler(event); err != nil {
				return fmt.Errorf("failed to handle event %s: %w", event.EventID, err)
			}
		}

		next = to + 1
	}
}

// toEvent converts a stored log into a ledger event, nil for logs of unknown contracts
func (s *subscriber) toEvent(ctx context.Context, row *schema.EventLog) (*domain.LedgerEvent, error) {
	kind, err := s.contractKind(ctx, row.Address)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		logger.WarnCtx(ctx, "Skipping log of unknown contract", zap.String("address", row.Address))
		return nil, nil
	}

	var args map[string]string
	if len(row.Args) > 0 {
		if err := s.json.Unmarshal(row.Args, &args); err != nil {
			return nil, fmt.Errorf("failed to decode event arguments: %w", err)
		}
	}

	eventID, err := EventID(s.config.ChainID, row)
	if err != nil {
		return nil, err
	}

	return &domain.LedgerEvent{
		EventID:         eventID,
		ChainID:         s.config.ChainID,
		ContractKind:    kind,
		ContractAddress: row.Address,
		Event:           domain.EventName(row.Event),
		Args:            args,
		TxHash:          row.TxHash,
		BlockNumber:     row.BlockNumber,
		BlockHash:       row.BlockHash,
		LogIndex:        row.LogIndex,
		Timestamp:       row.Timestamp,
	}, nil
}

// EventID derives a stable ULID for a log: the block time is the timestamp part and
// keccak256(chainID, txHash, logIndex) fills the entropy, so a replayed log keeps its id
func EventID(chainID uint64, row *schema.EventLog) (string, error) {
	var chain, index [8]byte
	binary.BigEndian.PutUint64(chain[:], chainID)
	binary.BigEndian.PutUint64(index[:], uint64(row.LogIndex))
	seed := crypto.Keccak256(chain[:], common.HexToHash(row.TxHash).Bytes(), index[:])

	id, err := ulid.New(ulid.Timestamp(row.Timestamp), bytes.NewReader(seed))
	if err != nil {
		return "", fmt.Errorf("failed to derive event id: %w", err)
	}
	return id.String(), nil
}

func (s *subscriber) contractKind(ctx context.Context, address string) (domain.ContractKind, error) {
	if kind, ok := s.kinds[address]; ok {
		return kind, nil
	}

	contract, err := s.store.GetContract(ctx, address)
	if err != nil {
		return "", fmt.Errorf("failed to get contract %s: %w", address, err)
	}
	if contract == nil {
		return "", nil
	}

	kind := domain.ContractKind(contract.Kind)
	s.kinds[address] = kind
	return kind, nil
}

// GetLatestBlock returns the latest block number
func (s *subscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	head, err := s.head.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return head, nil
}

// Close is a no-op, the store is owned by the caller
func (s *subscriber) Close() {
	logger.Info("Ledger subscriber closed")
}
