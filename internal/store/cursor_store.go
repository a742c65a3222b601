package store

import (
	"context"
	"fmt"
	"strconv"
)

// CursorStore defines the interface for storing and retrieving block cursors
type CursorStore interface {
	// GetBlockCursor retrieves the last processed block number for a consumer
	GetBlockCursor(ctx context.Context, name string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a consumer
	SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error
}

// KeyValueStore is the subset of Store a cursor store needs
type KeyValueStore interface {
	GetKeyValue(ctx context.Context, key string) (string, error)
	SetKeyValue(ctx context.Context, key string, value string) error
}

type cursorStore struct {
	kv KeyValueStore
}

// NewCursorStore creates a cursor store on top of a key-value store
func NewCursorStore(kv KeyValueStore) CursorStore {
	return &cursorStore{kv: kv}
}

func blockCursorKey(name string) string {
	return fmt.Sprintf("block_cursor:%s", name)
}

// GetBlockCursor retrieves the last processed block number, 0 if no cursor exists
func (s *cursorStore) GetBlockCursor(ctx context.Context, name string) (uint64, error) {
	return getBlockCursor(ctx, s.kv, name)
}

// SetBlockCursor stores the last processed block number
func (s *cursorStore) SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error {
	return setBlockCursor(ctx, s.kv, name, blockNumber)
}

func getBlockCursor(ctx context.Context, kv KeyValueStore, name string) (uint64, error) {
	value, err := kv.GetKeyValue(ctx, blockCursorKey(name))
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if value == "" {
		return 0, nil
	}

	blockNumber, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

func setBlockCursor(ctx context.Context, kv KeyValueStore, name string, blockNumber uint64) error {
	err := kv.SetKeyValue(ctx, blockCursorKey(name), strconv.FormatUint(blockNumber, 10))
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
