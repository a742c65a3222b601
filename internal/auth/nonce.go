package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
)

// NonceStore keeps one pending login nonce per address
type NonceStore interface {
	// Put stores the nonce of an address, replacing any previous one
	Put(ctx context.Context, address common.Address, nonce string, ttl time.Duration) error
	// Take returns and removes the nonce of an address, ErrNonceNotFound if absent or expired
	Take(ctx context.Context, address common.Address) (string, error)
}

const nonceKeyPrefix = "auth:nonce:"

type redisNonceStore struct {
	client adapter.RedisClient
}

// NewRedisNonceStore creates a nonce store shared by every API instance
func NewRedisNonceStore(client adapter.RedisClient) NonceStore {
	return &redisNonceStore{client: client}
}

func (s *redisNonceStore) Put(ctx context.Context, address common.Address, nonce string, ttl time.Duration) error {
	if err := s.client.Set(ctx, nonceKey(address), nonce, ttl); err != nil {
		return fmt.Errorf("failed to store nonce: %w", err)
	}
	return nil
}

func (s *redisNonceStore) Take(ctx context.Context, address common.Address) (string, error) {
	nonce, err := s.client.GetDel(ctx, nonceKey(address))
	if err != nil {
		if errors.Is(err, adapter.ErrRedisKeyNotFound) {
			return "", ErrNonceNotFound
		}
		return "", fmt.Errorf("failed to load nonce: %w", err)
	}
	return nonce, nil
}

func nonceKey(address common.Address) string {
	return nonceKeyPrefix + strings.ToLower(address.Hex())
}

type pendingNonce struct {
	nonce     string
	expiresAt time.Time
}

type memoryNonceStore struct {
	mu     sync.Mutex
	clock  adapter.Clock
	nonces map[common.Address]pendingNonce
}

// NewMemoryNonceStore creates a process local nonce store
func NewMemoryNonceStore(clock adapter.Clock) NonceStore {
	return &memoryNonceStore{
		clock:  clock,
		nonces: make(map[common.Address]pendingNonce),
	}
}

func (s *memoryNonceStore) Put(_ context.Context, address common.Address, nonce string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for addr, pending := range s.nonces {
		if !now.Before(pending.expiresAt) {
			delete(s.nonces, addr)
		}
	}
	s.nonces[address] = pendingNonce{nonce: nonce, expiresAt: now.Add(ttl)}
	return nil
}

func (s *memoryNonceStore) Take(_ context.Context, address common.Address) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.nonces[address]
	if !ok {
		return "", ErrNonceNotFound
	}
	delete(s.nonces, address)

	if !s.clock.Now().Before(pending.expiresAt) {
		return "", ErrNonceNotFound
	}
	return pending.nonce, nil
}
