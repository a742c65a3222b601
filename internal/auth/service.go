// Package auth implements wallet login: the API hands out a nonce, the wallet signs it
// with personal_sign and the signature is exchanged for a session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// Challenge is the message a wallet must sign to log in
type Challenge struct {
	Address   common.Address
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// Session is an authenticated wallet session
type Session struct {
	Address   common.Address
	Token     string
	ExpiresAt time.Time
}

// Config holds the auth service configuration
type Config struct {
	JWTSecret  string
	SessionTTL time.Duration
	NonceTTL   time.Duration
}

// Service authenticates wallets
//
//go:generate mockgen -source=service.go -destination=../mocks/auth_service.go -package=mocks -mock_names=Service=MockAuthService
type Service interface {
	// Challenge creates a login nonce for an address
	Challenge(ctx context.Context, address common.Address) (*Challenge, error)
	// Login exchanges a signed challenge for a session
	Login(ctx context.Context, address common.Address, signature string) (*Session, error)
	// Verify validates a session token and returns its wallet address
	Verify(token string) (common.Address, error)
}

type service struct {
	cfg      Config
	nonces   NonceStore
	sessions *sessions
	clock    adapter.Clock
}

// NewService creates the wallet auth service
func NewService(cfg Config, nonces NonceStore, clock adapter.Clock) (Service, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.SessionTTL <= 0 || cfg.NonceTTL <= 0 {
		return nil, fmt.Errorf("invalid ttl: session %s, nonce %s", cfg.SessionTTL, cfg.NonceTTL)
	}

	return &service{
		cfg:    cfg,
		nonces: nonces,
		sessions: &sessions{
			secret: []byte(cfg.JWTSecret),
			ttl:    cfg.SessionTTL,
			clock:  clock,
		},
		clock: clock,
	}, nil
}

func (s *service) Challenge(ctx context.Context, address common.Address) (*Challenge, error) {
	nonce := uuid.NewString()
	if err := s.nonces.Put(ctx, address, nonce, s.cfg.NonceTTL); err != nil {
		return nil, err
	}

	return &Challenge{
		Address:   address,
		Nonce:     nonce,
		Message:   LoginMessage(nonce),
		ExpiresAt: s.clock.Now().Add(s.cfg.NonceTTL),
	}, nil
}

// Login consumes the pending nonce whether or not the signature is valid
func (s *service) Login(ctx context.Context, address common.Address, signature string) (*Session, error) {
	nonce, err := s.nonces.Take(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := VerifySignature(address, LoginMessage(nonce), signature); err != nil {
		logger.WarnCtx(ctx, "Wallet login rejected",
			zap.String("address", address.Hex()),
			zap.Error(err))
		return nil, err
	}

	token, expiresAt, err := s.sessions.issue(address)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Wallet logged in", zap.String("address", address.Hex()))
	return &Session{Address: address, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) Verify(token string) (common.Address, error) {
	return s.sessions.parse(token)
}
