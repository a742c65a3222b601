package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// ErrRedisUnavailable is returned when Redis fails and the local fallback is disabled
var ErrRedisUnavailable = errors.New("redis unavailable and fallback disabled")

// Config holds the rate limiter configuration
type Config struct {
	// RequestsPerMinute is the sustained rate allowed per key
	RequestsPerMinute int
	// Burst is the number of requests allowed at once, defaults to RequestsPerMinute
	Burst int
	// RedisKeyPrefix prefixes every key stored in Redis
	RedisKeyPrefix string
	// EnableLocalFallback limits in process while Redis is unreachable
	EnableLocalFallback bool
	// LocalCacheSize bounds the in-process limiters; the least recently used key is evicted first
	LocalCacheSize int
}

// Result is the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter limits requests per key, e.g. per wallet address
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request for key
	Allow(ctx context.Context, key string) (*Result, error)

	// Close drops the in-process limiters. The Redis client stays open, its owner closes it.
	Close() error
}

type limiter struct {
	config      Config
	distributed adapter.RedisRateLimiter
	limit       redis_rate.Limit
	locals      *lru.Cache[string, *rate.Limiter]
}

// NewLimiter creates a limiter backed by Redis. A nil client limits in process only.
func NewLimiter(cfg Config, rc adapter.RedisClient) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	locals, err := lru.New[string, *rate.Limiter](cfg.LocalCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create local limiter cache: %w", err)
	}

	l := &limiter{
		config: cfg,
		limit: redis_rate.Limit{
			Rate:   cfg.RequestsPerMinute,
			Burst:  cfg.Burst,
			Period: time.Minute,
		},
		locals: locals,
	}

	if rc == nil {
		logger.Info("Rate limiter initialized without Redis, limiting in process")
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Ping(ctx).Err(); err != nil {
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}
	l.distributed = rc.NewRateLimiter()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("local_fallback", cfg.EnableLocalFallback))

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, key string) (*Result, error) {
	if l.distributed == nil {
		return l.allowLocal(key), nil
	}

	res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, l.limit)
	if err != nil {
		if !l.config.EnableLocalFallback {
			return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
		}
		logger.WarnCtx(ctx, "Distributed rate limit failed, using local fallback",
			zap.Error(err),
			zap.String("key", key))
		return l.allowLocal(key), nil
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: max(res.RetryAfter, 0),
	}, nil
}

func (l *limiter) allowLocal(key string) *Result {
	local, ok := l.locals.Get(key)
	if !ok {
		local = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.config.RequestsPerMinute)), l.config.Burst)
		// A concurrent first request for the same key may have won the race
		if prev, found, _ := l.locals.PeekOrAdd(key, local); found {
			local = prev
		}
	}

	reservation := local.Reserve()
	delay := reservation.Delay()
	if delay > 0 {
		reservation.Cancel()
		return &Result{Allowed: false, RetryAfter: delay}
	}

	return &Result{Allowed: true, Remaining: int(local.Tokens())}
}

func (l *limiter) Close() error {
	l.locals.Purge()
	return nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	if cfg.LocalCacheSize <= 0 {
		cfg.LocalCacheSize = 10000
	}

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "nft-market:limiter:"
	}

	return nil
}
