package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/api/server"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/executor"
	"github.com/conquerblocks/nft-marketplace/internal/app"
	"github.com/conquerblocks/nft-marketplace/internal/auth"
	"github.com/conquerblocks/nft-marketplace/internal/config"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/metadata"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
	"github.com/conquerblocks/nft-marketplace/internal/ratelimit"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT marketplace API")

	// Initialize store and ledger
	dataStore, err := app.OpenStore(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to open store", zap.Error(err))
	}
	ledger, err := app.NewLedger(cfg.Ledger, dataStore)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}
	loader := deployment.NewLoader(dataStore)

	// A memory ledger starts empty on every run
	if cfg.Database.InMemory() {
		if err := app.FundGenesis(ctx, ledger, cfg.Ledger.GenesisAccounts); err != nil {
			logger.FatalCtx(ctx, "Failed to fund genesis accounts", zap.Error(err))
		}
		d, err := app.EnsureDeployment(ctx, cfg.Ledger, ledger, loader)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to deploy contracts", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Using in-memory deployment",
			zap.String("nft", d.NFT.Hex()),
			zap.String("marketplace", d.Marketplace.Hex()))
	} else if _, err := loader.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrNotDeployed) {
			logger.FatalCtx(ctx, "Failed to load deployment", zap.Error(err))
		}
		logger.WarnCtx(ctx, "Contracts are not deployed yet, run marketctl deploy")
	}

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout)

	// Redis backs login nonces and rate limiting when configured
	var redisClient adapter.RedisClient
	var nonces auth.NonceStore
	if cfg.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() {
			_ = redisClient.Close()
		}()
		nonces = auth.NewRedisNonceStore(redisClient)
		logger.InfoCtx(ctx, "Using Redis for login nonces", zap.String("addr", cfg.Redis.Addr))
	} else {
		nonces = auth.NewMemoryNonceStore(clock)
	}

	authService, err := auth.NewService(auth.Config{
		JWTSecret:  cfg.Auth.JWTSecret,
		SessionTTL: cfg.Auth.SessionTTL,
		NonceTTL:   cfg.Auth.NonceTTL,
	}, nonces, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create auth service", zap.Error(err))
	}

	var limiter ratelimit.Limiter
	if cfg.Auth.WriteRateLimit > 0 {
		limiter, err = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute:   cfg.Auth.WriteRateLimit,
			Burst:               cfg.Auth.WriteRateLimit,
			EnableLocalFallback: true,
		}, redisClient)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() {
			_ = limiter.Close()
		}()
	}

	// Token metadata and uploads
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})
	metadataResolver := metadata.NewResolver(httpClient, uriResolver, jsonAdapter, metadata.Config{
		DetectMimeTypes: cfg.Metadata.DetectMimeTypes,
	})
	uploader := ipfs.NewUploader(
		adapter.NewIPFSShell(cfg.IPFS.APIURL, cfg.Metadata.HTTPTimeout),
		adapter.NewJCS(),
		ipfs.Config{Pin: cfg.IPFS.Pin, MaxSize: constants.MAX_UPLOAD_SIZE},
	)

	exec := executor.NewExecutor(
		executor.Config{MetadataConcurrency: cfg.Metadata.Concurrency},
		ledger,
		loader,
		dataStore,
		metadataResolver,
		uploader,
		authService,
		jsonAdapter,
	)
	defer exec.Close()

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	srv := server.New(serverConfig, exec, authService, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
