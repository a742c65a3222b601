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
	"github.com/conquerblocks/nft-marketplace/internal/app"
	"github.com/conquerblocks/nft-marketplace/internal/config"
	"github.com/conquerblocks/nft-marketplace/internal/emitter"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/providers/jetstream"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ledger"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting ledger event emitter")

	// The emitter tails the ledger written by the API, so it needs the shared database
	if cfg.Database.InMemory() {
		logger.FatalCtx(ctx, "Database host is required, an in-memory ledger cannot be shared")
	}
	db, err := app.OpenDB(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)
	ledgerClient, err := app.NewLedger(cfg.Ledger, dataStore)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger", zap.Error(err))
	}

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(
		ctx,
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			PublishRetries: cfg.NATS.PublishRetries,
		}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	ledgerSubscriber := ledger.NewSubscriber(ledger.Config{
		ChainID:      cfg.Ledger.ChainID,
		PollInterval: cfg.Emitter.PollInterval,
		BatchSize:    uint64(cfg.Emitter.BatchSize),
	}, dataStore, ledgerClient, jsonAdapter, clockAdapter)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	eventEmitter := emitter.NewEmitter(
		ledgerSubscriber,
		natsPublisher,
		store.NewCursorStore(dataStore),
		emitter.Config{
			ChainID:         cfg.Ledger.ChainID,
			StartBlock:      cfg.Emitter.StartBlock,
			CursorSaveFreq:  cfg.Emitter.CursorSaveFreq,
			CursorSaveDelay: cfg.Emitter.CursorSaveDelay,
		},
		clockAdapter,
	)
	defer eventEmitter.Close()

	// Channel for emitter errors
	errCh := make(chan error, 1)

	// Start the emitter
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Ledger event emitter stopped")
}
