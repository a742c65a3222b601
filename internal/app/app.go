// Package app assembles the ledger shared by the marketplace binaries
package app

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/config"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

// OpenDB connects to PostgreSQL and configures the connection pool
func OpenDB(cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if !debug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenStore returns the PostgreSQL store, or the in-memory store when no database host is set
func OpenStore(cfg config.DatabaseConfig, debug bool) (store.Store, error) {
	if cfg.InMemory() {
		logger.Warn("Database host not configured, ledger state is kept in memory")
		return store.NewMemoryStore(), nil
	}

	db, err := OpenDB(cfg, debug)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to database",
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.DBName))

	return store.NewPGStore(db), nil
}

// NewLedger builds a ledger able to deploy the token and marketplace contracts
func NewLedger(cfg config.LedgerConfig, st store.Store) (*chain.Ledger, error) {
	gasPrice, ok := new(big.Int).SetString(cfg.GasPrice, 10)
	if !ok || gasPrice.Sign() < 0 {
		return nil, fmt.Errorf("invalid gas price: %q", cfg.GasPrice)
	}

	return chain.NewLedger(
		chain.Config{ChainID: cfg.ChainID, GasPrice: gasPrice},
		st,
		adapter.NewClock(),
		adapter.NewJSON(),
		adapter.NewJCS(),
		nft.New(),
		marketplace.New(),
	), nil
}

// ParsePrivateKey parses a hex private key with or without the 0x prefix
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// DeployerAddress returns the account of the configured deployer key
func DeployerAddress(cfg config.LedgerConfig) (common.Address, error) {
	if cfg.DeployerPrivateKey == "" {
		return common.Address{}, errors.New("deployer private key is required")
	}
	key, err := ParsePrivateKey(cfg.DeployerPrivateKey)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// FundGenesis credits the genesis accounts, balances are given in ether
func FundGenesis(ctx context.Context, ledger *chain.Ledger, accounts map[string]string) error {
	for account, amount := range accounts {
		address, err := domain.ParseAddress(account)
		if err != nil {
			return fmt.Errorf("invalid genesis account: %w", err)
		}
		wei, err := domain.ParseEther(amount)
		if err != nil {
			return fmt.Errorf("invalid genesis balance of %s: %w", address.Hex(), err)
		}
		if err := ledger.Fund(ctx, address, wei); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDeployment returns the current deployment, deploying both contracts
// from the configured deployer when there is none yet
func EnsureDeployment(ctx context.Context, cfg config.LedgerConfig, ledger *chain.Ledger, loader deployment.Loader) (*deployment.Deployment, error) {
	d, err := loader.Load(ctx)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, domain.ErrNotDeployed) {
		return nil, err
	}

	deployer, err := DeployerAddress(cfg)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "No deployment found, deploying contracts", zap.String("deployer", deployer.Hex()))
	return deployment.Deploy(ctx, ledger, deployer, new(big.Int).SetUint64(cfg.FeePercent))
}
