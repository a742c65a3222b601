package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/conquerblocks/nft-marketplace/internal/app"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/config"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

// cli carries the state shared by the subcommands
type cli struct {
	configFile string
	envPath    string
	cfg        *config.MarketctlConfig

	store  store.Store
	ledger *chain.Ledger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "marketctl",
		Short: "Deploy and administer the NFT marketplace ledger",
		Long: `marketctl deploys the BlocksNFT and Marketplace contracts, writes their
artifacts for clients and manages ledger accounts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Flush(2 * time.Second)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&c.envPath, "env", "e", "config/", "path to environment files")

	rootCmd.AddCommand(
		newDeployCmd(c),
		newFundCmd(c),
		newBalanceCmd(c),
		newKeygenCmd(c),
		newMigrateCmd(c),
		newEventsCmd(c),
	)

	return rootCmd
}

// init loads the configuration and the logger
func (c *cli) init() error {
	if c.configFile == "" {
		config.ChdirRepoRoot()
	}

	cfg, err := config.LoadMarketctlConfig(c.configFile, c.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.cfg = cfg

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "marketctl",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// openLedger opens the store and the ledger on first use
func (c *cli) openLedger(ctx context.Context) (*chain.Ledger, error) {
	if c.ledger != nil {
		return c.ledger, nil
	}

	st, err := app.OpenStore(c.cfg.Database, c.cfg.Debug)
	if err != nil {
		return nil, err
	}
	ledger, err := app.NewLedger(c.cfg.Ledger, st)
	if err != nil {
		return nil, err
	}

	c.store = st
	c.ledger = ledger
	return ledger, nil
}
