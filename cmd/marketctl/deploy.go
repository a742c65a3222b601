package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/app"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

func newDeployCmd(c *cli) *cobra.Command {
	var (
		outDir      string
		skipFunding bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy BlocksNFT and Marketplace and write their artifacts",
		Long: `Funds the genesis accounts, deploys BlocksNFT and then Marketplace(feePercent)
from the deployer key and writes <Contract>.json and <Contract>-address.json into
the contracts data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledger, err := c.openLedger(ctx)
			if err != nil {
				return err
			}
			if c.cfg.Database.InMemory() {
				logger.WarnCtx(ctx, "Deploying to an in-memory ledger, only the artifacts outlive this command")
			}

			if !skipFunding {
				if err := app.FundGenesis(ctx, ledger, c.cfg.Ledger.GenesisAccounts); err != nil {
					return err
				}
			}

			deployer, err := app.DeployerAddress(c.cfg.Ledger)
			if err != nil {
				return err
			}

			d, err := deployment.Deploy(ctx, ledger, deployer, new(big.Int).SetUint64(c.cfg.Ledger.FeePercent))
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = c.cfg.Ledger.ContractsDataDir
			}
			artifacts := deployment.NewArtifactStore(adapter.NewFileSystem(), adapter.NewJSON(), outDir)
			if err := artifacts.Write(d); err != nil {
				return err
			}
			logger.InfoCtx(ctx, "Wrote deployment artifacts", zap.String("dir", outDir))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BlocksNFT:   %s\n", d.NFT.Hex())
			fmt.Fprintf(out, "Marketplace: %s\n", d.Marketplace.Hex())
			fmt.Fprintf(out, "Fee account: %s (%d%%)\n", d.Deployer.Hex(), c.cfg.Ledger.FeePercent)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "contracts data directory, defaults to ledger.contracts_data_dir")
	cmd.Flags().BoolVar(&skipFunding, "skip-funding", false, "do not credit the genesis accounts")

	return cmd
}
