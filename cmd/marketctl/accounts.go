package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

func newFundCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fund [ADDRESS] [ETHER]",
		Short: "Credit an account with ether",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			amount, err := domain.ParseEther(args[1])
			if err != nil {
				return err
			}

			ledger, err := c.openLedger(cmd.Context())
			if err != nil {
				return err
			}
			if err := ledger.Fund(cmd.Context(), address, amount); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Funded %s with %s ETH\n", address.Hex(), domain.FormatEther(amount))
			return nil
		},
	}
}

func newBalanceCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [ADDRESS]",
		Short: "Show the balance, nonce and token balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			address, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}

			ledger, err := c.openLedger(ctx)
			if err != nil {
				return err
			}
			balance, err := ledger.BalanceAt(ctx, address)
			if err != nil {
				return err
			}
			nonce, err := ledger.NonceAt(ctx, address)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address: %s\n", address.Hex())
			fmt.Fprintf(out, "Balance: %s ETH\n", domain.FormatEther(balance))
			fmt.Fprintf(out, "Nonce:   %d\n", nonce)

			d, err := deployment.NewLoader(c.store).Load(ctx)
			if errors.Is(err, domain.ErrNotDeployed) {
				return nil
			}
			if err != nil {
				return err
			}
			tokens, err := nft.NewBinding(d.NFT, ledger).BalanceOf(ctx, address)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Tokens:  %s\n", tokens)
			return nil
		},
	}
}

func newKeygenCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new account key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Address:     %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
			fmt.Fprintf(out, "Private key: %s\n", hex.EncodeToString(crypto.FromECDSA(key)))
			return nil
		},
	}
}
