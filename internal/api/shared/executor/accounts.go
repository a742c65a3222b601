package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/deployment"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

func (e *executor) GetHealth(ctx context.Context) (*dto.HealthResponse, error) {
	head, err := e.ledger.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	deployed := true
	if _, err := e.loader.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrNotDeployed) {
			return nil, err
		}
		deployed = false
	}

	return &dto.HealthResponse{
		Status:      "ok",
		ChainID:     e.ledger.ChainID(),
		BlockNumber: head,
		Deployed:    deployed,
	}, nil
}

func (e *executor) GetContracts(ctx context.Context) (*dto.ContractsResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	market := marketplace.NewBinding(d.Marketplace, e.ledger)

	feeAccount, err := market.FeeAccount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee account: %w", err)
	}
	feePercent, err := market.FeePercent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fee percent: %w", err)
	}

	artifacts := deployment.Artifacts(d)
	contracts := make([]dto.ContractResponse, len(artifacts))
	for i, artifact := range artifacts {
		contracts[i] = dto.ContractResponse{
			Name:    artifact.Name,
			Address: artifact.Address.Hex(),
			ABI:     artifact.ABI,
		}
	}

	return &dto.ContractsResponse{
		ChainID:     e.ledger.ChainID(),
		Contracts:   contracts,
		FeeAccount:  feeAccount.Hex(),
		FeePercent:  feePercent.String(),
		BlockNumber: d.BlockNumber,
	}, nil
}

func (e *executor) GetAccount(ctx context.Context, address common.Address) (*dto.AccountResponse, error) {
	balance, err := e.ledger.BalanceAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	nonce, err := e.ledger.NonceAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	response := &dto.AccountResponse{
		Address:      address.Hex(),
		Balance:      balance.String(),
		BalanceEther: domain.FormatEther(balance),
		Nonce:        nonce,
	}

	// Accounts exist before the contracts do
	d, err := e.loader.Load(ctx)
	if errors.Is(err, domain.ErrNotDeployed) {
		return response, nil
	}
	if err != nil {
		return nil, err
	}

	tokens, err := nft.NewBinding(d.NFT, e.ledger).BalanceOf(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get token balance: %w", err)
	}
	response.TokenBalance = tokens.Uint64()

	return response, nil
}
