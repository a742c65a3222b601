// Package deployment deploys the marketplace contracts and locates them afterwards.
package deployment

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

// Deployment is a deployed pair of token and marketplace contracts
type Deployment struct {
	NFT         common.Address `json:"nft"`
	Marketplace common.Address `json:"marketplace"`
	Deployer    common.Address `json:"deployer"`
	// BlockNumber is the block the marketplace was deployed in
	BlockNumber uint64 `json:"block_number"`
}

// Address returns the address of a contract kind
func (d *Deployment) Address(kind domain.ContractKind) (common.Address, error) {
	switch kind {
	case domain.ContractKindNFT:
		return d.NFT, nil
	case domain.ContractKindMarketplace:
		return d.Marketplace, nil
	default:
		return common.Address{}, fmt.Errorf("%w: %s", domain.ErrUnknownContractKind, kind)
	}
}

// Deploy deploys BlocksNFT and then Marketplace(feePercent) from the deployer account.
// The deployer becomes the marketplace fee account.
func Deploy(ctx context.Context, ledger *chain.Ledger, deployer common.Address, feePercent *big.Int) (*Deployment, error) {
	if feePercent == nil || feePercent.Sign() < 0 {
		return nil, fmt.Errorf("invalid fee percent: %v", feePercent)
	}

	nftReceipt, err := ledger.Deploy(ctx, deployer, domain.ContractKindNFT)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", domain.ContractKindNFT, err)
	}

	marketReceipt, err := ledger.Deploy(ctx, deployer, domain.ContractKindMarketplace, feePercent)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", domain.ContractKindMarketplace, err)
	}

	d := &Deployment{
		NFT:         *nftReceipt.ContractAddress,
		Marketplace: *marketReceipt.ContractAddress,
		Deployer:    deployer,
		BlockNumber: marketReceipt.BlockNumber,
	}

	logger.InfoCtx(ctx, "Deployed marketplace contracts",
		zap.String("deployer", deployer.Hex()),
		zap.String("nft", d.NFT.Hex()),
		zap.String("marketplace", d.Marketplace.Hex()),
		zap.String("fee_percent", feePercent.String()))

	return d, nil
}

// Loader locates the current deployment
//
//go:generate mockgen -source=deployment.go -destination=../mocks/deployment_loader.go -package=mocks -mock_names=Loader=MockDeploymentLoader
type Loader interface {
	// Load returns the latest deployed contracts, domain.ErrNotDeployed if either is missing
	Load(ctx context.Context) (*Deployment, error)
}

type storeLoader struct {
	store store.Store
}

// NewLoader creates a loader reading the latest contracts of each kind from the store
func NewLoader(st store.Store) Loader {
	return &storeLoader{store: st}
}

func (l *storeLoader) Load(ctx context.Context) (*Deployment, error) {
	nftContract, err := l.store.GetLatestContractByKind(ctx, string(domain.ContractKindNFT))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s contract: %w", domain.ContractKindNFT, err)
	}
	marketContract, err := l.store.GetLatestContractByKind(ctx, string(domain.ContractKindMarketplace))
	if err != nil {
		return nil, fmt.Errorf("failed to get %s contract: %w", domain.ContractKindMarketplace, err)
	}
	if nftContract == nil || marketContract == nil {
		return nil, domain.ErrNotDeployed
	}

	return &Deployment{
		NFT:         common.HexToAddress(nftContract.Address),
		Marketplace: common.HexToAddress(marketContract.Address),
		Deployer:    common.HexToAddress(marketContract.Deployer),
		BlockNumber: marketContract.BlockNumber,
	}, nil
}
