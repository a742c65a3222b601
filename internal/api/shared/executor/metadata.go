package executor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/nft"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// tokenDetails is the token URI and the metadata it points to.
// Either is empty when the lookup failed.
type tokenDetails struct {
	URI      string
	Metadata *domain.TokenMetadata
}

// tokenDetails reads the token URI and resolves its metadata.
// Failures are logged and leave the item without metadata.
func (e *executor) tokenDetails(ctx context.Context, contract common.Address, tokenID uint64) tokenDetails {
	tokenURI, err := nft.NewBinding(contract, e.ledger).TokenURI(ctx, new(big.Int).SetUint64(tokenID))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read token URI",
			zap.Error(err),
			zap.String("contract", contract.Hex()),
			zap.Uint64("tokenID", tokenID))
		return tokenDetails{}
	}

	meta, err := e.resolver.Resolve(ctx, tokenURI)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve token metadata",
			zap.Error(err),
			zap.String("uri", tokenURI),
			zap.Uint64("tokenID", tokenID))
		return tokenDetails{URI: tokenURI}
	}

	return tokenDetails{URI: tokenURI, Metadata: meta}
}

// mapItems maps items with their total price and resolves their metadata on the worker pool.
// The result keeps the order of items.
func (e *executor) mapItems(ctx context.Context, market *marketplace.Binding, items []*domain.MarketItem) ([]dto.ItemResponse, error) {
	responses := make([]dto.ItemResponse, len(items))
	if len(items) == 0 {
		return responses, nil
	}

	for i, item := range items {
		totalPrice, err := market.GetTotalPrice(ctx, new(big.Int).SetUint64(item.ItemID))
		if err != nil {
			return nil, fmt.Errorf("failed to get total price of item %d: %w", item.ItemID, err)
		}
		responses[i] = dto.MapItemToDTO(item, totalPrice)
	}

	group := e.pool.NewGroupContext(ctx)
	for _, item := range items {
		group.Submit(func() tokenDetails {
			return e.tokenDetails(ctx, item.NFT, item.TokenID)
		})
	}

	details, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve item metadata: %w", err)
	}

	for i, detail := range details {
		responses[i].TokenURI = detail.URI
		responses[i].Metadata = dto.MapMetadataToDTO(detail.Metadata)
	}

	return responses, nil
}

func (e *executor) mapItem(ctx context.Context, market *marketplace.Binding, item *domain.MarketItem) (*dto.ItemResponse, error) {
	responses, err := e.mapItems(ctx, market, []*domain.MarketItem{item})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// readItems reads items 1..itemCount that satisfy keep
func readItems(ctx context.Context, market *marketplace.Binding, keep func(*domain.MarketItem) bool) ([]*domain.MarketItem, error) {
	count, err := market.ItemCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get item count: %w", err)
	}

	var items []*domain.MarketItem
	for id := uint64(1); id <= count.Uint64(); id++ {
		item, err := market.Items(ctx, new(big.Int).SetUint64(id))
		if err != nil {
			return nil, fmt.Errorf("failed to get item %d: %w", id, err)
		}
		if keep(item) {
			items = append(items, item)
		}
	}

	return items, nil
}
