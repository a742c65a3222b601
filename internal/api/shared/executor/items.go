package executor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/marketplace"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

func (e *executor) marketplace(ctx context.Context) (*marketplace.Binding, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return marketplace.NewBinding(d.Marketplace, e.ledger), nil
}

func (e *executor) ListItems(ctx context.Context) (*dto.ItemListResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	items, err := readItems(ctx, market, func(item *domain.MarketItem) bool {
		return !item.Sold
	})
	if err != nil {
		return nil, err
	}

	responses, err := e.mapItems(ctx, market, items)
	if err != nil {
		return nil, err
	}

	return &dto.ItemListResponse{Items: responses}, nil
}

func (e *executor) GetItem(ctx context.Context, itemID uint64) (*dto.ItemResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	item, err := market.Items(ctx, new(big.Int).SetUint64(itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", itemID, err)
	}
	// Unassigned ids read as the zero item
	if item.ItemID == 0 {
		return nil, nil
	}

	return e.mapItem(ctx, market, item)
}

func (e *executor) GetTotalPrice(ctx context.Context, itemID uint64) (*dto.TotalPriceResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	totalPrice, err := market.GetTotalPrice(ctx, new(big.Int).SetUint64(itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to get total price of item %d: %w", itemID, err)
	}

	return &dto.TotalPriceResponse{
		ItemID:          itemID,
		TotalPrice:      totalPrice.String(),
		TotalPriceEther: domain.FormatEther(totalPrice),
	}, nil
}

func (e *executor) CreateItem(ctx context.Context, from common.Address, nftAddress common.Address, tokenID uint64, price *big.Int) (*dto.CreateItemResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	itemID, receipt, err := market.CreateItem(ctx, chain.TransactOpts{From: from}, nftAddress, new(big.Int).SetUint64(tokenID), price)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Item listed",
		zap.String("seller", from.Hex()),
		zap.String("itemID", itemID.String()),
		zap.String("txHash", receipt.TxHash.Hex()))

	item, err := e.readItem(ctx, market, itemID)
	if err != nil {
		return nil, err
	}

	return &dto.CreateItemResponse{
		Item:        *item,
		Transaction: dto.MapReceiptToDTO(receipt),
	}, nil
}

func (e *executor) PurchaseItem(ctx context.Context, from common.Address, itemID uint64, value *big.Int) (*dto.PurchaseResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	id := new(big.Int).SetUint64(itemID)
	if value == nil {
		value, err = market.GetTotalPrice(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get total price of item %d: %w", itemID, err)
		}
	}

	receipt, err := market.PurchaseItem(ctx, chain.TransactOpts{From: from, Value: value}, id)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Item purchased",
		zap.String("buyer", from.Hex()),
		zap.Uint64("itemID", itemID),
		zap.String("value", value.String()),
		zap.String("txHash", receipt.TxHash.Hex()))

	item, err := e.readItem(ctx, market, id)
	if err != nil {
		return nil, err
	}

	return &dto.PurchaseResponse{
		Item:        *item,
		Transaction: dto.MapReceiptToDTO(receipt),
	}, nil
}

func (e *executor) readItem(ctx context.Context, market *marketplace.Binding, itemID *big.Int) (*dto.ItemResponse, error) {
	item, err := market.Items(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	return e.mapItem(ctx, market, item)
}

func (e *executor) ListListedItems(ctx context.Context, seller common.Address) (*dto.ListedItemsResponse, error) {
	market, err := e.marketplace(ctx)
	if err != nil {
		return nil, err
	}

	items, err := readItems(ctx, market, func(item *domain.MarketItem) bool {
		return item.Seller == seller
	})
	if err != nil {
		return nil, err
	}

	responses, err := e.mapItems(ctx, market, items)
	if err != nil {
		return nil, err
	}

	result := &dto.ListedItemsResponse{
		Listed: []dto.ItemResponse{},
		Sold:   []dto.ItemResponse{},
	}
	for _, item := range responses {
		if item.Sold {
			result.Sold = append(result.Sold, item)
		} else {
			result.Listed = append(result.Listed, item)
		}
	}

	return result, nil
}

func (e *executor) ListPurchases(ctx context.Context, buyer common.Address) (*dto.PurchaseListResponse, error) {
	d, err := e.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	market := marketplace.NewBinding(d.Marketplace, e.ledger)

	events, err := market.FilterBought(ctx, new(big.Int).SetUint64(d.BlockNumber), nil, nil, []common.Address{buyer})
	if err != nil {
		return nil, fmt.Errorf("failed to filter Bought logs: %w", err)
	}

	items := make([]*domain.MarketItem, len(events))
	for i, event := range events {
		items[i], err = market.Items(ctx, event.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item %s: %w", event.ItemID, err)
		}
	}

	responses, err := e.mapItems(ctx, market, items)
	if err != nil {
		return nil, err
	}

	purchases := make([]dto.PurchasedItemResponse, len(events))
	for i, event := range events {
		purchases[i] = dto.PurchasedItemResponse{
			ItemResponse: responses[i],
			Buyer:        event.Buyer.Hex(),
			TxHash:       event.Raw.TxHash.Hex(),
			BlockNumber:  event.Raw.BlockNumber,
		}
	}

	return &dto.PurchaseListResponse{Purchases: purchases}, nil
}
