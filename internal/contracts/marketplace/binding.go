package marketplace

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// OfferedEvent is a decoded Offered log
type OfferedEvent struct {
	ItemID  *big.Int
	NFT     common.Address
	TokenID *big.Int
	Price   *big.Int
	Seller  common.Address
	Raw     types.Log
}

// BoughtEvent is a decoded Bought log
type BoughtEvent struct {
	ItemID  *big.Int
	NFT     common.Address
	TokenID *big.Int
	Price   *big.Int
	Seller  common.Address
	Buyer   common.Address
	Raw     types.Log
}

// Binding is a typed handle on a deployed Marketplace contract
type Binding struct {
	*chain.Handle
}

// NewBinding binds a Marketplace contract deployed at address
func NewBinding(address common.Address, backend chain.Backend) *Binding {
	return &Binding{Handle: chain.NewHandle(address, abis.Marketplace, backend)}
}

// FeeAccount returns the account receiving the marketplace fee
func (b *Binding) FeeAccount(ctx context.Context) (common.Address, error) {
	values, err := b.Call(ctx, common.Address{}, "feeAccount")
	if err != nil {
		return common.Address{}, err
	}
	return values[0].(common.Address), nil
}

// FeePercent returns the fee percent applied on top of the item price
func (b *Binding) FeePercent(ctx context.Context) (*big.Int, error) {
	return b.callBigInt(ctx, "feePercent")
}

// ItemCount returns the number of listed items, which is also the last item id
func (b *Binding) ItemCount(ctx context.Context) (*big.Int, error) {
	return b.callBigInt(ctx, "itemCount")
}

// GetTotalPrice returns the item price plus the marketplace fee
func (b *Binding) GetTotalPrice(ctx context.Context, itemID *big.Int) (*big.Int, error) {
	return b.callBigInt(ctx, "getTotalPrice", itemID)
}

// Items returns a listed item. Unknown ids return an item with zero values.
func (b *Binding) Items(ctx context.Context, itemID *big.Int) (*domain.MarketItem, error) {
	values, err := b.Call(ctx, common.Address{}, "items", itemID)
	if err != nil {
		return nil, err
	}
	if len(values) != 6 {
		return nil, fmt.Errorf("unexpected items output length: %d", len(values))
	}

	return &domain.MarketItem{
		ItemID:  values[0].(*big.Int).Uint64(),
		NFT:     values[1].(common.Address),
		TokenID: values[2].(*big.Int).Uint64(),
		Price:   values[3].(*big.Int),
		Seller:  values[4].(common.Address),
		Sold:    values[5].(bool),
	}, nil
}

// CreateItem lists a token; the marketplace must be approved to move it.
// The new item id is read from the Offered log.
func (b *Binding) CreateItem(ctx context.Context, opts chain.TransactOpts, nft common.Address, tokenID *big.Int, price *big.Int) (*big.Int, *chain.Receipt, error) {
	receipt, err := b.Transact(ctx, opts, "createItem", nft, tokenID, price)
	if err != nil {
		return nil, nil, err
	}

	for _, log := range receipt.Logs {
		if log.Address != b.Address() {
			continue
		}
		offered, err := b.ParseOffered(log)
		if err == nil {
			return offered.ItemID, receipt, nil
		}
	}
	return nil, receipt, fmt.Errorf("offered event not found in transaction %s", receipt.TxHash.Hex())
}

// PurchaseItem buys an item; opts.Value must cover the total price
func (b *Binding) PurchaseItem(ctx context.Context, opts chain.TransactOpts, itemID *big.Int) (*chain.Receipt, error) {
	return b.Transact(ctx, opts, "purchaseItem", itemID)
}

// FilterOffered returns Offered logs narrowed on the indexed token contract and seller
func (b *Binding) FilterOffered(ctx context.Context, fromBlock *big.Int, nft []common.Address, seller []common.Address) ([]OfferedEvent, error) {
	logs, err := b.FilterLogs(ctx, string(domain.EventOffered), fromBlock, addressQuery(nft), addressQuery(seller))
	if err != nil {
		return nil, err
	}

	events := make([]OfferedEvent, 0, len(logs))
	for i := range logs {
		event, err := b.ParseOffered(&logs[i])
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

// FilterBought returns Bought logs narrowed on the indexed token contract, seller and buyer
func (b *Binding) FilterBought(ctx context.Context, fromBlock *big.Int, nft []common.Address, seller []common.Address, buyer []common.Address) ([]BoughtEvent, error) {
	logs, err := b.FilterLogs(ctx, string(domain.EventBought), fromBlock, addressQuery(nft), addressQuery(seller), addressQuery(buyer))
	if err != nil {
		return nil, err
	}

	events := make([]BoughtEvent, 0, len(logs))
	for i := range logs {
		event, err := b.ParseBought(&logs[i])
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

// ParseOffered decodes an Offered log
func (b *Binding) ParseOffered(log *types.Log) (*OfferedEvent, error) {
	args, err := b.parse(log, domain.EventOffered)
	if err != nil {
		return nil, err
	}
	return &OfferedEvent{
		ItemID:  args["itemId"].(*big.Int),
		NFT:     args["nft"].(common.Address),
		TokenID: args["tokenId"].(*big.Int),
		Price:   args["price"].(*big.Int),
		Seller:  args["seller"].(common.Address),
		Raw:     *log,
	}, nil
}

// ParseBought decodes a Bought log
func (b *Binding) ParseBought(log *types.Log) (*BoughtEvent, error) {
	args, err := b.parse(log, domain.EventBought)
	if err != nil {
		return nil, err
	}
	return &BoughtEvent{
		ItemID:  args["itemId"].(*big.Int),
		NFT:     args["nft"].(common.Address),
		TokenID: args["tokenId"].(*big.Int),
		Price:   args["price"].(*big.Int),
		Seller:  args["seller"].(common.Address),
		Buyer:   args["buyer"].(common.Address),
		Raw:     *log,
	}, nil
}

func (b *Binding) parse(log *types.Log, expected domain.EventName) (map[string]interface{}, error) {
	name, args, err := b.ParseLog(log)
	if err != nil {
		return nil, err
	}
	if name != string(expected) {
		return nil, fmt.Errorf("unexpected event %s, want %s", name, expected)
	}
	return args, nil
}

func (b *Binding) callBigInt(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	values, err := b.Call(ctx, common.Address{}, method, args...)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

func addressQuery(addresses []common.Address) []interface{} {
	if len(addresses) == 0 {
		return nil
	}
	query := make([]interface{}, len(addresses))
	for i, address := range addresses {
		query[i] = address
	}
	return query
}
