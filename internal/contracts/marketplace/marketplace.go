// Package marketplace implements the Marketplace contract: an escrow that lists tokens
// for a fixed price and sells them for the price plus a fee.
package marketplace

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

const itemCountKey = "itemCount"

var gasTable = map[string]uint64{
	"":             1_400_000,
	"createItem":   190_000,
	"purchaseItem": 125_000,
}

// Config is the immutable configuration stored at deployment.
// The fee account is the deployer.
type Config struct {
	FeeAccount common.Address `json:"fee_account"`
	FeePercent *big.Int       `json:"fee_percent"`
}

// Code is the Marketplace contract logic
type Code struct{}

// New returns the Marketplace code
func New() *Code {
	return &Code{}
}

func (c *Code) Kind() domain.ContractKind {
	return domain.ContractKindMarketplace
}

func (c *Code) ABI() *abi.ABI {
	return abis.Marketplace
}

func (c *Code) Gas(method string) uint64 {
	return gasTable[method]
}

// Init records the deployer as fee account together with the fee percent
func (c *Code) Init(env *chain.Env, args []interface{}) (interface{}, error) {
	return Config{
		FeeAccount: env.Caller(),
		FeePercent: args[0].(*big.Int),
	}, nil
}

// Call dispatches a method
func (c *Code) Call(env *chain.Env, method *abi.Method, args []interface{}) ([]interface{}, error) {
	var cfg Config
	if err := env.Config(&cfg); err != nil {
		return nil, err
	}

	switch method.Name {
	case "feeAccount":
		return []interface{}{cfg.FeeAccount}, nil
	case "feePercent":
		return []interface{}{cfg.FeePercent}, nil
	case "itemCount":
		count, err := env.Counter(itemCountKey)
		if err != nil {
			return nil, err
		}
		return []interface{}{new(big.Int).SetUint64(count)}, nil
	case "items":
		return c.items(env, args[0].(*big.Int))
	case "getTotalPrice":
		item, err := c.item(env, args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []interface{}{totalPrice(item, cfg)}, nil
	case "createItem":
		return nil, c.createItem(env, args[0].(common.Address), args[1].(*big.Int), args[2].(*big.Int))
	case "purchaseItem":
		return nil, c.purchaseItem(env, cfg, args[0].(*big.Int))
	}

	return nil, chain.Revert(fmt.Errorf("%w: %s", domain.ErrUnknownMethod, method.Name))
}

// createItem moves the token into escrow and lists it
func (c *Code) createItem(env *chain.Env, nft common.Address, tokenID *big.Int, price *big.Int) error {
	if price.Sign() <= 0 {
		return chain.Revert(domain.ErrPriceNotPositive)
	}
	if !tokenID.IsUint64() {
		return chain.Revert(domain.ErrInvalidTokenID)
	}

	itemID, err := env.IncrementCounter(itemCountKey)
	if err != nil {
		return err
	}

	seller := env.Caller()
	if _, err := env.Call(nft, nil, "transferFrom", seller, env.Self(), tokenID); err != nil {
		return err
	}

	now := env.Block().Timestamp
	err = env.Store().SaveMarketItem(env.Context(), &schema.MarketItem{
		MarketplaceAddress: env.Self().Hex(),
		ItemID:             itemID,
		NFTContract:        nft.Hex(),
		TokenNumber:        tokenID.Uint64(),
		Price:              price.String(),
		Seller:             seller.Hex(),
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return fmt.Errorf("failed to save market item: %w", err)
	}

	return env.Emit(string(domain.EventOffered), new(big.Int).SetUint64(itemID), nft, tokenID, price, seller)
}

// purchaseItem pays the seller and the fee account and hands the token to the buyer.
// Anything sent above the total price stays with the marketplace.
func (c *Code) purchaseItem(env *chain.Env, cfg Config, itemID *big.Int) error {
	item, err := c.item(env, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return chain.Revert(domain.ErrItemNotFound)
	}

	total := totalPrice(item, cfg)
	if env.Value().Cmp(total) < 0 {
		return chain.Revert(domain.ErrInsufficientPayment)
	}
	if item.Sold {
		return chain.Revert(domain.ErrItemSold)
	}

	price, err := domain.ParseWei(item.Price)
	if err != nil {
		return fmt.Errorf("failed to parse item price: %w", err)
	}
	seller := common.HexToAddress(item.Seller)
	if err := env.Transfer(seller, price); err != nil {
		return err
	}
	if err := env.Transfer(cfg.FeeAccount, new(big.Int).Sub(total, price)); err != nil {
		return err
	}

	buyer := env.Caller()
	buyerHex := buyer.Hex()
	item.Sold = true
	item.Buyer = &buyerHex
	item.UpdatedAt = env.Block().Timestamp
	if err := env.Store().SaveMarketItem(env.Context(), item); err != nil {
		return fmt.Errorf("failed to save market item: %w", err)
	}

	nft := common.HexToAddress(item.NFTContract)
	tokenID := new(big.Int).SetUint64(item.TokenNumber)
	if _, err := env.Call(nft, nil, "transferFrom", env.Self(), buyer, tokenID); err != nil {
		return err
	}

	return env.Emit(string(domain.EventBought), itemID, nft, tokenID, price, seller, buyer)
}

// items returns the stored tuple, all zero values for unknown ids
func (c *Code) items(env *chain.Env, itemID *big.Int) ([]interface{}, error) {
	item, err := c.item(env, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return []interface{}{new(big.Int), common.Address{}, new(big.Int), new(big.Int), common.Address{}, false}, nil
	}

	price, err := domain.ParseWei(item.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse item price: %w", err)
	}
	return []interface{}{
		new(big.Int).SetUint64(item.ItemID),
		common.HexToAddress(item.NFTContract),
		new(big.Int).SetUint64(item.TokenNumber),
		price,
		common.HexToAddress(item.Seller),
		item.Sold,
	}, nil
}

// item loads a listed item, nil for ids outside 1..itemCount
func (c *Code) item(env *chain.Env, itemID *big.Int) (*schema.MarketItem, error) {
	if !itemID.IsUint64() || itemID.Sign() == 0 {
		return nil, nil
	}
	item, err := env.Store().GetMarketItem(env.Context(), env.Self().Hex(), itemID.Uint64())
	if err != nil {
		return nil, fmt.Errorf("failed to get market item: %w", err)
	}
	return item, nil
}

// totalPrice is zero for unknown items
func totalPrice(item *schema.MarketItem, cfg Config) *big.Int {
	if item == nil {
		return new(big.Int)
	}
	price, ok := new(big.Int).SetString(item.Price, 10)
	if !ok {
		return new(big.Int)
	}
	return domain.TotalPrice(price, cfg.FeePercent)
}
