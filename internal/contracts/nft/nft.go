// Package nft implements the BlocksNFT token contract, an ERC-721 subset with a public mint.
package nft

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

// tokenCountKey is the counter holding the last minted token id
const tokenCountKey = "tokenCount"

// gasTable is the execution cost charged per method, views cost nothing
var gasTable = map[string]uint64{
	"":                  1_250_000,
	"mint":              110_000,
	"approve":           48_000,
	"setApprovalForAll": 46_000,
	"transferFrom":      62_000,
}

// Config is the immutable configuration stored at deployment
type Config struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Code is the BlocksNFT contract logic
type Code struct{}

// New returns the BlocksNFT code
func New() *Code {
	return &Code{}
}

func (c *Code) Kind() domain.ContractKind {
	return domain.ContractKindNFT
}

func (c *Code) ABI() *abi.ABI {
	return abis.BlocksNFT
}

func (c *Code) Gas(method string) uint64 {
	return gasTable[method]
}

// Init sets the collection name and symbol
func (c *Code) Init(_ *chain.Env, _ []interface{}) (interface{}, error) {
	return Config{Name: domain.NFT_NAME, Symbol: domain.NFT_SYMBOL}, nil
}

// Call dispatches a method
func (c *Code) Call(env *chain.Env, method *abi.Method, args []interface{}) ([]interface{}, error) {
	switch method.Name {
	case "name", "symbol":
		var cfg Config
		if err := env.Config(&cfg); err != nil {
			return nil, err
		}
		if method.Name == "name" {
			return []interface{}{cfg.Name}, nil
		}
		return []interface{}{cfg.Symbol}, nil
	case "tokenCount":
		count, err := env.Counter(tokenCountKey)
		if err != nil {
			return nil, err
		}
		return []interface{}{new(big.Int).SetUint64(count)}, nil
	case "mint":
		id, err := c.mint(env, args[0].(string))
		if err != nil {
			return nil, err
		}
		return []interface{}{id}, nil
	case "balanceOf":
		return c.balanceOf(env, args[0].(common.Address))
	case "ownerOf":
		token, err := c.token(env, args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []interface{}{common.HexToAddress(token.Owner)}, nil
	case "tokenURI":
		token, err := c.token(env, args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []interface{}{token.URI}, nil
	case "getApproved":
		token, err := c.token(env, args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return []interface{}{approvedOf(token)}, nil
	case "isApprovedForAll":
		approved, err := c.isApprovedForAll(env, args[0].(common.Address), args[1].(common.Address))
		if err != nil {
			return nil, err
		}
		return []interface{}{approved}, nil
	case "approve":
		return nil, c.approve(env, args[0].(common.Address), args[1].(*big.Int))
	case "setApprovalForAll":
		return nil, c.setApprovalForAll(env, args[0].(common.Address), args[1].(bool))
	case "transferFrom":
		return nil, c.transferFrom(env, args[0].(common.Address), args[1].(common.Address), args[2].(*big.Int))
	}

	return nil, chain.Revert(fmt.Errorf("%w: %s", domain.ErrUnknownMethod, method.Name))
}

// mint assigns the next token id to the caller
func (c *Code) mint(env *chain.Env, uri string) (*big.Int, error) {
	number, err := env.IncrementCounter(tokenCountKey)
	if err != nil {
		return nil, err
	}

	minter := env.Caller()
	now := env.Block().Timestamp
	err = env.Store().SaveToken(env.Context(), &schema.Token{
		ContractAddress: env.Self().Hex(),
		TokenNumber:     number,
		Owner:           minter.Hex(),
		URI:             uri,
		Minter:          minter.Hex(),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	id := new(big.Int).SetUint64(number)
	if err := env.Emit(string(domain.EventTransfer), common.Address{}, minter, id); err != nil {
		return nil, err
	}
	return id, nil
}

func (c *Code) balanceOf(env *chain.Env, owner common.Address) ([]interface{}, error) {
	if domain.IsZeroAddress(owner) {
		return nil, chain.Revert(domain.ErrZeroAddressOwner)
	}
	count, err := env.Store().CountTokensByOwner(env.Context(), env.Self().Hex(), owner.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to count tokens: %w", err)
	}
	return []interface{}{new(big.Int).SetUint64(count)}, nil
}

// token loads a minted token, reverting for unknown ids
func (c *Code) token(env *chain.Env, id *big.Int) (*schema.Token, error) {
	if !id.IsUint64() || id.Sign() == 0 {
		return nil, chain.Revert(domain.ErrInvalidTokenID)
	}
	token, err := env.Store().GetToken(env.Context(), env.Self().Hex(), id.Uint64())
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if token == nil {
		return nil, chain.Revert(domain.ErrInvalidTokenID)
	}
	return token, nil
}

func (c *Code) isApprovedForAll(env *chain.Env, owner, operator common.Address) (bool, error) {
	approved, err := env.Store().GetOperatorApproval(env.Context(), env.Self().Hex(), owner.Hex(), operator.Hex())
	if err != nil {
		return false, fmt.Errorf("failed to get operator approval: %w", err)
	}
	return approved, nil
}

func (c *Code) approve(env *chain.Env, to common.Address, id *big.Int) error {
	token, err := c.token(env, id)
	if err != nil {
		return err
	}

	owner := common.HexToAddress(token.Owner)
	if to == owner {
		return chain.Revert(domain.ErrApprovalToCurrentOwner)
	}

	caller := env.Caller()
	if caller != owner {
		operator, err := c.isApprovedForAll(env, owner, caller)
		if err != nil {
			return err
		}
		if !operator {
			return chain.Revert(domain.ErrApproveNotOwnerOrOperator)
		}
	}

	if domain.IsZeroAddress(to) {
		token.Approved = nil
	} else {
		approved := to.Hex()
		token.Approved = &approved
	}
	token.UpdatedAt = env.Block().Timestamp
	if err := env.Store().SaveToken(env.Context(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return env.Emit(string(domain.EventApproval), owner, to, id)
}

func (c *Code) setApprovalForAll(env *chain.Env, operator common.Address, approved bool) error {
	owner := env.Caller()
	if owner == operator {
		return chain.Revert(domain.ErrApproveToCaller)
	}

	err := env.Store().SetOperatorApproval(env.Context(), &schema.OperatorApproval{
		ContractAddress: env.Self().Hex(),
		Owner:           owner.Hex(),
		Operator:        operator.Hex(),
		Approved:        approved,
		UpdatedAt:       env.Block().Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save operator approval: %w", err)
	}

	return env.Emit(string(domain.EventApprovalForAll), owner, operator, approved)
}

func (c *Code) transferFrom(env *chain.Env, from, to common.Address, id *big.Int) error {
	token, err := c.token(env, id)
	if err != nil {
		return err
	}

	allowed, err := c.isApprovedOrOwner(env, env.Caller(), token)
	if err != nil {
		return err
	}
	if !allowed {
		return chain.Revert(domain.ErrNotTokenOwnerOrApproved)
	}
	if common.HexToAddress(token.Owner) != from {
		return chain.Revert(domain.ErrTransferFromIncorrectOwner)
	}
	if domain.IsZeroAddress(to) {
		return chain.Revert(domain.ErrTransferToZeroAddress)
	}

	token.Owner = to.Hex()
	token.Approved = nil
	token.UpdatedAt = env.Block().Timestamp
	if err := env.Store().SaveToken(env.Context(), token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return env.Emit(string(domain.EventTransfer), from, to, id)
}

func (c *Code) isApprovedOrOwner(env *chain.Env, spender common.Address, token *schema.Token) (bool, error) {
	owner := common.HexToAddress(token.Owner)
	if spender == owner || spender == approvedOf(token) {
		return true, nil
	}
	return c.isApprovedForAll(env, owner, spender)
}

func approvedOf(token *schema.Token) common.Address {
	if token.Approved == nil {
		return common.Address{}
	}
	return common.HexToAddress(*token.Approved)
}
