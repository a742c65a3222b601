package nft

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

// TransferEvent is a decoded Transfer log
type TransferEvent struct {
	From    common.Address
	To      common.Address
	TokenID *big.Int
	Raw     types.Log
}

// Binding is a typed handle on a deployed BlocksNFT contract
type Binding struct {
	*chain.Handle
}

// NewBinding binds a BlocksNFT contract deployed at address
func NewBinding(address common.Address, backend chain.Backend) *Binding {
	return &Binding{Handle: chain.NewHandle(address, abis.BlocksNFT, backend)}
}

func (b *Binding) Name(ctx context.Context) (string, error) {
	return b.callString(ctx, "name")
}

func (b *Binding) Symbol(ctx context.Context) (string, error) {
	return b.callString(ctx, "symbol")
}

// TokenCount returns the number of minted tokens, which is also the last token id
func (b *Binding) TokenCount(ctx context.Context) (*big.Int, error) {
	return b.callBigInt(ctx, "tokenCount")
}

func (b *Binding) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return b.callBigInt(ctx, "balanceOf", owner)
}

func (b *Binding) OwnerOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	return b.callAddress(ctx, "ownerOf", tokenID)
}

func (b *Binding) TokenURI(ctx context.Context, tokenID *big.Int) (string, error) {
	return b.callString(ctx, "tokenURI", tokenID)
}

func (b *Binding) GetApproved(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	return b.callAddress(ctx, "getApproved", tokenID)
}

func (b *Binding) IsApprovedForAll(ctx context.Context, owner, operator common.Address) (bool, error) {
	values, err := b.Call(ctx, owner, "isApprovedForAll", owner, operator)
	if err != nil {
		return false, err
	}
	return values[0].(bool), nil
}

// Mint mints a token with the given metadata URI and returns its id
func (b *Binding) Mint(ctx context.Context, opts chain.TransactOpts, uri string) (*big.Int, *chain.Receipt, error) {
	receipt, err := b.Transact(ctx, opts, "mint", uri)
	if err != nil {
		return nil, nil, err
	}
	values, err := b.UnpackReturn("mint", receipt)
	if err != nil {
		return nil, nil, err
	}
	return values[0].(*big.Int), receipt, nil
}

func (b *Binding) Approve(ctx context.Context, opts chain.TransactOpts, to common.Address, tokenID *big.Int) (*chain.Receipt, error) {
	return b.Transact(ctx, opts, "approve", to, tokenID)
}

func (b *Binding) SetApprovalForAll(ctx context.Context, opts chain.TransactOpts, operator common.Address, approved bool) (*chain.Receipt, error) {
	return b.Transact(ctx, opts, "setApprovalForAll", operator, approved)
}

func (b *Binding) TransferFrom(ctx context.Context, opts chain.TransactOpts, from, to common.Address, tokenID *big.Int) (*chain.Receipt, error) {
	return b.Transact(ctx, opts, "transferFrom", from, to, tokenID)
}

// FilterTransfer returns Transfer logs, optionally narrowed on the sender and recipient
func (b *Binding) FilterTransfer(ctx context.Context, fromBlock *big.Int, from []common.Address, to []common.Address) ([]TransferEvent, error) {
	logs, err := b.FilterLogs(ctx, string(domain.EventTransfer), fromBlock, addressQuery(from), addressQuery(to))
	if err != nil {
		return nil, err
	}

	events := make([]TransferEvent, 0, len(logs))
	for i := range logs {
		event, err := b.ParseTransfer(&logs[i])
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, nil
}

// ParseTransfer decodes a Transfer log
func (b *Binding) ParseTransfer(log *types.Log) (*TransferEvent, error) {
	name, args, err := b.ParseLog(log)
	if err != nil {
		return nil, err
	}
	if name != string(domain.EventTransfer) {
		return nil, fmt.Errorf("unexpected event %s", name)
	}
	return &TransferEvent{
		From:    args["from"].(common.Address),
		To:      args["to"].(common.Address),
		TokenID: args["tokenId"].(*big.Int),
		Raw:     *log,
	}, nil
}

func (b *Binding) callString(ctx context.Context, method string, args ...interface{}) (string, error) {
	values, err := b.Call(ctx, common.Address{}, method, args...)
	if err != nil {
		return "", err
	}
	return values[0].(string), nil
}

func (b *Binding) callBigInt(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	values, err := b.Call(ctx, common.Address{}, method, args...)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

func (b *Binding) callAddress(ctx context.Context, method string, args ...interface{}) (common.Address, error) {
	values, err := b.Call(ctx, common.Address{}, method, args...)
	if err != nil {
		return common.Address{}, err
	}
	return values[0].(common.Address), nil
}

// addressQuery turns an address list into a topic query entry, nil matches any address
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
