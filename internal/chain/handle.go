package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
)

// TransactOpts carries the sender of a transaction and the value it attaches
type TransactOpts struct {
	From  common.Address
	Value *big.Int
}

// Handle is a contract bound to an address and ABI, the ledger counterpart of a
// frontend contract instance
type Handle struct {
	address common.Address
	abi     *abi.ABI
	backend Backend
}

// NewHandle binds a contract
func NewHandle(address common.Address, contractABI *abi.ABI, backend Backend) *Handle {
	return &Handle{address: address, abi: contractABI, backend: backend}
}

// Address returns the bound contract address
func (h *Handle) Address() common.Address {
	return h.address
}

// ABI returns the bound contract ABI
func (h *Handle) ABI() *abi.ABI {
	return h.abi
}

// Call invokes a read-only method and unpacks its outputs
func (h *Handle) Call(ctx context.Context, from common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := h.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := h.backend.Call(ctx, Message{From: from, To: &h.address, Data: data})
	if err != nil {
		return nil, err
	}

	values, err := h.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return values, nil
}

// Transact invokes a state changing method
func (h *Handle) Transact(ctx context.Context, opts TransactOpts, method string, args ...interface{}) (*Receipt, error) {
	data, err := h.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	return h.backend.Transact(ctx, Message{
		From:  opts.From,
		To:    &h.address,
		Value: opts.Value,
		Data:  data,
	})
}

// UnpackReturn decodes the return data of a transaction receipt
func (h *Handle) UnpackReturn(method string, receipt *Receipt) ([]interface{}, error) {
	values, err := h.abi.Unpack(method, receipt.Return)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return values, nil
}

// FilterLogs returns the logs of an event, filtered on its indexed arguments.
// Each query entry matches one indexed argument in order; nil matches anything.
func (h *Handle) FilterLogs(ctx context.Context, event string, fromBlock *big.Int, query ...[]interface{}) ([]types.Log, error) {
	ev, ok := h.abi.Events[event]
	if !ok {
		return nil, fmt.Errorf("unknown event: %s", event)
	}

	topics, err := abi.MakeTopics(query...)
	if err != nil {
		return nil, fmt.Errorf("failed to build topics: %w", err)
	}

	return h.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: fromBlock,
		Addresses: []common.Address{h.address},
		Topics:    append([][]common.Hash{{ev.ID}}, topics...),
	})
}

// ParseLog decodes a log of the bound contract
func (h *Handle) ParseLog(log *types.Log) (string, map[string]interface{}, error) {
	if log.Address != h.address {
		return "", nil, fmt.Errorf("log emitted by %s, not %s", log.Address.Hex(), h.address.Hex())
	}
	event, args, err := abis.DecodeLog(h.abi, log)
	if err != nil {
		return "", nil, err
	}
	return event.Name, args, nil
}
