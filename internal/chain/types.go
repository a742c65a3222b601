package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// Message is a transaction or read-only call sent to the ledger
type Message struct {
	// From is the sender
	From common.Address
	// To is the target account or contract
	To *common.Address
	// Value is the native amount sent in wei, nil means zero
	Value *big.Int
	// Data is the ABI encoded call data
	Data []byte
}

// BlockContext describes the block a transaction executes in
type BlockContext struct {
	Number    uint64
	Timestamp time.Time
}

// Receipt is the result of an executed transaction
type Receipt struct {
	TxHash          common.Hash
	BlockNumber     uint64
	BlockHash       common.Hash
	From            common.Address
	To              *common.Address
	ContractAddress *common.Address
	Method          string
	Value           *big.Int
	GasUsed         uint64
	GasPrice        *big.Int
	Logs            []*types.Log
	// Return is the ABI encoded output of the invoked method
	Return    []byte
	Timestamp time.Time
}

// Fee returns the amount charged for gas
func (r *Receipt) Fee() *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), r.GasPrice)
}

// Code is the executable logic behind a contract kind
type Code interface {
	// Kind identifies the code
	Kind() domain.ContractKind
	// ABI describes the constructor, methods and events of the code
	ABI() *abi.ABI
	// Init runs the constructor and returns the immutable contract configuration
	Init(env *Env, args []interface{}) (interface{}, error)
	// Call executes a method and returns its outputs
	Call(env *Env, method *abi.Method, args []interface{}) ([]interface{}, error)
	// Gas returns the execution cost of a method on top of the intrinsic transaction cost.
	// The constructor is requested with an empty method name.
	Gas(method string) uint64
}

// Backend is the ledger surface used by contract handles
//
//go:generate mockgen -source=types.go -destination=../mocks/chain_backend.go -package=mocks -mock_names=Backend=MockChainBackend
type Backend interface {
	// Transact executes a state changing message
	Transact(ctx context.Context, msg Message) (*Receipt, error)
	// Call executes a message against the current state without persisting it
	Call(ctx context.Context, msg Message) ([]byte, error)
	// FilterLogs returns the logs matching a query
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
}
