package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

const maxCallDepth = 16

var errCallDepth = errors.New("max call depth exceeded")

// emittedLog is a log produced during execution together with its decoded form
type emittedLog struct {
	log   *types.Log
	event string
	args  map[string]string
}

// frame is the execution state shared by a transaction and all of its nested calls
type frame struct {
	ledger *Ledger
	store  store.Store
	block  BlockContext
	txHash common.Hash
	logs   []emittedLog
	depth  int
}

// invoke moves value to the contract and runs one of its methods
func (f *frame) invoke(ctx context.Context, contract *schema.Contract, code Code, method *abi.Method, args []interface{}, caller common.Address, value *big.Int) ([]interface{}, error) {
	if f.depth >= maxCallDepth {
		return nil, Revert(errCallDepth)
	}

	self := common.HexToAddress(contract.Address)
	if value != nil && value.Sign() > 0 {
		if !method.IsPayable() {
			return nil, Revert(domain.ErrNonPayable)
		}
		if err := transfer(ctx, f.store, caller, self, value); err != nil {
			return nil, err
		}
	}

	f.depth++
	defer func() { f.depth-- }()

	env := &Env{
		ctx:    ctx,
		frame:  f,
		code:   code,
		self:   self,
		caller: caller,
		value:  value,
		config: contract.Config,
	}
	return code.Call(env, method, args)
}

// Env is the view a contract has of the ledger while one of its methods executes
type Env struct {
	ctx    context.Context
	frame  *frame
	code   Code
	self   common.Address
	caller common.Address
	value  *big.Int
	config []byte
}

// Context returns the context of the transaction
func (e *Env) Context() context.Context {
	return e.ctx
}

// Store returns the transactional store of the running transaction
func (e *Env) Store() store.Store {
	return e.frame.store
}

// Self returns the address of the executing contract
func (e *Env) Self() common.Address {
	return e.self
}

// Caller returns the immediate caller, the contract itself for nested calls it makes
func (e *Env) Caller() common.Address {
	return e.caller
}

// Value returns the native value sent with the call
func (e *Env) Value() *big.Int {
	if e.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.value)
}

// Block returns the block the transaction executes in
func (e *Env) Block() BlockContext {
	return e.frame.block
}

// TxHash returns the hash of the running transaction
func (e *Env) TxHash() common.Hash {
	return e.frame.txHash
}

// Config decodes the immutable configuration stored at deployment
func (e *Env) Config(v interface{}) error {
	if len(e.config) == 0 {
		return fmt.Errorf("contract %s has no configuration", e.self.Hex())
	}
	if err := e.frame.ledger.json.Unmarshal(e.config, v); err != nil {
		return fmt.Errorf("failed to decode contract configuration: %w", err)
	}
	return nil
}

// Emit records an event of the executing contract; args follow the event declaration order
func (e *Env) Emit(event string, args ...interface{}) error {
	contractABI := e.code.ABI()
	topics, data, err := abis.EncodeEvent(contractABI, event, args...)
	if err != nil {
		return err
	}

	formatted := make(map[string]string, len(args))
	for i, input := range contractABI.Events[event].Inputs {
		formatted[input.Name] = abis.FormatValue(args[i])
	}

	e.frame.logs = append(e.frame.logs, emittedLog{
		log: &types.Log{
			Address: e.self,
			Topics:  topics,
			Data:    data,
		},
		event: event,
		args:  formatted,
	})
	return nil
}

// Call invokes a method of another contract with this contract as the caller
func (e *Env) Call(to common.Address, value *big.Int, method string, args ...interface{}) ([]interface{}, error) {
	contract, code, err := e.frame.ledger.codeAt(e.ctx, e.frame.store, to)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, Revert(domain.ErrContractNotFound)
	}

	m, ok := code.ABI().Methods[method]
	if !ok {
		return nil, Revert(domain.ErrUnknownMethod)
	}

	return e.frame.invoke(e.ctx, contract, code, &m, args, e.self, value)
}

// Transfer sends native value from the executing contract
func (e *Env) Transfer(to common.Address, amount *big.Int) error {
	return transfer(e.ctx, e.frame.store, e.self, to, amount)
}

// Balance returns the native balance of an address
func (e *Env) Balance(address common.Address) (*big.Int, error) {
	_, balance, err := loadAccount(e.ctx, e.frame.store, address)
	return balance, err
}

// Counter returns a named counter of the executing contract
func (e *Env) Counter(name string) (uint64, error) {
	return loadCounter(e.ctx, e.frame.store, e.self, name)
}

// IncrementCounter increments a named counter of the executing contract and returns the new value
func (e *Env) IncrementCounter(name string) (uint64, error) {
	counter, err := loadCounter(e.ctx, e.frame.store, e.self, name)
	if err != nil {
		return 0, err
	}
	counter++
	if err := saveCounter(e.ctx, e.frame.store, e.self, name, counter); err != nil {
		return 0, err
	}
	return counter, nil
}
