package chain_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/chain"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
	"github.com/conquerblocks/nft-marketplace/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const counterABI = `[
  {"inputs":[{"name":"start","type":"uint256"}],"stateMutability":"nonpayable","type":"constructor"},
  {"anonymous":false,"inputs":[{"indexed":true,"name":"caller","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Bumped","type":"event"},
  {"inputs":[],"name":"bump","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[],"name":"count","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"deposit","outputs":[],"stateMutability":"payable","type":"function"},
  {"inputs":[],"name":"fail","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"name":"target","type":"address"}],"name":"relay","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"pay","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const (
	counterKind   domain.ContractKind = "Counter"
	deployGas                         = 100_000
	bumpGas                           = 20_000
	errNopeReason                     = "nope"
)

var (
	parsedCounterABI = func() *abi.ABI {
		parsed, err := abi.JSON(strings.NewReader(counterABI))
		if err != nil {
			panic(err)
		}
		return &parsed
	}()

	deployer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	gasPrice = big.NewInt(params.GWei)
	oneEther = big.NewInt(params.Ether)
)

type counterConfig struct {
	Start uint64 `json:"start"`
}

// counterCode is a minimal contract exercising the ledger runtime
type counterCode struct{}

func (counterCode) Kind() domain.ContractKind { return counterKind }
func (counterCode) ABI() *abi.ABI             { return parsedCounterABI }

func (counterCode) Gas(method string) uint64 {
	switch method {
	case "":
		return deployGas
	case "bump", "relay":
		return bumpGas
	default:
		return 0
	}
}

func (counterCode) Init(env *chain.Env, args []interface{}) (interface{}, error) {
	return counterConfig{Start: args[0].(*big.Int).Uint64()}, nil
}

func (c counterCode) Call(env *chain.Env, method *abi.Method, args []interface{}) ([]interface{}, error) {
	var cfg counterConfig
	if err := env.Config(&cfg); err != nil {
		return nil, err
	}

	switch method.Name {
	case "bump":
		n, err := env.IncrementCounter("count")
		if err != nil {
			return nil, err
		}
		value := new(big.Int).SetUint64(cfg.Start + n)
		if err := env.Emit("Bumped", env.Caller(), value); err != nil {
			return nil, err
		}
		return []interface{}{value}, nil
	case "count":
		n, err := env.Counter("count")
		if err != nil {
			return nil, err
		}
		return []interface{}{new(big.Int).SetUint64(cfg.Start + n)}, nil
	case "deposit":
		return nil, nil
	case "fail":
		if _, err := env.IncrementCounter("count"); err != nil {
			return nil, err
		}
		return nil, chain.Revert(errors.New(errNopeReason))
	case "relay":
		return env.Call(args[0].(common.Address), nil, "bump")
	case "pay":
		return nil, env.Transfer(args[0].(common.Address), args[1].(*big.Int))
	}
	return nil, chain.Revert(domain.ErrUnknownMethod)
}

type testLedger struct {
	ledger *chain.Ledger
	store  store.Store
	ctx    context.Context
}

func setupTestLedger(t *testing.T) *testLedger {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()

	st := store.NewMemoryStore()
	ledger := chain.NewLedger(chain.Config{ChainID: 31337, GasPrice: gasPrice}, st, clock, adapter.NewJSON(), adapter.NewJCS(), counterCode{})

	tl := &testLedger{ledger: ledger, store: st, ctx: context.Background()}
	for _, account := range []common.Address{deployer, alice, bob} {
		require.NoError(t, ledger.Fund(tl.ctx, account, new(big.Int).Mul(big.NewInt(100), oneEther)))
	}
	return tl
}

func (tl *testLedger) balance(t *testing.T, address common.Address) *big.Int {
	balance, err := tl.ledger.BalanceAt(tl.ctx, address)
	require.NoError(t, err)
	return balance
}

func (tl *testLedger) deployCounter(t *testing.T, start int64) *chain.Handle {
	receipt, err := tl.ledger.Deploy(tl.ctx, deployer, counterKind, big.NewInt(start))
	require.NoError(t, err)
	require.NotNil(t, receipt.ContractAddress)
	return chain.NewHandle(*receipt.ContractAddress, parsedCounterABI, tl.ledger)
}

func calldataGas(data []byte) uint64 {
	var gas uint64
	for _, b := range data {
		if b == 0 {
			gas += params.TxDataZeroGas
		} else {
			gas += params.TxDataNonZeroGasEIP2028
		}
	}
	return gas
}

func fee(gas uint64) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(gas), gasPrice)
}

func TestLedger_Deploy(t *testing.T) {
	tl := setupTestLedger(t)
	before := tl.balance(t, deployer)

	receipt, err := tl.ledger.Deploy(tl.ctx, deployer, counterKind, big.NewInt(5))
	require.NoError(t, err)

	expected := crypto.CreateAddress(deployer, 0)
	require.NotNil(t, receipt.ContractAddress)
	assert.Equal(t, expected, *receipt.ContractAddress)
	assert.Nil(t, receipt.To)
	assert.Equal(t, uint64(1), receipt.BlockNumber)

	data, err := parsedCounterABI.Pack("", big.NewInt(5))
	require.NoError(t, err)
	gas := params.TxGasContractCreation + calldataGas(data) + deployGas
	assert.Equal(t, gas, receipt.GasUsed)
	assert.Equal(t, new(big.Int).Sub(before, fee(gas)), tl.balance(t, deployer))

	nonce, err := tl.ledger.NonceAt(tl.ctx, deployer)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)

	contract, err := tl.ledger.ContractAt(tl.ctx, expected)
	require.NoError(t, err)
	require.NotNil(t, contract)
	assert.Equal(t, string(counterKind), contract.Kind)
	assert.Equal(t, deployer.Hex(), contract.Deployer)
	assert.JSONEq(t, `{"start":5}`, string(contract.Config))

	second, err := tl.ledger.Deploy(tl.ctx, deployer, counterKind, big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, crypto.CreateAddress(deployer, 1), *second.ContractAddress)
	assert.Equal(t, uint64(2), second.BlockNumber)
}

func TestLedger_DeployUnknownKind(t *testing.T) {
	tl := setupTestLedger(t)

	_, err := tl.ledger.Deploy(tl.ctx, deployer, domain.ContractKind("Unknown"))
	assert.ErrorIs(t, err, domain.ErrUnknownContractKind)
}

func TestLedger_PlainTransfer(t *testing.T) {
	tl := setupTestLedger(t)
	aliceBefore := tl.balance(t, alice)
	bobBefore := tl.balance(t, bob)

	receipt, err := tl.ledger.Transact(tl.ctx, chain.Message{From: alice, To: &bob, Value: oneEther})
	require.NoError(t, err)
	assert.Equal(t, params.TxGas, receipt.GasUsed)
	assert.Equal(t, fee(params.TxGas), receipt.Fee())
	assert.Empty(t, receipt.Method)

	assert.Equal(t, new(big.Int).Sub(aliceBefore, new(big.Int).Add(oneEther, fee(params.TxGas))), tl.balance(t, alice))
	assert.Equal(t, new(big.Int).Add(bobBefore, oneEther), tl.balance(t, bob))
}

func TestLedger_InsufficientFunds(t *testing.T) {
	tl := setupTestLedger(t)
	poor := common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")

	_, err := tl.ledger.Transact(tl.ctx, chain.Message{From: poor, To: &bob, Value: big.NewInt(1)})
	require.Error(t, err)

	var revert *chain.RevertError
	require.ErrorAs(t, err, &revert)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	nonce, err := tl.ledger.NonceAt(tl.ctx, poor)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	head, err := tl.ledger.BlockNumber(tl.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), head)
}

func TestLedger_CallAndTransact(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 10)

	values, err := counter.Call(tl.ctx, alice, "count")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), values[0])

	aliceBefore := tl.balance(t, alice)
	receipt, err := counter.Transact(tl.ctx, chain.TransactOpts{From: alice}, "bump")
	require.NoError(t, err)
	assert.Equal(t, "bump", receipt.Method)

	data, err := parsedCounterABI.Pack("bump")
	require.NoError(t, err)
	gas := params.TxGas + calldataGas(data) + bumpGas
	assert.Equal(t, gas, receipt.GasUsed)
	assert.Equal(t, new(big.Int).Sub(aliceBefore, fee(gas)), tl.balance(t, alice))

	returned, err := counter.UnpackReturn("bump", receipt)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(11), returned[0])

	require.Len(t, receipt.Logs, 1)
	log := receipt.Logs[0]
	assert.Equal(t, counter.Address(), log.Address)
	assert.Equal(t, receipt.BlockNumber, log.BlockNumber)
	assert.Equal(t, receipt.BlockHash, log.BlockHash)
	assert.Equal(t, receipt.TxHash, log.TxHash)

	event, args, err := counter.ParseLog(log)
	require.NoError(t, err)
	assert.Equal(t, "Bumped", event)
	assert.Equal(t, alice, args["caller"])
	assert.Equal(t, big.NewInt(11), args["value"])

	values, err = counter.Call(tl.ctx, alice, "count")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(11), values[0])
}

func TestLedger_CallDoesNotPersist(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)

	values, err := counter.Call(tl.ctx, alice, "bump")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), values[0])

	values, err = counter.Call(tl.ctx, alice, "count")
	require.NoError(t, err)
	assert.Zero(t, values[0].(*big.Int).Sign())

	logs, err := counter.FilterLogs(tl.ctx, "Bumped", nil)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestLedger_RevertRollsBack(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)
	aliceBefore := tl.balance(t, alice)
	headBefore, err := tl.ledger.BlockNumber(tl.ctx)
	require.NoError(t, err)

	_, err = counter.Transact(tl.ctx, chain.TransactOpts{From: alice}, "fail")
	require.Error(t, err)

	var revert *chain.RevertError
	require.ErrorAs(t, err, &revert)
	assert.Equal(t, errNopeReason, revert.Reason)
	assert.Equal(t, "fail", revert.Method)
	assert.Equal(t, "execution reverted: fail: nope", err.Error())

	assert.Equal(t, aliceBefore, tl.balance(t, alice))
	nonce, err := tl.ledger.NonceAt(tl.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), nonce)

	head, err := tl.ledger.BlockNumber(tl.ctx)
	require.NoError(t, err)
	assert.Equal(t, headBefore, head)

	values, err := counter.Call(tl.ctx, alice, "count")
	require.NoError(t, err)
	assert.Zero(t, values[0].(*big.Int).Sign())
}

func TestLedger_Payable(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)

	_, err := counter.Transact(tl.ctx, chain.TransactOpts{From: alice, Value: oneEther}, "bump")
	assert.ErrorIs(t, err, domain.ErrNonPayable)

	_, err = counter.Transact(tl.ctx, chain.TransactOpts{From: alice, Value: oneEther}, "deposit")
	require.NoError(t, err)
	assert.Equal(t, oneEther, tl.balance(t, counter.Address()))

	bobBefore := tl.balance(t, bob)
	half := new(big.Int).Div(oneEther, big.NewInt(2))
	_, err = counter.Transact(tl.ctx, chain.TransactOpts{From: alice}, "pay", bob, half)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Add(bobBefore, half), tl.balance(t, bob))
	assert.Equal(t, half, tl.balance(t, counter.Address()))

	_, err = counter.Transact(tl.ctx, chain.TransactOpts{From: alice}, "pay", bob, oneEther)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, half, tl.balance(t, counter.Address()))
}

func TestLedger_UnknownTargets(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)

	_, err := tl.ledger.Transact(tl.ctx, chain.Message{From: alice, To: &bob, Data: []byte{0x01, 0x02, 0x03, 0x04}})
	assert.ErrorIs(t, err, domain.ErrContractNotFound)

	target := counter.Address()
	_, err = tl.ledger.Transact(tl.ctx, chain.Message{From: alice, To: &target, Data: []byte{0xde, 0xad, 0xbe, 0xef}})
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)

	_, err = tl.ledger.Call(tl.ctx, chain.Message{From: alice, To: &bob})
	assert.ErrorIs(t, err, domain.ErrContractNotFound)

	_, err = tl.ledger.Transact(tl.ctx, chain.Message{From: alice})
	assert.Error(t, err)
}

func TestLedger_NestedCall(t *testing.T) {
	tl := setupTestLedger(t)
	first := tl.deployCounter(t, 0)
	second := tl.deployCounter(t, 100)

	receipt, err := first.Transact(tl.ctx, chain.TransactOpts{From: alice}, "relay", second.Address())
	require.NoError(t, err)

	returned, err := first.UnpackReturn("relay", receipt)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(101), returned[0])

	require.Len(t, receipt.Logs, 1)
	_, args, err := second.ParseLog(receipt.Logs[0])
	require.NoError(t, err)
	assert.Equal(t, first.Address(), args["caller"])
}

func TestLedger_FilterLogs(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)

	for _, from := range []common.Address{alice, bob, alice} {
		_, err := counter.Transact(tl.ctx, chain.TransactOpts{From: from}, "bump")
		require.NoError(t, err)
	}

	all, err := counter.FilterLogs(tl.ctx, "Bumped", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].BlockNumber < all[1].BlockNumber)

	byAlice, err := counter.FilterLogs(tl.ctx, "Bumped", nil, []interface{}{alice})
	require.NoError(t, err)
	assert.Len(t, byAlice, 2)

	fromBlock := new(big.Int).SetUint64(all[1].BlockNumber)
	recent, err := counter.FilterLogs(tl.ctx, "Bumped", fromBlock)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = tl.ledger.FilterLogs(tl.ctx, ethereum.FilterQuery{BlockHash: &common.Hash{}})
	assert.Error(t, err)

	_, err = counter.FilterLogs(tl.ctx, "Missing", nil)
	assert.Error(t, err)
}

func TestLedger_TransactionReceipt(t *testing.T) {
	tl := setupTestLedger(t)
	counter := tl.deployCounter(t, 0)

	receipt, err := counter.Transact(tl.ctx, chain.TransactOpts{From: bob}, "bump")
	require.NoError(t, err)

	stored, err := tl.ledger.TransactionReceipt(tl.ctx, receipt.TxHash)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, receipt.BlockNumber, stored.BlockNumber)
	assert.Equal(t, receipt.BlockHash, stored.BlockHash)
	assert.Equal(t, receipt.GasUsed, stored.GasUsed)
	assert.Equal(t, "bump", stored.Method)
	assert.Equal(t, bob, stored.From)
	require.Len(t, stored.Logs, 1)
	assert.Equal(t, receipt.Logs[0].Topics, stored.Logs[0].Topics)

	missing, err := tl.ledger.TransactionReceipt(tl.ctx, common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLedger_DeterministicHashes(t *testing.T) {
	first := setupTestLedger(t)
	second := setupTestLedger(t)

	r1, err := first.ledger.Deploy(first.ctx, deployer, counterKind, big.NewInt(1))
	require.NoError(t, err)
	r2, err := second.ledger.Deploy(second.ctx, deployer, counterKind, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, r1.TxHash, r2.TxHash)
	assert.Equal(t, r1.BlockHash, r2.BlockHash)

	r3, err := first.ledger.Deploy(first.ctx, deployer, counterKind, big.NewInt(1))
	require.NoError(t, err)
	assert.NotEqual(t, r1.TxHash, r3.TxHash)
	assert.NotEqual(t, r1.BlockHash, r3.BlockHash)
}

func TestLedger_Fund(t *testing.T) {
	tl := setupTestLedger(t)

	assert.ErrorIs(t, tl.ledger.Fund(tl.ctx, alice, big.NewInt(0)), domain.ErrInvalidAmount)
	assert.ErrorIs(t, tl.ledger.Fund(tl.ctx, alice, nil), domain.ErrInvalidAmount)

	before := tl.balance(t, alice)
	require.NoError(t, tl.ledger.Fund(tl.ctx, alice, oneEther))
	assert.Equal(t, new(big.Int).Add(before, oneEther), tl.balance(t, alice))
}
