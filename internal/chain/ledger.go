package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/store"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

// errRollback discards the state changes of a read-only call
var errRollback = errors.New("rollback")

// Config holds the ledger configuration
type Config struct {
	// ChainID is mixed into every transaction hash
	ChainID uint64
	// GasPrice is the price per gas unit in wei
	GasPrice *big.Int
}

// Ledger executes transactions one at a time against the store.
// Every transaction runs inside a single store transaction; a revert rolls back
// all of its effects, including the nonce and the gas fee.
type Ledger struct {
	mu    sync.Mutex
	cfg   Config
	store store.Store
	clock adapter.Clock
	json  adapter.JSON
	jcs   adapter.JCS
	codes map[domain.ContractKind]Code
}

// NewLedger creates a ledger able to deploy the given codes
func NewLedger(cfg Config, st store.Store, clock adapter.Clock, json adapter.JSON, jcs adapter.JCS, codes ...Code) *Ledger {
	if cfg.GasPrice == nil {
		cfg.GasPrice = new(big.Int)
	}
	registry := make(map[domain.ContractKind]Code, len(codes))
	for _, code := range codes {
		registry[code.Kind()] = code
	}
	return &Ledger{
		cfg:   cfg,
		store: st,
		clock: clock,
		json:  json,
		jcs:   jcs,
		codes: registry,
	}
}

// ChainID returns the configured chain id
func (l *Ledger) ChainID() uint64 {
	return l.cfg.ChainID
}

// GasPrice returns the price per gas unit in wei
func (l *Ledger) GasPrice() *big.Int {
	return new(big.Int).Set(l.cfg.GasPrice)
}

// Code returns the code registered for a contract kind
func (l *Ledger) Code(kind domain.ContractKind) (Code, bool) {
	code, ok := l.codes[kind]
	return code, ok
}

// Deploy creates a contract of the given kind from the deployer account.
// The address is derived from the deployer address and nonce.
func (l *Ledger) Deploy(ctx context.Context, from common.Address, kind domain.ContractKind, args ...interface{}) (*Receipt, error) {
	code, ok := l.codes[kind]
	if !ok {
		return nil, Revert(domain.ErrUnknownContractKind)
	}

	data, err := code.ABI().Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}

	return l.execute(ctx, Message{From: from, Data: data}, code)
}

// Transact executes a state changing message
func (l *Ledger) Transact(ctx context.Context, msg Message) (*Receipt, error) {
	if msg.To == nil {
		return nil, fmt.Errorf("missing recipient: contracts are created with Deploy")
	}
	return l.execute(ctx, msg, nil)
}

func (l *Ledger) execute(ctx context.Context, msg Message, creation Code) (*Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	value := msg.Value
	if value == nil {
		value = new(big.Int)
	}

	var receipt *Receipt
	var methodName string
	err := l.store.WithTx(ctx, func(st store.Store) error {
		head, err := l.loadHead(ctx, st)
		if err != nil {
			return err
		}

		sender, senderBalance, err := loadAccount(ctx, st, msg.From)
		if err != nil {
			return err
		}
		nonce := sender.Nonce

		block := BlockContext{
			Number:    head.Number + 1,
			Timestamp: l.clock.Now().UTC().Truncate(time.Second),
		}

		envelope := txEnvelope{
			ChainID: l.cfg.ChainID,
			From:    msg.From.Hex(),
			Value:   value.String(),
			Data:    encodeData(msg.Data),
			Nonce:   nonce,
		}
		if msg.To != nil {
			envelope.To = msg.To.Hex()
		}
		if creation != nil {
			envelope.Kind = string(creation.Kind())
		}
		txHash, err := l.hashTransaction(envelope)
		if err != nil {
			return err
		}

		// Resolve what runs and what it costs before touching any balance
		var (
			gas      uint64
			contract *schema.Contract
			code     Code
			method   *abi.Method
			args     []interface{}
		)
		switch {
		case creation != nil:
			gas = intrinsicGas(msg.Data, true) + creation.Gas("")
			args, err = creation.ABI().Constructor.Inputs.Unpack(msg.Data)
			if err != nil {
				return Revert(fmt.Errorf("invalid constructor arguments: %w", err))
			}
		default:
			contract, code, err = l.codeAt(ctx, st, *msg.To)
			if err != nil {
				return err
			}
			gas = intrinsicGas(msg.Data, false)
			if code != nil {
				method, args, err = decodeCall(code, msg.Data)
				if err != nil {
					return err
				}
				methodName = method.Name
				gas += code.Gas(method.Name)
			} else if len(msg.Data) > 0 {
				return Revert(domain.ErrContractNotFound)
			}
		}

		fee := new(big.Int).Mul(new(big.Int).SetUint64(gas), l.cfg.GasPrice)
		if senderBalance.Cmp(new(big.Int).Add(fee, value)) < 0 {
			return Revert(domain.ErrInsufficientFunds)
		}

		// The fee is burned
		sender.Nonce++
		if err := saveBalance(ctx, st, sender, senderBalance.Sub(senderBalance, fee)); err != nil {
			return err
		}

		f := &frame{ledger: l, store: st, block: block, txHash: txHash}
		r := &Receipt{
			TxHash:      txHash,
			BlockNumber: block.Number,
			From:        msg.From,
			To:          msg.To,
			Method:      methodName,
			Value:       new(big.Int).Set(value),
			GasUsed:     gas,
			GasPrice:    new(big.Int).Set(l.cfg.GasPrice),
			Timestamp:   block.Timestamp,
		}

		switch {
		case creation != nil:
			address := crypto.CreateAddress(msg.From, nonce)
			r.ContractAddress = &address
			if err := l.create(ctx, f, creation, address, msg.From, value, args); err != nil {
				return err
			}
		case code != nil:
			outputs, err := f.invoke(ctx, contract, code, method, args, msg.From, value)
			if err != nil {
				return err
			}
			r.Return, err = method.Outputs.Pack(outputs...)
			if err != nil {
				return fmt.Errorf("failed to pack %s outputs: %w", method.Name, err)
			}
		default:
			if err := transfer(ctx, st, msg.From, *msg.To, value); err != nil {
				return err
			}
		}

		r.BlockHash = hashBlock(head.Hash, block.Number, txHash)
		if err := l.commit(ctx, st, f, r, msg, nonce); err != nil {
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		var revert *RevertError
		if errors.As(err, &revert) {
			if revert.Method == "" {
				revert.Method = methodName
			}
			logger.DebugCtx(ctx, "Transaction reverted",
				zap.String("from", msg.From.Hex()),
				zap.String("method", methodName),
				zap.String("reason", revert.Reason))
			return nil, revert
		}
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	logger.DebugCtx(ctx, "Transaction executed",
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("block_number", receipt.BlockNumber),
		zap.String("method", receipt.Method),
		zap.Uint64("gas_used", receipt.GasUsed),
		zap.Int("logs", len(receipt.Logs)))

	return receipt, nil
}

// create runs the constructor and stores the contract record
func (l *Ledger) create(ctx context.Context, f *frame, code Code, address, deployer common.Address, value *big.Int, args []interface{}) error {
	existing, err := f.store.GetContract(ctx, address.Hex())
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("contract address collision at %s", address.Hex())
	}

	if value.Sign() > 0 {
		if !code.ABI().Constructor.IsPayable() {
			return Revert(domain.ErrNonPayable)
		}
		if err := transfer(ctx, f.store, deployer, address, value); err != nil {
			return err
		}
	}

	env := &Env{ctx: ctx, frame: f, code: code, self: address, caller: deployer, value: value}
	config, err := code.Init(env, args)
	if err != nil {
		return err
	}

	raw, err := l.json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal contract configuration: %w", err)
	}

	return f.store.CreateContract(ctx, &schema.Contract{
		Address:     address.Hex(),
		Kind:        string(code.Kind()),
		Deployer:    deployer.Hex(),
		TxHash:      f.txHash.Hex(),
		BlockNumber: f.block.Number,
		Config:      datatypes.JSON(raw),
	})
}

// commit stores the transaction, its logs and the new head
func (l *Ledger) commit(ctx context.Context, st store.Store, f *frame, r *Receipt, msg Message, nonce uint64) error {
	tx := &schema.Transaction{
		Hash:        r.TxHash.Hex(),
		BlockNumber: r.BlockNumber,
		BlockHash:   r.BlockHash.Hex(),
		FromAddress: msg.From.Hex(),
		Method:      r.Method,
		Value:       r.Value.String(),
		Input:       encodeData(msg.Data),
		Nonce:       nonce,
		GasUsed:     r.GasUsed,
		GasPrice:    r.GasPrice.String(),
		Timestamp:   r.Timestamp,
	}
	if msg.To != nil {
		to := msg.To.Hex()
		tx.ToAddress = &to
	}
	if r.ContractAddress != nil {
		created := r.ContractAddress.Hex()
		tx.ContractAddress = &created
	}
	if err := st.SaveTransaction(ctx, tx); err != nil {
		return err
	}

	rows := make([]schema.EventLog, 0, len(f.logs))
	for i, emitted := range f.logs {
		emitted.log.BlockNumber = r.BlockNumber
		emitted.log.BlockHash = r.BlockHash
		emitted.log.TxHash = r.TxHash
		emitted.log.TxIndex = 0
		emitted.log.Index = uint(i)
		r.Logs = append(r.Logs, emitted.log)

		row, err := l.toEventLogRow(emitted, r.Timestamp)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := st.CreateEventLogs(ctx, rows); err != nil {
		return err
	}

	return l.saveHead(ctx, st, chainHead{Number: r.BlockNumber, Hash: r.BlockHash})
}

// Call executes a message against the current state and discards every change
func (l *Ledger) Call(ctx context.Context, msg Message) ([]byte, error) {
	if msg.To == nil {
		return nil, fmt.Errorf("missing call target")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var out []byte
	var methodName string
	err := l.store.WithTx(ctx, func(st store.Store) error {
		head, err := l.loadHead(ctx, st)
		if err != nil {
			return err
		}

		contract, code, err := l.codeAt(ctx, st, *msg.To)
		if err != nil {
			return err
		}
		if code == nil {
			return Revert(domain.ErrContractNotFound)
		}

		method, args, err := decodeCall(code, msg.Data)
		if err != nil {
			return err
		}
		methodName = method.Name

		f := &frame{
			ledger: l,
			store:  st,
			block:  BlockContext{Number: head.Number, Timestamp: l.clock.Now().UTC().Truncate(time.Second)},
		}
		outputs, err := f.invoke(ctx, contract, code, method, args, msg.From, msg.Value)
		if err != nil {
			return err
		}
		out, err = method.Outputs.Pack(outputs...)
		if err != nil {
			return fmt.Errorf("failed to pack %s outputs: %w", method.Name, err)
		}
		return errRollback
	})
	if errors.Is(err, errRollback) {
		return out, nil
	}

	var revert *RevertError
	if errors.As(err, &revert) {
		if revert.Method == "" {
			revert.Method = methodName
		}
		return nil, revert
	}
	return nil, fmt.Errorf("failed to call contract: %w", err)
}

// Fund credits an account outside of any transaction, used for genesis allocations
func (l *Ledger) Fund(ctx context.Context, address common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.store.WithTx(ctx, func(st store.Store) error {
		return addBalance(ctx, st, address, amount)
	})
	if err != nil {
		return fmt.Errorf("failed to fund account: %w", err)
	}

	logger.InfoCtx(ctx, "Funded account",
		zap.String("address", address.Hex()),
		zap.String("amount", amount.String()))
	return nil
}

// BalanceAt returns the native balance of an address
func (l *Ledger) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	_, balance, err := loadAccount(ctx, l.store, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// NonceAt returns the number of transactions executed by an address
func (l *Ledger) NonceAt(ctx context.Context, address common.Address) (uint64, error) {
	account, _, err := loadAccount(ctx, l.store, address)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return account.Nonce, nil
}

// BlockNumber returns the number of the latest block, 0 before the first transaction
func (l *Ledger) BlockNumber(ctx context.Context) (uint64, error) {
	head, err := l.loadHead(ctx, l.store)
	if err != nil {
		return 0, err
	}
	return head.Number, nil
}

// ContractAt returns the contract deployed at an address, nil if none
func (l *Ledger) ContractAt(ctx context.Context, address common.Address) (*schema.Contract, error) {
	contract, _, err := l.codeAt(ctx, l.store, address)
	return contract, err
}

func (l *Ledger) codeAt(ctx context.Context, st store.Store, address common.Address) (*schema.Contract, Code, error) {
	contract, err := st.GetContract(ctx, address.Hex())
	if err != nil {
		return nil, nil, err
	}
	if contract == nil {
		return nil, nil, nil
	}

	code, ok := l.codes[domain.ContractKind(contract.Kind)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnknownContractKind, contract.Kind)
	}
	return contract, code, nil
}

func decodeCall(code Code, data []byte) (*abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return nil, nil, Revert(domain.ErrUnknownMethod)
	}

	method, err := code.ABI().MethodById(data[:4])
	if err != nil {
		return nil, nil, Revert(domain.ErrUnknownMethod)
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, Revert(fmt.Errorf("invalid %s arguments: %w", method.Name, err))
	}
	return method, args, nil
}

func (l *Ledger) loadHead(ctx context.Context, st store.Store) (chainHead, error) {
	var head chainHead
	raw, err := st.GetKeyValue(ctx, chainHeadKey)
	if err != nil {
		return head, fmt.Errorf("failed to load chain head: %w", err)
	}
	if raw == "" {
		return head, nil
	}
	if err := l.json.Unmarshal([]byte(raw), &head); err != nil {
		return head, fmt.Errorf("failed to decode chain head: %w", err)
	}
	return head, nil
}

func (l *Ledger) saveHead(ctx context.Context, st store.Store, head chainHead) error {
	raw, err := l.json.Marshal(head)
	if err != nil {
		return fmt.Errorf("failed to encode chain head: %w", err)
	}
	return st.SetKeyValue(ctx, chainHeadKey, string(raw))
}
