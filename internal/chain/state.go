package chain

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/store"
	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

// loadAccount returns the account of an address, a zero account if it was never touched
func loadAccount(ctx context.Context, st store.Store, address common.Address) (*schema.Account, *big.Int, error) {
	account, err := st.GetAccount(ctx, address.Hex())
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return &schema.Account{Address: address.Hex(), Balance: "0"}, new(big.Int), nil
	}

	balance, ok := new(big.Int).SetString(account.Balance, 10)
	if !ok {
		return nil, nil, fmt.Errorf("failed to parse balance of %s: %q", account.Address, account.Balance)
	}
	return account, balance, nil
}

func saveBalance(ctx context.Context, st store.Store, account *schema.Account, balance *big.Int) error {
	account.Balance = balance.String()
	return st.SaveAccount(ctx, account)
}

// addBalance credits an address
func addBalance(ctx context.Context, st store.Store, address common.Address, amount *big.Int) error {
	account, balance, err := loadAccount(ctx, st, address)
	if err != nil {
		return err
	}
	return saveBalance(ctx, st, account, balance.Add(balance, amount))
}

// subBalance debits an address, reverting when the balance is too low
func subBalance(ctx context.Context, st store.Store, address common.Address, amount *big.Int) error {
	account, balance, err := loadAccount(ctx, st, address)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return Revert(domain.ErrInsufficientFunds)
	}
	return saveBalance(ctx, st, account, balance.Sub(balance, amount))
}

// transfer moves native value between two addresses
func transfer(ctx context.Context, st store.Store, from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if amount.Sign() < 0 {
		return Revert(domain.ErrInvalidAmount)
	}
	if err := subBalance(ctx, st, from, amount); err != nil {
		return err
	}
	return addBalance(ctx, st, to, amount)
}

func counterKey(contract common.Address, name string) string {
	return fmt.Sprintf("counter:%s:%s", contract.Hex(), name)
}

func loadCounter(ctx context.Context, st store.Store, contract common.Address, name string) (uint64, error) {
	value, err := st.GetKeyValue(ctx, counterKey(contract, name))
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	counter, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter %s: %w", name, err)
	}
	return counter, nil
}

func saveCounter(ctx context.Context, st store.Store, contract common.Address, name string, value uint64) error {
	return st.SetKeyValue(ctx, counterKey(contract, name), strconv.FormatUint(value, 10))
}
