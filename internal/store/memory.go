package store

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

type tokenKey struct {
	contract string
	number   uint64
}

type approvalKey struct {
	contract string
	owner    string
	operator string
}

type itemKey struct {
	marketplace string
	itemID      uint64
}

type table int

const (
	tableAccounts table = iota
	tableContracts
	tableTokens
	tableApprovals
	tableItems
	tableTransactions
	tableKV
	tableCount
)

// memoryData holds every table of the in-memory store. Rows are stored by value.
// A table marked shared belongs to the parent transaction and is copied before its first write.
type memoryData struct {
	accounts     map[string]schema.Account
	contracts    map[string]schema.Contract
	tokens       map[tokenKey]schema.Token
	approvals    map[approvalKey]schema.OperatorApproval
	items        map[itemKey]schema.MarketItem
	transactions map[string]schema.Transaction
	logs         []schema.EventLog
	kv           map[string]schema.KeyValueStore
	nextLogID    int64
	shared       [tableCount]bool
}

func newMemoryData() *memoryData {
	return &memoryData{
		accounts:     make(map[string]schema.Account),
		contracts:    make(map[string]schema.Contract),
		tokens:       make(map[tokenKey]schema.Token),
		approvals:    make(map[approvalKey]schema.OperatorApproval),
		items:        make(map[itemKey]schema.MarketItem),
		transactions: make(map[string]schema.Transaction),
		kv:           make(map[string]schema.KeyValueStore),
		nextLogID:    1,
	}
}

// draft returns a view sharing every table with d
func (d *memoryData) draft() *memoryData {
	v := *d
	// cap == len forces the first append to reallocate
	v.logs = slices.Clip(d.logs)
	for i := range v.shared {
		v.shared[i] = true
	}
	return &v
}

// own copies a shared table so writes stay inside the draft
func (d *memoryData) own(t table) {
	if !d.shared[t] {
		return
	}
	d.shared[t] = false

	switch t {
	case tableAccounts:
		d.accounts = cloneMap(d.accounts)
	case tableContracts:
		d.contracts = cloneMap(d.contracts)
	case tableTokens:
		d.tokens = cloneMap(d.tokens)
	case tableApprovals:
		d.approvals = cloneMap(d.approvals)
	case tableItems:
		d.items = cloneMap(d.items)
	case tableTransactions:
		d.transactions = cloneMap(d.transactions)
	case tableKV:
		d.kv = cloneMap(d.kv)
	}
}

// commit publishes draft into d. A table the draft never wrote is still d's own map,
// so it stays shared only if it was shared in d.
func (d *memoryData) commit(draft *memoryData) {
	for i := range draft.shared {
		draft.shared[i] = draft.shared[i] && d.shared[i]
	}
	*d = *draft
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// memoryStore is a Store kept in process memory, used when no database is configured
// and by tests. Transactions work on a copy-on-write draft that replaces the original on commit.
type memoryStore struct {
	mu   *sync.RWMutex
	data *memoryData
	inTx bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		mu:   &sync.RWMutex{},
		data: newMemoryData(),
	}
}

func (s *memoryStore) rlock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *memoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// WithTx runs fn against a draft of the data and publishes the draft when fn succeeds
func (s *memoryStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	unlock := s.lock()
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	draft := s.data.draft()
	if err := fn(&memoryStore{mu: s.mu, data: draft, inTx: true}); err != nil {
		return err
	}
	s.data.commit(draft)
	return nil
}

// GetBlockCursor retrieves the last processed block number for a consumer
func (s *memoryStore) GetBlockCursor(ctx context.Context, name string) (uint64, error) {
	return getBlockCursor(ctx, s, name)
}

// SetBlockCursor stores the last processed block number for a consumer
func (s *memoryStore) SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error {
	return setBlockCursor(ctx, s, name, blockNumber)
}

func (s *memoryStore) GetAccount(_ context.Context, address string) (*schema.Account, error) {
	defer s.rlock()()
	account, ok := s.data.accounts[address]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (s *memoryStore) SaveAccount(_ context.Context, account *schema.Account) error {
	defer s.lock()()
	now := time.Now()
	if existing, ok := s.data.accounts[account.Address]; ok {
		account.CreatedAt = existing.CreatedAt
	} else if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	s.data.own(tableAccounts)
	s.data.accounts[account.Address] = *account
	return nil
}

func (s *memoryStore) CreateContract(_ context.Context, contract *schema.Contract) error {
	defer s.lock()()
	if _, ok := s.data.contracts[contract.Address]; ok {
		return fmt.Errorf("failed to create contract: duplicate address %s", contract.Address)
	}
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = time.Now()
	}
	stored := *contract
	stored.Config = slices.Clone(contract.Config)
	s.data.own(tableContracts)
	s.data.contracts[contract.Address] = stored
	return nil
}

func (s *memoryStore) GetContract(_ context.Context, address string) (*schema.Contract, error) {
	defer s.rlock()()
	contract, ok := s.data.contracts[address]
	if !ok {
		return nil, nil
	}
	contract.Config = slices.Clone(contract.Config)
	return &contract, nil
}

func (s *memoryStore) GetLatestContractByKind(_ context.Context, kind string) (*schema.Contract, error) {
	defer s.rlock()()
	var latest *schema.Contract
	for _, contract := range s.data.contracts {
		if contract.Kind != kind {
			continue
		}
		if latest == nil || contract.BlockNumber > latest.BlockNumber {
			c := contract
			latest = &c
		}
	}
	if latest != nil {
		latest.Config = slices.Clone(latest.Config)
	}
	return latest, nil
}

func (s *memoryStore) GetToken(_ context.Context, contract string, tokenNumber uint64) (*schema.Token, error) {
	defer s.rlock()()
	token, ok := s.data.tokens[tokenKey{contract, tokenNumber}]
	if !ok {
		return nil, nil
	}
	token.Approved = cloneString(token.Approved)
	return &token, nil
}

func (s *memoryStore) SaveToken(_ context.Context, token *schema.Token) error {
	defer s.lock()()
	key := tokenKey{token.ContractAddress, token.TokenNumber}
	now := time.Now()
	if existing, ok := s.data.tokens[key]; ok {
		token.CreatedAt = existing.CreatedAt
	} else if token.CreatedAt.IsZero() {
		token.CreatedAt = now
	}
	stamp(&token.UpdatedAt)
	stored := *token
	stored.Approved = cloneString(token.Approved)
	s.data.own(tableTokens)
	s.data.tokens[key] = stored
	return nil
}

func (s *memoryStore) CountTokensByOwner(_ context.Context, contract string, owner string) (uint64, error) {
	defer s.rlock()()
	var count uint64
	for key, token := range s.data.tokens {
		if key.contract == contract && token.Owner == owner {
			count++
		}
	}
	return count, nil
}

func (s *memoryStore) ListTokens(_ context.Context, filter TokenFilter) ([]schema.Token, error) {
	defer s.rlock()()
	var tokens []schema.Token
	for key, token := range s.data.tokens {
		if key.contract != filter.Contract {
			continue
		}
		if filter.Owner != nil && token.Owner != *filter.Owner {
			continue
		}
		token.Approved = cloneString(token.Approved)
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].TokenNumber < tokens[j].TokenNumber
	})
	return tokens, nil
}

func (s *memoryStore) GetOperatorApproval(_ context.Context, contract string, owner string, operator string) (bool, error) {
	defer s.rlock()()
	return s.data.approvals[approvalKey{contract, owner, operator}].Approved, nil
}

func (s *memoryStore) SetOperatorApproval(_ context.Context, approval *schema.OperatorApproval) error {
	defer s.lock()()
	stamp(&approval.UpdatedAt)
	s.data.own(tableApprovals)
	s.data.approvals[approvalKey{approval.ContractAddress, approval.Owner, approval.Operator}] = *approval
	return nil
}

func (s *memoryStore) GetMarketItem(_ context.Context, marketplace string, itemID uint64) (*schema.MarketItem, error) {
	defer s.rlock()()
	item, ok := s.data.items[itemKey{marketplace, itemID}]
	if !ok {
		return nil, nil
	}
	item.Buyer = cloneString(item.Buyer)
	return &item, nil
}

func (s *memoryStore) SaveMarketItem(_ context.Context, item *schema.MarketItem) error {
	defer s.lock()()
	key := itemKey{item.MarketplaceAddress, item.ItemID}
	now := time.Now()
	if existing, ok := s.data.items[key]; ok {
		item.CreatedAt = existing.CreatedAt
	} else if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	stamp(&item.UpdatedAt)
	stored := *item
	stored.Buyer = cloneString(item.Buyer)
	s.data.own(tableItems)
	s.data.items[key] = stored
	return nil
}

func (s *memoryStore) ListMarketItems(_ context.Context, filter MarketItemFilter) ([]schema.MarketItem, error) {
	defer s.rlock()()
	var items []schema.MarketItem
	for key, item := range s.data.items {
		if key.marketplace != filter.Marketplace {
			continue
		}
		if filter.Seller != nil && item.Seller != *filter.Seller {
			continue
		}
		if filter.Buyer != nil && (item.Buyer == nil || *item.Buyer != *filter.Buyer) {
			continue
		}
		if filter.Sold != nil && item.Sold != *filter.Sold {
			continue
		}
		item.Buyer = cloneString(item.Buyer)
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ItemID < items[j].ItemID
	})
	return items, nil
}

func (s *memoryStore) SaveTransaction(_ context.Context, tx *schema.Transaction) error {
	defer s.lock()()
	if _, ok := s.data.transactions[tx.Hash]; ok {
		return fmt.Errorf("failed to save transaction: duplicate hash %s", tx.Hash)
	}
	stored := *tx
	stored.ToAddress = cloneString(tx.ToAddress)
	stored.ContractAddress = cloneString(tx.ContractAddress)
	s.data.own(tableTransactions)
	s.data.transactions[tx.Hash] = stored
	return nil
}

func (s *memoryStore) GetTransaction(_ context.Context, hash string) (*schema.Transaction, error) {
	defer s.rlock()()
	tx, ok := s.data.transactions[hash]
	if !ok {
		return nil, nil
	}
	tx.ToAddress = cloneString(tx.ToAddress)
	tx.ContractAddress = cloneString(tx.ContractAddress)
	return &tx, nil
}

func (s *memoryStore) CreateEventLogs(_ context.Context, logs []schema.EventLog) error {
	defer s.lock()()
	for i := range logs {
		logs[i].ID = s.data.nextLogID
		s.data.nextLogID++
		stored := logs[i]
		stored.Args = slices.Clone(logs[i].Args)
		s.data.logs = append(s.data.logs, stored)
	}
	return nil
}

func (s *memoryStore) FilterEventLogs(_ context.Context, filter EventLogFilter) ([]schema.EventLog, error) {
	if len(filter.Topics) > 4 {
		return nil, fmt.Errorf("too many topic positions: %d", len(filter.Topics))
	}

	defer s.rlock()()
	var logs []schema.EventLog
	for _, log := range s.data.logs {
		if !matchEventLog(&log, filter) {
			continue
		}
		log.Args = slices.Clone(log.Args)
		logs = append(logs, log)
	}
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].LogIndex < logs[j].LogIndex
	})
	if filter.Limit > 0 && len(logs) > filter.Limit {
		logs = logs[:filter.Limit]
	}
	return logs, nil
}

func matchEventLog(log *schema.EventLog, filter EventLogFilter) bool {
	if len(filter.Addresses) > 0 && !slices.Contains(filter.Addresses, log.Address) {
		return false
	}
	if filter.FromBlock != nil && log.BlockNumber < *filter.FromBlock {
		return false
	}
	if filter.ToBlock != nil && log.BlockNumber > *filter.ToBlock {
		return false
	}

	topics := [4]string{log.Topic0, log.Topic1, log.Topic2, log.Topic3}
	for i, wanted := range filter.Topics {
		if len(wanted) > 0 && !slices.Contains(wanted, topics[i]) {
			return false
		}
	}
	return true
}

func (s *memoryStore) GetKeyValue(_ context.Context, key string) (string, error) {
	defer s.rlock()()
	return s.data.kv[key].Value, nil
}

func (s *memoryStore) SetKeyValue(_ context.Context, key string, value string) error {
	defer s.lock()()
	now := time.Now()
	kv, ok := s.data.kv[key]
	if !ok {
		kv = schema.KeyValueStore{Key: key, CreatedAt: now}
	}
	kv.Value = value
	kv.UpdatedAt = now
	s.data.own(tableKV)
	s.data.kv[key] = kv
	return nil
}
