package store

import (
	"context"

	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// MarketItemFilter narrows ListMarketItems
type MarketItemFilter struct {
	// Marketplace is the marketplace contract address (required)
	Marketplace string
	// Seller restricts to items listed by this address
	Seller *string
	// Buyer restricts to items bought by this address
	Buyer *string
	// Sold restricts to sold or unsold items
	Sold *bool
}

// TokenFilter narrows ListTokens
type TokenFilter struct {
	// Contract is the token contract address (required)
	Contract string
	// Owner restricts to tokens currently owned by this address
	Owner *string
}

// EventLogFilter narrows FilterEventLogs, mirroring eth_getLogs semantics
type EventLogFilter struct {
	// Addresses restricts to logs emitted by any of these contracts
	Addresses []string
	// Topics matches by position; an empty position matches anything,
	// otherwise the topic must equal one of the listed values
	Topics [][]string
	// FromBlock is the inclusive lower bound
	FromBlock *uint64
	// ToBlock is the inclusive upper bound
	ToBlock *uint64
	// Limit caps the number of returned logs, 0 means no limit
	Limit int
}

// Store defines the interface for ledger state persistence
type Store interface {
	CursorStore

	// WithTx runs fn inside a transaction. The transaction commits when fn returns nil
	// and rolls back otherwise. Nested calls roll back independently of the outer call.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// GetAccount retrieves an account by address, nil if it was never touched
	GetAccount(ctx context.Context, address string) (*schema.Account, error)
	// SaveAccount inserts or updates an account
	SaveAccount(ctx context.Context, account *schema.Account) error

	// CreateContract stores a deployed contract
	CreateContract(ctx context.Context, contract *schema.Contract) error
	// GetContract retrieves a contract by address, nil if absent
	GetContract(ctx context.Context, address string) (*schema.Contract, error)
	// GetLatestContractByKind retrieves the most recently deployed contract of a kind, nil if absent
	GetLatestContractByKind(ctx context.Context, kind string) (*schema.Contract, error)

	// GetToken retrieves a token, nil if it was never minted
	GetToken(ctx context.Context, contract string, tokenNumber uint64) (*schema.Token, error)
	// SaveToken inserts or updates a token
	SaveToken(ctx context.Context, token *schema.Token) error
	// CountTokensByOwner counts the tokens of a contract held by an owner
	CountTokensByOwner(ctx context.Context, contract string, owner string) (uint64, error)
	// ListTokens lists tokens ordered by token number
	ListTokens(ctx context.Context, filter TokenFilter) ([]schema.Token, error)

	// GetOperatorApproval reports whether operator may manage all tokens of owner
	GetOperatorApproval(ctx context.Context, contract string, owner string, operator string) (bool, error)
	// SetOperatorApproval inserts or updates an operator approval
	SetOperatorApproval(ctx context.Context, approval *schema.OperatorApproval) error

	// GetMarketItem retrieves a market item, nil if absent
	GetMarketItem(ctx context.Context, marketplace string, itemID uint64) (*schema.MarketItem, error)
	// SaveMarketItem inserts or updates a market item
	SaveMarketItem(ctx context.Context, item *schema.MarketItem) error
	// ListMarketItems lists market items ordered by item id
	ListMarketItems(ctx context.Context, filter MarketItemFilter) ([]schema.MarketItem, error)

	// SaveTransaction stores an executed transaction
	SaveTransaction(ctx context.Context, tx *schema.Transaction) error
	// GetTransaction retrieves a transaction by hash, nil if absent
	GetTransaction(ctx context.Context, hash string) (*schema.Transaction, error)

	// CreateEventLogs stores the logs of an executed transaction
	CreateEventLogs(ctx context.Context, logs []schema.EventLog) error
	// FilterEventLogs returns logs ordered by block number and log index
	FilterEventLogs(ctx context.Context, filter EventLogFilter) ([]schema.EventLog, error)

	// GetKeyValue retrieves a value by key, empty if absent
	GetKeyValue(ctx context.Context, key string) (string, error)
	// SetKeyValue stores a value by key
	SetKeyValue(ctx context.Context, key string, value string) error
}
