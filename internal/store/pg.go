package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/conquerblocks/nft-marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's limit of 65535 parameters per query.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// ledgerLockID keys the transaction-scoped advisory lock that serializes writers
// sharing one database, e.g. the API and marketctl
const ledgerLockID int64 = 0x6d61726b6574 // "market"

// WithTx runs fn inside a database transaction; nested calls use savepoints.
// The advisory lock is held until the outermost transaction ends and is re-entrant.
func (s *pgStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", ledgerLockID).Error; err != nil {
			return fmt.Errorf("failed to acquire ledger lock: %w", err)
		}
		return fn(&pgStore{db: tx})
	})
}

// stamp sets UpdatedAt to now unless the caller already did
func stamp(updatedAt *time.Time) {
	if updatedAt.IsZero() {
		*updatedAt = time.Now()
	}
}

// GetBlockCursor retrieves the last processed block number for a consumer
func (s *pgStore) GetBlockCursor(ctx context.Context, name string) (uint64, error) {
	return getBlockCursor(ctx, s, name)
}

// SetBlockCursor stores the last processed block number for a consumer
func (s *pgStore) SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error {
	return setBlockCursor(ctx, s, name, blockNumber)
}

// GetAccount retrieves an account by address
func (s *pgStore) GetAccount(ctx context.Context, address string) (*schema.Account, error) {
	var account schema.Account
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// SaveAccount inserts or updates an account
func (s *pgStore) SaveAccount(ctx context.Context, account *schema.Account) error {
	account.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "nonce", "updated_at"}),
	}).Create(account).Error
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// CreateContract stores a deployed contract
func (s *pgStore) CreateContract(ctx context.Context, contract *schema.Contract) error {
	if err := s.db.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

// GetContract retrieves a contract by address
func (s *pgStore) GetContract(ctx context.Context, address string) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

// GetLatestContractByKind retrieves the most recently deployed contract of a kind
func (s *pgStore) GetLatestContractByKind(ctx context.Context, kind string) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("block_number DESC").
		First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract by kind: %w", err)
	}
	return &contract, nil
}

// GetToken retrieves a token by contract and token number
func (s *pgStore) GetToken(ctx context.Context, contract string, tokenNumber uint64) (*schema.Token, error) {
	var token schema.Token
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_number = ?", contract, tokenNumber).
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// SaveToken inserts or updates a token
func (s *pgStore) SaveToken(ctx context.Context, token *schema.Token) error {
	stamp(&token.UpdatedAt)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}, {Name: "token_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"owner", "approved", "updated_at"}),
	}).Create(token).Error
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// CountTokensByOwner counts the tokens of a contract held by an owner
func (s *pgStore) CountTokensByOwner(ctx context.Context, contract string, owner string) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Token{}).
		Where("contract_address = ? AND owner = ?", contract, owner).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tokens: %w", err)
	}
	return uint64(count), nil //nolint:gosec,G115
}

// ListTokens lists tokens ordered by token number
func (s *pgStore) ListTokens(ctx context.Context, filter TokenFilter) ([]schema.Token, error) {
	query := s.db.WithContext(ctx).Where("contract_address = ?", filter.Contract)
	if filter.Owner != nil {
		query = query.Where("owner = ?", *filter.Owner)
	}

	var tokens []schema.Token
	if err := query.Order("token_number ASC").Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// GetOperatorApproval reports whether operator may manage all tokens of owner
func (s *pgStore) GetOperatorApproval(ctx context.Context, contract string, owner string, operator string) (bool, error) {
	var approval schema.OperatorApproval
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND owner = ? AND operator = ?", contract, owner, operator).
		First(&approval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get operator approval: %w", err)
	}
	return approval.Approved, nil
}

// SetOperatorApproval inserts or updates an operator approval
func (s *pgStore) SetOperatorApproval(ctx context.Context, approval *schema.OperatorApproval) error {
	stamp(&approval.UpdatedAt)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "contract_address"}, {Name: "owner"}, {Name: "operator"}},
		DoUpdates: clause.AssignmentColumns([]string{"approved", "updated_at"}),
	}).Create(approval).Error
	if err != nil {
		return fmt.Errorf("failed to set operator approval: %w", err)
	}
	return nil
}

// GetMarketItem retrieves a market item
func (s *pgStore) GetMarketItem(ctx context.Context, marketplace string, itemID uint64) (*schema.MarketItem, error) {
	var item schema.MarketItem
	err := s.db.WithContext(ctx).
		Where("marketplace_address = ? AND item_id = ?", marketplace, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get market item: %w", err)
	}
	return &item, nil
}

// SaveMarketItem inserts or updates a market item
func (s *pgStore) SaveMarketItem(ctx context.Context, item *schema.MarketItem) error {
	stamp(&item.UpdatedAt)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "marketplace_address"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"sold", "buyer", "updated_at"}),
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to save market item: %w", err)
	}
	return nil
}

// ListMarketItems lists market items ordered by item id
func (s *pgStore) ListMarketItems(ctx context.Context, filter MarketItemFilter) ([]schema.MarketItem, error) {
	query := s.db.WithContext(ctx).Where("marketplace_address = ?", filter.Marketplace)
	if filter.Seller != nil {
		query = query.Where("seller = ?", *filter.Seller)
	}
	if filter.Buyer != nil {
		query = query.Where("buyer = ?", *filter.Buyer)
	}
	if filter.Sold != nil {
		query = query.Where("sold = ?", *filter.Sold)
	}

	var items []schema.MarketItem
	if err := query.Order("item_id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list market items: %w", err)
	}
	return items, nil
}

// SaveTransaction stores an executed transaction
func (s *pgStore) SaveTransaction(ctx context.Context, tx *schema.Transaction) error {
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by hash
func (s *pgStore) GetTransaction(ctx context.Context, hash string) (*schema.Transaction, error) {
	var tx schema.Transaction
	err := s.db.WithContext(ctx).Where("hash = ?", hash).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// CreateEventLogs stores event logs in parameter-safe batches
func (s *pgStore) CreateEventLogs(ctx context.Context, logs []schema.EventLog) error {
	if len(logs) == 0 {
		return nil
	}

	batchSize := calculateSafeBatchSize(len(logs), 15)
	if err := s.db.WithContext(ctx).CreateInBatches(&logs, batchSize).Error; err != nil {
		return fmt.Errorf("failed to create event logs: %w", err)
	}
	return nil
}

// FilterEventLogs returns logs ordered by block number and log index
func (s *pgStore) FilterEventLogs(ctx context.Context, filter EventLogFilter) ([]schema.EventLog, error) {
	query := s.db.WithContext(ctx).Model(&schema.EventLog{})
	if len(filter.Addresses) > 0 {
		query = query.Where("address IN ?", filter.Addresses)
	}
	for i, topics := range filter.Topics {
		if i > 3 {
			return nil, fmt.Errorf("too many topic positions: %d", len(filter.Topics))
		}
		if len(topics) == 0 {
			continue
		}
		query = query.Where(fmt.Sprintf("topic%d IN ?", i), topics)
	}
	if filter.FromBlock != nil {
		query = query.Where("block_number >= ?", *filter.FromBlock)
	}
	if filter.ToBlock != nil {
		query = query.Where("block_number <= ?", *filter.ToBlock)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var logs []schema.EventLog
	if err := query.Order("block_number ASC, log_index ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to filter event logs: %w", err)
	}
	return logs, nil
}

// SetKeyValue stores a key-value pair
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}
