package schema

import "time"

// Transaction represents the transactions table - executed ledger transactions
// Reverted transactions are rolled back and never stored
type Transaction struct {
	// Hash is the transaction hash (primary key)
	Hash string `gorm:"column:hash;primaryKey;type:text"`
	// BlockNumber is the block that includes the transaction
	BlockNumber uint64 `gorm:"column:block_number;not null;uniqueIndex:idx_transactions_block"`
	// BlockHash is the hash of the including block
	BlockHash string `gorm:"column:block_hash;not null;type:text"`
	// FromAddress is the sender
	FromAddress string `gorm:"column:from_address;not null;type:text;index:idx_transactions_from"`
	// ToAddress is the recipient, nil for deployments
	ToAddress *string `gorm:"column:to_address;type:text"`
	// ContractAddress is the created contract, only set for deployments
	ContractAddress *string `gorm:"column:contract_address;type:text"`
	// Method is the invoked ABI method name, empty for plain transfers
	Method string `gorm:"column:method;not null;default:'';type:text"`
	// Value is the native amount sent in wei
	Value string `gorm:"column:value;not null;type:numeric(78,0)"`
	// Input is the hex encoded call data
	Input string `gorm:"column:input;not null;type:text"`
	// Nonce is the sender nonce used by the transaction
	Nonce uint64 `gorm:"column:nonce;not null"`
	// GasUsed is the gas charged to the sender
	GasUsed uint64 `gorm:"column:gas_used;not null"`
	// GasPrice is the price per gas unit in wei
	GasPrice string `gorm:"column:gas_price;not null;type:numeric(78,0)"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
