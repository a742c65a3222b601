package schema

import "time"

// Account represents the accounts table - native balances and nonces of externally owned and contract addresses
type Account struct {
	// Address is the checksummed hex address (primary key)
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Balance is the native balance in wei (stored as string to support up to 78 digits)
	Balance string `gorm:"column:balance;not null;default:0;type:numeric(78,0)"`
	// Nonce is the number of transactions executed by this address
	Nonce uint64 `gorm:"column:nonce;not null;default:0"`
	// CreatedAt is the timestamp when this account was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this account was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
