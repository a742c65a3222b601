package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Contract represents the contracts table - code deployed on the ledger
type Contract struct {
	// Address is the contract address derived from the deployer and its nonce
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Kind is the deployed code (BlocksNFT, Marketplace)
	Kind string `gorm:"column:kind;not null;type:text;index:idx_contracts_kind"`
	// Deployer is the address that deployed the contract
	Deployer string `gorm:"column:deployer;not null;type:text"`
	// TxHash is the deployment transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// BlockNumber is the block the contract was deployed in
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// Config holds the immutable constructor state (name and symbol, fee account and fee percent)
	Config datatypes.JSON `gorm:"column:config;type:jsonb"`
	// CreatedAt is the timestamp when this contract was deployed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
