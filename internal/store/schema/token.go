package schema

import "time"

// Token represents the tokens table - one row per minted token of a token contract
type Token struct {
	// ContractAddress is the token contract address
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text"`
	// TokenNumber is the token id within the contract, starting at 1
	TokenNumber uint64 `gorm:"column:token_number;primaryKey"`
	// Owner is the current owner address
	Owner string `gorm:"column:owner;not null;type:text;index:idx_tokens_owner"`
	// URI is the metadata URI set at mint time
	URI string `gorm:"column:uri;not null;type:text"`
	// Approved is the single-token approved address, cleared on transfer
	Approved *string `gorm:"column:approved;type:text"`
	// Minter is the address that minted the token
	Minter string `gorm:"column:minter;not null;type:text"`
	// CreatedAt is the timestamp when this token was minted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this token was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}

// OperatorApproval represents the operator_approvals table - setApprovalForAll state
type OperatorApproval struct {
	// ContractAddress is the token contract address
	ContractAddress string `gorm:"column:contract_address;primaryKey;type:text"`
	// Owner is the token owner granting the approval
	Owner string `gorm:"column:owner;primaryKey;type:text"`
	// Operator is the address allowed to manage all tokens of the owner
	Operator string `gorm:"column:operator;primaryKey;type:text"`
	// Approved is the current approval state
	Approved bool `gorm:"column:approved;not null"`
	// UpdatedAt is the timestamp when this approval was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OperatorApproval model
func (OperatorApproval) TableName() string {
	return "operator_approvals"
}
