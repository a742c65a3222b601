package schema

import "time"

// KeyValueStore stores arbitrary key-value pairs for ledger state
// Used for block cursors, the chain head and per-contract counters
type KeyValueStore struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

// Models lists every table managed by the store, in creation order
func Models() []interface{} {
	return []interface{}{
		&Account{},
		&Contract{},
		&Token{},
		&OperatorApproval{},
		&MarketItem{},
		&Transaction{},
		&EventLog{},
		&KeyValueStore{},
	}
}
