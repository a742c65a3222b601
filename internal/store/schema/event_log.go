package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EventLog represents the event_logs table - EVM shaped logs emitted by contracts
type EventLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BlockNumber is the block that includes the log
	BlockNumber uint64 `gorm:"column:block_number;not null;index:idx_event_logs_block"`
	// BlockHash is the hash of the including block
	BlockHash string `gorm:"column:block_hash;not null;type:text"`
	// TxHash is the emitting transaction
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// TxIndex is the transaction index within the block
	TxIndex uint `gorm:"column:tx_index;not null"`
	// LogIndex is the log index within the block
	LogIndex uint `gorm:"column:log_index;not null"`
	// Address is the emitting contract
	Address string `gorm:"column:address;not null;type:text;index:idx_event_logs_address"`
	// Topic0 is the event signature hash
	Topic0 string `gorm:"column:topic0;not null;type:text;index:idx_event_logs_topic0"`
	// Topic1..Topic3 are the indexed arguments, empty when absent
	Topic1 string `gorm:"column:topic1;not null;default:'';type:text"`
	Topic2 string `gorm:"column:topic2;not null;default:'';type:text"`
	Topic3 string `gorm:"column:topic3;not null;default:'';type:text"`
	// Data is the hex encoded non-indexed arguments
	Data string `gorm:"column:data;not null;type:text"`
	// Event is the decoded event name
	Event string `gorm:"column:event;not null;type:text"`
	// Args holds the decoded arguments for querying and display
	Args datatypes.JSON `gorm:"column:args;type:jsonb"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the EventLog model
func (EventLog) TableName() string {
	return "event_logs"
}

// Topics returns the non-empty topics in order
func (l *EventLog) Topics() []string {
	topics := []string{l.Topic0}
	for _, topic := range []string{l.Topic1, l.Topic2, l.Topic3} {
		if topic == "" {
			break
		}
		topics = append(topics, topic)
	}
	return topics
}
