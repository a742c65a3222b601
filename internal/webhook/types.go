package webhook

import (
	"time"

	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// Event type constants, one per contract event
const (
	EventTypeItemOffered         = "marketplace.offered"
	EventTypeItemBought          = "marketplace.bought"
	EventTypeTokenTransfer       = "blocksnft.transfer"
	EventTypeTokenApproval       = "blocksnft.approval"
	EventTypeTokenApprovalForAll = "blocksnft.approvalforall"

	// EventTypeWildcard is a special filter that matches all event types
	EventTypeWildcard = "*"
)

// EventTypes lists every event type a subscriber can filter on
var EventTypes = []string{
	EventTypeItemOffered,
	EventTypeItemBought,
	EventTypeTokenTransfer,
	EventTypeTokenApproval,
	EventTypeTokenApprovalForAll,
}

// WebhookEvent represents a webhook event to be delivered to clients
type WebhookEvent struct {
	// EventID is the ledger event id, stable across redeliveries
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "marketplace.bought")
	EventType string `json:"event_type"`
	// Timestamp is when the block holding the event was produced
	Timestamp time.Time `json:"timestamp"`
	Data      EventData `json:"data"`
}

// EventData contains the webhook event payload
type EventData struct {
	ChainID      uint64              `json:"chain_id"`
	ContractKind domain.ContractKind `json:"contract_kind"`
	Contract     string              `json:"contract"`
	Event        domain.EventName    `json:"event"`
	// Args holds the decoded event arguments, amounts in wei
	Args        map[string]string `json:"args"`
	TxHash      string            `json:"tx_hash"`
	BlockNumber uint64            `json:"block_number"`
	LogIndex    uint              `json:"log_index"`
}

// NewWebhookEvent wraps a ledger event for delivery
func NewWebhookEvent(event *domain.LedgerEvent) WebhookEvent {
	return WebhookEvent{
		EventID:   event.EventID,
		EventType: event.Subject(),
		Timestamp: event.Timestamp,
		Data: EventData{
			ChainID:      event.ChainID,
			ContractKind: event.ContractKind,
			Contract:     event.ContractAddress,
			Event:        event.Event,
			Args:         event.Args,
			TxHash:       event.TxHash,
			BlockNumber:  event.BlockNumber,
			LogIndex:     event.LogIndex,
		},
	}
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the endpoint answered with a 2xx status
	Success    bool
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body  string
	Error string
}
