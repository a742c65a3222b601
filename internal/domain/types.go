package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ContractKind identifies the code deployed at a contract address
type ContractKind string

const (
	ContractKindNFT         ContractKind = "BlocksNFT"
	ContractKindMarketplace ContractKind = "Marketplace"
)

// Valid checks if the contract kind is known
func (k ContractKind) Valid() bool {
	return k == ContractKindNFT || k == ContractKindMarketplace
}

// EventName is the ABI name of a contract event
type EventName string

const (
	EventTransfer       EventName = "Transfer"
	EventApproval       EventName = "Approval"
	EventApprovalForAll EventName = "ApprovalForAll"
	EventOffered        EventName = "Offered"
	EventBought         EventName = "Bought"
)

// Token is a single non-fungible token held by the token contract
type Token struct {
	Contract common.Address  `json:"contract"`
	ID       uint64          `json:"id"`
	Owner    common.Address  `json:"owner"`
	URI      string          `json:"uri"`
	Approved *common.Address `json:"approved,omitempty"`
}

// MarketItem is a listing held in escrow by the marketplace
type MarketItem struct {
	ItemID  uint64         `json:"item_id"`
	NFT     common.Address `json:"nft"`
	TokenID uint64         `json:"token_id"`
	Price   *big.Int       `json:"price"`
	Seller  common.Address `json:"seller"`
	Sold    bool           `json:"sold"`
}

// TokenMetadata is the JSON document a token URI points to
type TokenMetadata struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	MimeType    *string `json:"mime_type,omitempty"`
}

// LedgerEvent represents a decoded contract event
// This is the standard format published to NATS
type LedgerEvent struct {
	EventID         string            `json:"event_id"`         // ULID, unique per publication
	ChainID         uint64            `json:"chain_id"`         // ledger chain id
	ContractKind    ContractKind      `json:"contract_kind"`    // BlocksNFT or Marketplace
	ContractAddress string            `json:"contract_address"` // emitting contract
	Event           EventName         `json:"event"`            // ABI event name
	Args            map[string]string `json:"args"`             // decoded arguments rendered as strings
	TxHash          string            `json:"tx_hash"`
	BlockNumber     uint64            `json:"block_number"`
	BlockHash       string            `json:"block_hash"`
	LogIndex        uint              `json:"log_index"`
	Timestamp       time.Time         `json:"timestamp"`
}

// Subject returns the NATS subject suffix for the event, e.g. marketplace.bought
func (e *LedgerEvent) Subject() string {
	return fmt.Sprintf("%s.%s", strings.ToLower(string(e.ContractKind)), strings.ToLower(string(e.Event)))
}

// TotalPrice returns the price plus the marketplace fee
func TotalPrice(price *big.Int, feePercent *big.Int) *big.Int {
	return new(big.Int).Add(price, Fee(price, feePercent))
}

// Fee returns price * feePercent / 100 using integer division
func Fee(price *big.Int, feePercent *big.Int) *big.Int {
	fee := new(big.Int).Mul(price, feePercent)
	return fee.Quo(fee, big.NewInt(FEE_DENOMINATOR))
}

// ParseAddress parses a hex address, rejecting malformed input
func ParseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address), nil
}

// NormalizeAddress normalizes an address to its checksummed form
func NormalizeAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return common.HexToAddress(address).Hex()
	}
	return address
}

// IsZeroAddress checks if the address is the zero address
func IsZeroAddress(address common.Address) bool {
	return address == (common.Address{})
}
