package dto

import (
	"encoding/json"
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	ChainID     uint64 `json:"chain_id"`
	BlockNumber uint64 `json:"block_number"`
	Deployed    bool   `json:"deployed"`
}

// TokenMetadataResponse represents the metadata document a token URI points to
type TokenMetadataResponse struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ImageURL    string  `json:"image_url,omitempty"`
	MimeType    *string `json:"mime_type,omitempty"`
}

// ItemResponse represents a market item with its total price and token metadata.
// Amounts are wei in base 10, the *_ether fields render them in ether.
type ItemResponse struct {
	ItemID          uint64                 `json:"item_id"`
	NFT             string                 `json:"nft"`
	TokenID         uint64                 `json:"token_id"`
	Seller          string                 `json:"seller"`
	Price           string                 `json:"price"`
	PriceEther      string                 `json:"price_ether"`
	TotalPrice      string                 `json:"total_price"`
	TotalPriceEther string                 `json:"total_price_ether"`
	Sold            bool                   `json:"sold"`
	TokenURI        string                 `json:"token_uri,omitempty"`
	Metadata        *TokenMetadataResponse `json:"metadata,omitempty"`
}

// ItemListResponse represents the items of the home view
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ListedItemsResponse represents the items an account listed, split by state
type ListedItemsResponse struct {
	Listed []ItemResponse `json:"listed"`
	Sold   []ItemResponse `json:"sold"`
}

// PurchasedItemResponse represents an item bought by an account
type PurchasedItemResponse struct {
	ItemResponse
	Buyer       string `json:"buyer"`
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

// PurchaseListResponse represents the purchases of an account
type PurchaseListResponse struct {
	Purchases []PurchasedItemResponse `json:"purchases"`
}

// TotalPriceResponse represents the price of an item including the marketplace fee
type TotalPriceResponse struct {
	ItemID          uint64 `json:"item_id"`
	TotalPrice      string `json:"total_price"`
	TotalPriceEther string `json:"total_price_ether"`
}

// TransactionResponse represents an executed transaction
type TransactionResponse struct {
	TxHash          string    `json:"tx_hash"`
	BlockNumber     uint64    `json:"block_number"`
	BlockHash       string    `json:"block_hash"`
	From            string    `json:"from"`
	To              *string   `json:"to,omitempty"`
	ContractAddress *string   `json:"contract_address,omitempty"`
	Method          string    `json:"method,omitempty"`
	Value           string    `json:"value"`
	GasUsed         uint64    `json:"gas_used"`
	GasPrice        string    `json:"gas_price"`
	Fee             string    `json:"fee"`
	Timestamp       time.Time `json:"timestamp"`
}

// CreateItemResponse represents a new listing
type CreateItemResponse struct {
	Item        ItemResponse        `json:"item"`
	Transaction TransactionResponse `json:"transaction"`
}

// PurchaseResponse represents a completed purchase
type PurchaseResponse struct {
	Item        ItemResponse        `json:"item"`
	Transaction TransactionResponse `json:"transaction"`
}

// MintResponse represents a minted token
type MintResponse struct {
	TokenID     uint64              `json:"token_id"`
	TokenURI    string              `json:"token_uri"`
	Transaction TransactionResponse `json:"transaction"`
}

// MintAndListResponse represents the outcome of the mint view, one transaction per step
type MintAndListResponse struct {
	TokenID      uint64                `json:"token_id"`
	TokenURI     string                `json:"token_uri"`
	Item         ItemResponse          `json:"item"`
	Transactions []TransactionResponse `json:"transactions"`
}

// UploadResponse represents a file added to IPFS
type UploadResponse struct {
	CID        string `json:"cid"`
	URI        string `json:"uri"`
	GatewayURL string `json:"gateway_url"`
	MimeType   string `json:"mime_type"`
	Size       int    `json:"size"`
}

// TokenResponse represents a token of the token contract
type TokenResponse struct {
	Contract string                 `json:"contract"`
	TokenID  uint64                 `json:"token_id"`
	Owner    string                 `json:"owner"`
	TokenURI string                 `json:"token_uri"`
	Approved *string                `json:"approved,omitempty"`
	Metadata *TokenMetadataResponse `json:"metadata,omitempty"`
}

// ApprovalForAllResponse represents an operator approval change
type ApprovalForAllResponse struct {
	Owner       string              `json:"owner"`
	Operator    string              `json:"operator"`
	Approved    bool                `json:"approved"`
	Transaction TransactionResponse `json:"transaction"`
}

// AccountResponse represents the ledger state of an account
type AccountResponse struct {
	Address      string `json:"address"`
	Balance      string `json:"balance"`
	BalanceEther string `json:"balance_ether"`
	Nonce        uint64 `json:"nonce"`
	TokenBalance uint64 `json:"token_balance"`
}

// ContractResponse represents a deployment artifact
type ContractResponse struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

// ContractsResponse represents the deployed contracts and the marketplace fee settings
type ContractsResponse struct {
	ChainID     uint64             `json:"chain_id"`
	Contracts   []ContractResponse `json:"contracts"`
	FeeAccount  string             `json:"fee_account"`
	FeePercent  string             `json:"fee_percent"`
	BlockNumber uint64             `json:"block_number"`
}

// EventResponse represents a decoded contract event log
type EventResponse struct {
	Contract    string            `json:"contract"`
	Address     string            `json:"address"`
	Event       string            `json:"event"`
	Args        map[string]string `json:"args"`
	BlockNumber uint64            `json:"block_number"`
	BlockHash   string            `json:"block_hash"`
	TxHash      string            `json:"tx_hash"`
	LogIndex    uint              `json:"log_index"`
	Timestamp   time.Time         `json:"timestamp"`
}

// EventListResponse represents a list of event logs
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// NonceResponse represents a login challenge
type NonceResponse struct {
	Address   string    `json:"address"`
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse represents a wallet session
type SessionResponse struct {
	Address   string    `json:"address"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
