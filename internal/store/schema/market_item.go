package schema

import "time"

// MarketItem represents the market_items table - listings held in escrow by a marketplace
type MarketItem struct {
	// MarketplaceAddress is the marketplace contract address
	MarketplaceAddress string `gorm:"column:marketplace_address;primaryKey;type:text"`
	// ItemID is the item id within the marketplace, starting at 1
	ItemID uint64 `gorm:"column:item_id;primaryKey"`
	// NFTContract is the token contract of the listed token
	NFTContract string `gorm:"column:nft_contract;not null;type:text"`
	// TokenNumber is the listed token id
	TokenNumber uint64 `gorm:"column:token_number;not null"`
	// Price is the seller price in wei (stored as string to support up to 78 digits)
	Price string `gorm:"column:price;not null;type:numeric(78,0)"`
	// Seller is the address that listed the item
	Seller string `gorm:"column:seller;not null;type:text;index:idx_market_items_seller"`
	// Sold flips from false to true exactly once
	Sold bool `gorm:"column:sold;not null;default:false;index:idx_market_items_sold"`
	// Buyer is the purchasing address, nil while unsold
	Buyer *string `gorm:"column:buyer;type:text"`
	// CreatedAt is the timestamp when this item was listed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this item was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketItem model
func (MarketItem) TableName() string {
	return "market_items"
}
