package dto

import (
	"strings"

	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// NonceRequest represents the request body for creating a login challenge
type NonceRequest struct {
	Address string `json:"address"`
}

// Validate validates the request body
func (r *NonceRequest) Validate() error {
	if _, err := domain.ParseAddress(r.Address); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// LoginRequest represents the request body for exchanging a signed challenge for a session
type LoginRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// Validate validates the request body
func (r *LoginRequest) Validate() error {
	if _, err := domain.ParseAddress(r.Address); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(r.Signature) == "" {
		return apierrors.NewValidationError("signature is required")
	}
	return nil
}

// MintRequest represents the request body for minting a token
type MintRequest struct {
	TokenURI string `json:"token_uri"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if strings.TrimSpace(r.TokenURI) == "" {
		return apierrors.NewValidationError("token_uri is required")
	}
	return nil
}

// MintAndListRequest represents the request body of the mint view.
// Either a token URI or the metadata to upload must be given.
type MintAndListRequest struct {
	TokenURI    string `json:"token_uri,omitempty"`
	Image       string `json:"image,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// Price is the listing price in ether
	Price string `json:"price"`
}

// Validate validates the request body
func (r *MintAndListRequest) Validate() error {
	price, err := domain.ParseEther(r.Price)
	if err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	// Minting happens before listing, so a price the marketplace would reject is caught here
	if price.Sign() <= 0 {
		return apierrors.NewValidationError(domain.ErrPriceNotPositive.Error())
	}

	if strings.TrimSpace(r.TokenURI) != "" {
		return nil
	}

	var missing []string
	if strings.TrimSpace(r.Image) == "" {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return apierrors.NewValidationError("token_uri or " + strings.Join(missing, ", ") + " is required")
	}
	return nil
}

// CreateItemRequest represents the request body for listing an owned token
type CreateItemRequest struct {
	NFT     string `json:"nft"`
	TokenID uint64 `json:"token_id"`
	// Price is the listing price in ether
	Price string `json:"price"`
}

// Validate validates the request body.
// A zero price is left to the marketplace contract to reject.
func (r *CreateItemRequest) Validate() error {
	if _, err := domain.ParseAddress(r.NFT); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if _, err := domain.ParseEther(r.Price); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// PurchaseRequest represents the optional request body for purchasing an item
type PurchaseRequest struct {
	// Value is the amount sent in ether, defaults to the total price
	Value *string `json:"value,omitempty"`
}

// Validate validates the request body
func (r *PurchaseRequest) Validate() error {
	if r.Value == nil {
		return nil
	}
	if _, err := domain.ParseEther(*r.Value); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// ApprovalForAllRequest represents the request body for approving an operator
type ApprovalForAllRequest struct {
	// Operator defaults to the marketplace
	Operator string `json:"operator,omitempty"`
	Approved bool   `json:"approved"`
}

// Validate validates the request body
func (r *ApprovalForAllRequest) Validate() error {
	if r.Operator == "" {
		return nil
	}
	if _, err := domain.ParseAddress(r.Operator); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}
