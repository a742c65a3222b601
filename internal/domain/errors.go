package domain

import "errors"

// Marketplace revert reasons
var (
	// ErrPriceNotPositive is returned when an item is listed with a zero price
	ErrPriceNotPositive = errors.New("Price must be bigger than 0") //nolint:staticcheck

	// ErrItemNotFound is returned for item ids outside 1..itemCount
	ErrItemNotFound = errors.New("item doesn't exist")

	// ErrInsufficientPayment is returned when the value sent is below the total price
	ErrInsufficientPayment = errors.New("not enough ether to cover item price and market fee")

	// ErrItemSold is returned when purchasing an item twice
	ErrItemSold = errors.New("item already sold")
)

// Token contract revert reasons
var (
	ErrInvalidTokenID             = errors.New("ERC721: invalid token ID")
	ErrNotTokenOwnerOrApproved    = errors.New("ERC721: caller is not token owner or approved")
	ErrApproveNotOwnerOrOperator  = errors.New("ERC721: approve caller is not token owner or approved for all")
	ErrTransferFromIncorrectOwner = errors.New("ERC721: transfer from incorrect owner")
	ErrTransferToZeroAddress      = errors.New("ERC721: transfer to the zero address")
	ErrApproveToCaller            = errors.New("ERC721: approve to caller")
	ErrApprovalToCurrentOwner     = errors.New("ERC721: approval to current owner")
	ErrZeroAddressOwner           = errors.New("ERC721: address zero is not a valid owner")
)

// Ledger errors
var (
	// ErrInsufficientFunds is returned when the sender cannot pay for gas and value
	ErrInsufficientFunds = errors.New("insufficient funds for gas * price + value")

	// ErrContractNotFound is returned when calling an address that holds no contract
	ErrContractNotFound = errors.New("contract not found")

	// ErrUnknownMethod is returned when the call data does not match any method selector
	ErrUnknownMethod = errors.New("unknown method")

	// ErrNonPayable is returned when value is sent to a method that is not payable
	ErrNonPayable = errors.New("non-payable method cannot receive value")

	// ErrUnknownContractKind is returned when deploying code the ledger does not know
	ErrUnknownContractKind = errors.New("unknown contract kind")

	// ErrInvalidAddress is returned for malformed hex addresses
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidAmount is returned for malformed ether amounts
	ErrInvalidAmount = errors.New("invalid amount")
)

// Application errors
var (
	// ErrNotDeployed is returned when the marketplace contracts have not been deployed yet
	ErrNotDeployed = errors.New("marketplace contracts are not deployed")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")
)
