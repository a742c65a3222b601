package auth

import "errors"

var (
	// ErrNonceNotFound is returned when logging in without a pending challenge
	ErrNonceNotFound = errors.New("no pending login challenge for address")

	// ErrInvalidSignature is returned for malformed signatures
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrAddressSignatureMismatch is returned when the signature was made by another address
	ErrAddressSignatureMismatch = errors.New("signature does not match address")

	// ErrInvalidToken is returned for expired, malformed or forged session tokens
	ErrInvalidToken = errors.New("invalid session token")
)
