package auth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// LoginMessagePrefix is prepended to every nonce a wallet signs
const LoginMessagePrefix = "Conquer Blocks NFT Marketplace uses this signature to verify that you own this address. Nonce: "

// LoginMessage returns the message a wallet signs to log in
func LoginMessage(nonce string) string {
	return LoginMessagePrefix + nonce
}

// RecoverAddress recovers the signer of a personal_sign (EIP-191) signature
func RecoverAddress(message string, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(sig))
	}

	// Wallets produce v = 27/28, hardware wallets v = 0/1
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, fmt.Errorf("%w: invalid recovery id", ErrInvalidSignature)
	}

	publicKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*publicKey), nil
}

// VerifySignature checks that message was signed by address
func VerifySignature(address common.Address, message string, signature string) error {
	signer, err := RecoverAddress(message, signature)
	if err != nil {
		return err
	}
	if signer != address {
		return ErrAddressSignatureMismatch
	}
	return nil
}
