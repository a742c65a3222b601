package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

const etherDecimals = 18

// ParseEther converts a decimal ether amount such as "1.5" to wei
func ParseEther(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" || strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	whole, frac, _ := strings.Cut(amount, ".")
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("%w: too many decimals in %q", ErrInvalidAmount, amount)
	}
	if whole == "" {
		whole = "0"
	}

	digits := whole + frac + strings.Repeat("0", etherDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return wei, nil
}

// FormatEther renders wei as a decimal ether string without trailing zeros
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether)).FloatString(etherDecimals)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseWei parses a base-10 wei amount
func ParseWei(amount string) (*big.Int, error) {
	wei, ok := new(big.Int).SetString(strings.TrimSpace(amount), 10)
	if !ok || wei.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return wei, nil
}
