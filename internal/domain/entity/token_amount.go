package entity

import (
	"fmt"
	"math/big"
	"strings"

	errs "github.com/amirhossein-jamali/voting-escrow/internal/domain/error"
)

// Token amounts are integers of base units (e.g. 10^-18 of a whole token).
// They routinely exceed 64 bits, so they are carried as *big.Int.

// MaxAmountDigits bounds the decimal length of an amount; numeric(78,0) holds any uint256
const MaxAmountDigits = 78

// ParseTokenAmount parses a decimal string of base units.
// Leading/trailing whitespace is ignored; signs, decimal points and exponents are rejected.
// Zero is accepted here; callers decide whether zero is meaningful.
func ParseTokenAmount(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return nil, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}

	if len(amount) > MaxAmountDigits {
		return nil, fmt.Errorf("%w: more than %d digits", errs.ErrInvalidAmount, MaxAmountDigits)
	}

	for _, r := range amount {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q is not an integer of base units", errs.ErrInvalidAmount, amount)
		}
	}

	value, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, amount)
	}
	return value, nil
}

// ParsePositiveTokenAmount parses an amount that must be strictly greater than zero
func ParsePositiveTokenAmount(amount string) (*big.Int, error) {
	value, err := ParseTokenAmount(amount)
	if err != nil {
		return nil, err
	}
	if value.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	return value, nil
}

// FormatTokenAmount renders an amount as a decimal string; nil renders as "0"
func FormatTokenAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}

// cloneAmount returns an independent copy so entities never share big.Int storage
func cloneAmount(amount *big.Int) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(amount)
}
