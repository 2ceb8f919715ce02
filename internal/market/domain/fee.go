// Package domain holds the marketplace pricing and listing state rules.
package domain

import (
	"fmt"

	apperrors "github.com/openmint/marketplace/internal/errors"
)

// FeeConfig is the immutable fee pair fixed at system construction.
type FeeConfig struct {
	// Recipient receives the fee remainder of every sale.
	Recipient string
	// Percent is an integer percentage in [0, 100].
	Percent int
}

// Validate checks the fee percentage bounds. The recipient address is
// validated separately by the identity layer.
func (c FeeConfig) Validate() error {
	if c.Percent < 0 || c.Percent > 100 {
		return apperrors.New(apperrors.CodeFeeConfigInvalid,
			fmt.Sprintf("fee percent %d out of range [0, 100]", c.Percent))
	}
	if c.Recipient == "" {
		return apperrors.New(apperrors.CodeFeeConfigInvalid, "fee recipient is required")
	}
	return nil
}

// FeeAmount returns the fee remainder for a listing price.
// Integer division truncates toward zero; small prices can carry a zero fee.
func FeeAmount(price int64, feePercent int) int64 {
	return price * int64(feePercent) / 100
}

// TotalPrice returns the amount a buyer must pay: the seller's price plus
// the truncated percentage fee.
func TotalPrice(price int64, feePercent int) int64 {
	return price + FeeAmount(price, feePercent)
}

// ValidatePrice enforces the strictly positive listing price rule.
func ValidatePrice(price int64) error {
	if price <= 0 {
		return apperrors.New(apperrors.CodeListingInvalidPrice, "listing price must be greater than zero")
	}
	return nil
}
