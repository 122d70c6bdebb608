package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a decimal(10,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

var ErrInvalidAmount = errors.New("amount must be between 0 and 99999999.99 with at most 2 decimal places")

// CheckAmount reports whether d is a storable, non-negative amount of money.
func CheckAmount(d decimal.Decimal) error {
	// bound the exponent and digits first: comparing or rounding 1e50000000
	// materializes every digit
	if d.Exponent() > 8 || d.Exponent() < -20 || d.NumDigits() > 30 {
		return ErrInvalidAmount
	}
	if d.IsNegative() || d.GreaterThan(MaxAmount) || !d.Equal(d.Round(2)) {
		return ErrInvalidAmount
	}
	return nil
}
