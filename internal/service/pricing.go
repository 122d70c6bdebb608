package service

import (
	"github.com/shopspring/decimal"

	"storefront/internal/dto"
)

var (
	// FreeShippingThreshold is the smallest order total that ships for free.
	FreeShippingThreshold = decimal.NewFromInt(50)
	ShippingFee           = decimal.RequireFromString("9.99")
)

// Shipping returns the shipping charge for an order of the given subtotal.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFee
}

func QuoteShipping(subtotal decimal.Decimal) dto.ShippingQuote {
	shipping := Shipping(subtotal)
	return dto.ShippingQuote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
