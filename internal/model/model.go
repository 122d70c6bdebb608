// Package model holds the storefront entities shared by the store, the
// services and the HTTP layer.
package model

import "github.com/shopspring/decimal"

func init() {
	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}
