package models

import "github.com/shopspring/decimal"

// Prices travel as JSON numbers, matching the historical API contract.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
