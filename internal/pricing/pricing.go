// Package pricing computes catering order prices. The rule is a flat 10%
// discount whenever the order covers more than five guests.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// DiscountThreshold is the guest count above which the group discount applies.
	DiscountThreshold = 5
	// DiscountPercent is the group discount applied past the threshold.
	DiscountPercent = 10
)

var discountMultiplier = decimal.NewFromFloat(0.9)

// Quote is the priced result for one order.
type Quote struct {
	UnitPrice       decimal.Decimal
	Guests          int
	DiscountPercent int
	Total           decimal.Decimal
}

// Compute prices an order from the menu's per-person price and the guest
// count. It is pure and total: no error conditions, no side effects.
// Totals are rounded to cents, half away from zero.
func Compute(unitPrice decimal.Decimal, guests int) Quote {
	q := Quote{
		UnitPrice: unitPrice,
		Guests:    guests,
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(guests)))
	if guests > DiscountThreshold {
		q.DiscountPercent = DiscountPercent
		total = total.Mul(discountMultiplier)
	}
	q.Total = total.Round(2)

	return q
}

// FormatDiscount renders a discount percentage as "N%".
func FormatDiscount(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// FormatEuros renders an amount as "X.XX €".
func FormatEuros(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " €"
}
