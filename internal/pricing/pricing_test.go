package pricing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNoDiscountUpToThreshold(t *testing.T) {
	prices := []string{"12.50", "50.00", "80.00", "19.99"}

	for _, p := range prices {
		unit, err := decimal.NewFromString(p)
		require.NoError(t, err)

		for guests := 1; guests <= 5; guests++ {
			q := Compute(unit, guests)
			assert.Equal(t, 0, q.DiscountPercent, "price %s, %d guests", p, guests)
			expected := unit.Mul(decimal.NewFromInt(int64(guests))).Round(2)
			assert.True(t, q.Total.Equal(expected),
				"price %s, %d guests: got %s, want %s", p, guests, q.Total, expected)
		}
	}
}

func TestComputeDiscountAboveThreshold(t *testing.T) {
	unit := decimal.RequireFromString("33.30")

	for guests := 6; guests <= 30; guests++ {
		q := Compute(unit, guests)
		assert.Equal(t, 10, q.DiscountPercent)
		expected := unit.Mul(decimal.NewFromInt(int64(guests))).
			Mul(decimal.RequireFromString("0.9")).Round(2)
		assert.True(t, q.Total.Equal(expected), "%d guests: got %s, want %s", guests, q.Total, expected)
	}
}

func TestComputeThresholdBoundary(t *testing.T) {
	unit := decimal.RequireFromString("50.00")

	at := Compute(unit, 5)
	assert.Equal(t, 0, at.DiscountPercent)
	assert.True(t, at.Total.Equal(decimal.RequireFromString("250.00")))

	above := Compute(unit, 6)
	assert.Equal(t, 10, above.DiscountPercent)
	assert.True(t, above.Total.Equal(decimal.RequireFromString("270.00")))
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		unitPrice    string
		guests       int
		wantDiscount string
		wantTotal    string
	}{
		{"50.00", 6, "10%", "270.00 €"},
		{"80.00", 4, "0%", "320.00 €"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_x%d", tt.unitPrice, tt.guests), func(t *testing.T) {
			q := Compute(decimal.RequireFromString(tt.unitPrice), tt.guests)
			assert.Equal(t, tt.wantDiscount, FormatDiscount(q.DiscountPercent))
			assert.Equal(t, tt.wantTotal, FormatEuros(q.Total))
		})
	}
}

// The discounted total must never decrease when a guest is added, and must
// stay at or above 90% of the undiscounted linear price.
func TestComputeMonotonicAndFloor(t *testing.T) {
	unit := decimal.RequireFromString("41.75")
	floor := decimal.RequireFromString("0.9")

	prev := decimal.Zero
	for guests := 1; guests <= 50; guests++ {
		q := Compute(unit, guests)
		assert.True(t, q.Total.GreaterThanOrEqual(prev),
			"total decreased at %d guests: %s < %s", guests, q.Total, prev)

		linear := unit.Mul(decimal.NewFromInt(int64(guests)))
		minAllowed := linear.Mul(floor).Round(2)
		assert.True(t, q.Total.GreaterThanOrEqual(minAllowed),
			"total below 90%% floor at %d guests", guests)

		prev = q.Total
	}
}

// Sub-cent results round half away from zero.
func TestComputeRounding(t *testing.T) {
	// 10.01 * 7 * 0.9 = 63.063 → 63.06
	q := Compute(decimal.RequireFromString("10.01"), 7)
	assert.Equal(t, "63.06", q.Total.StringFixed(2))

	// 10.25 * 7 * 0.9 = 64.575 → 64.58 (half rounds up)
	q = Compute(decimal.RequireFromString("10.25"), 7)
	assert.Equal(t, "64.58", q.Total.StringFixed(2))
}

func TestFormatEuros(t *testing.T) {
	assert.Equal(t, "270.00 €", FormatEuros(decimal.RequireFromString("270")))
	assert.Equal(t, "19.90 €", FormatEuros(decimal.RequireFromString("19.9")))
}
