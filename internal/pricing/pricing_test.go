package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
)

func line(price, quantity int) models.CartLine {
	l := models.CartLine{Product: models.Product{Price: price}}
	l.Quantity = quantity
	return l
}

func TestShippingThreshold(t *testing.T) {
	rule := DefaultRule()

	tests := []struct {
		name     string
		subtotal int
		want     int
	}{
		{"zero subtotal pays the fee", 0, DefaultShippingFee},
		{"below threshold pays the fee", 50000, DefaultShippingFee},
		{"exactly at threshold still pays", DefaultFreeShippingThreshold, DefaultShippingFee},
		{"one over threshold ships free", DefaultFreeShippingThreshold + 1, 0},
		{"far over threshold ships free", 1000000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Shipping(tt.subtotal))
		})
	}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 0, Subtotal(nil))

	lines := []models.CartLine{
		line(20000, 2),
		line(60000, 1),
	}
	assert.Equal(t, 100000, Subtotal(lines))
}

func TestTotalsAlwaysSubtotalPlusShipping(t *testing.T) {
	rule := Rule{FreeShippingThreshold: 75000, ShippingFee: 5000}

	for _, lines := range [][]models.CartLine{
		nil,
		{line(5000, 1)},
		{line(20000, 2), line(60000, 1)},
		{line(75000, 1)},
	} {
		totals := rule.Totals(lines)
		assert.Equal(t, totals.Subtotal+totals.Shipping, totals.Total)
		assert.Equal(t, rule.Shipping(totals.Subtotal), totals.Shipping)
	}
}

// The checkout scenario: two shirts at 20,000 plus a dress at 60,000 clear
// the 75,000 threshold, so the order total equals the bare subtotal.
func TestCheckoutScenarioTotals(t *testing.T) {
	rule := DefaultRule()

	lines := []models.CartLine{
		line(20000, 2),
		line(60000, 1),
	}

	totals := rule.Totals(lines)
	assert.Equal(t, 100000, totals.Subtotal)
	assert.Equal(t, 0, totals.Shipping)
	assert.Equal(t, 100000, totals.Total)
}

func TestTotalsBelowThresholdAddsFee(t *testing.T) {
	rule := DefaultRule()

	totals := rule.Totals([]models.CartLine{line(20000, 2)})
	assert.Equal(t, 40000, totals.Subtotal)
	assert.Equal(t, DefaultShippingFee, totals.Shipping)
	assert.Equal(t, 45000, totals.Total)
}
