// Package pricing is the single place subtotal, shipping, and order total
// are computed. The cart view, the checkout view, and the order transaction
// all go through Rule so the numbers cannot drift apart.
package pricing

import "storefront/internal/models"

// Defaults, in minor currency units.
const (
	DefaultFreeShippingThreshold = 75000
	DefaultShippingFee           = 5000
)

// Rule is the flat-rate-threshold shipping rule: shipping is free when the
// subtotal strictly exceeds the threshold, otherwise the flat fee applies.
type Rule struct {
	FreeShippingThreshold int
	ShippingFee           int
}

func DefaultRule() Rule {
	return Rule{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		ShippingFee:           DefaultShippingFee,
	}
}

type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// Subtotal sums price x quantity over all cart lines.
func Subtotal(lines []models.CartLine) int {
	var sum int
	for _, line := range lines {
		sum += line.Product.Price * line.Quantity
	}
	return sum
}

func (r Rule) Shipping(subtotal int) int {
	if subtotal > r.FreeShippingThreshold {
		return 0
	}
	return r.ShippingFee
}

func (r Rule) Totals(lines []models.CartLine) Totals {
	subtotal := Subtotal(lines)
	shipping := r.Shipping(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
