package kernel

import (
	"fmt"
	"math"

	"grouporders/internal/pkg/errs"
)

// Price is a value object representing a menu item price or a price total.
// Orders snapshot the catalog price at creation time, so a Price never
// changes once attached to an order.
//
// Price is immutable; arithmetic returns new values.
type Price struct {
	amount float64
}

// NewPrice creates a Price from a non-negative amount.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not a finite number", amount))
	}
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", amount))
	}
	return Price{amount: amount}, nil
}

// Amount returns the price as a float64.
func (p Price) Amount() float64 {
	return p.amount
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount + other.amount}
}

// IsEqual compares two prices for equality.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String formats the price with two decimal places, matching the report output.
func (p Price) String() string {
	return fmt.Sprintf("%.2f", p.amount)
}
