// Package checkout holds the voucher validation and order submission flow:
// code lookup, discount computation and the best-effort side effects that
// follow an accepted order.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/ministore/storefront/models"
)

var hundred = decimal.NewFromInt(100)

// ComputeFinalPrice applies a discount to a base price. All arithmetic is
// decimal; totals round-trip exactly between display and persistence.
//
// A shipping voucher waives the shipping fee line, which this system does
// not otherwise charge, so it leaves the price untouched. Unknown types do
// the same.
func ComputeFinalPrice(base decimal.Decimal, discountType models.DiscountType, value decimal.Decimal) decimal.Decimal {
	switch discountType {
	case models.DiscountPercentage:
		return base.Mul(hundred.Sub(value)).Div(hundred)
	case models.DiscountFixed:
		final := base.Sub(value)
		if final.IsNegative() {
			return decimal.Zero
		}
		return final
	default:
		return base
	}
}
