package models

import "github.com/shopspring/decimal"

type DiscountType string

const (
	// DiscountPercentage takes a percentage off the base price.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed amount off the base price, floored at zero.
	DiscountFixed DiscountType = "fixed"
	// DiscountShipping waives the shipping fee and leaves the price untouched.
	DiscountShipping DiscountType = "shipping"
)

type Voucher struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Type        DiscountType    `json:"type"`
	Discount    decimal.Decimal `json:"discount"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	UsageLimit  int             `json:"usageLimit"`
	UsageCount  int             `json:"usageCount"`
}
