package models

import "github.com/shopspring/decimal"

// Order is an append-only record; nothing reads it back except the admin
// listing, so later voucher edits never touch past orders.
type Order struct {
	OrderID       string          `json:"orderId"`
	OrderDate     string          `json:"orderDate"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Discount      decimal.Decimal `json:"discount"`
	DiscountType  DiscountType    `json:"discountType"`
	VoucherCode   string          `json:"voucherCode"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
}
