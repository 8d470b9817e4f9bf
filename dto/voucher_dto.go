package dto

import "github.com/shopspring/decimal"

type CreateVoucherDTO struct {
	Code        string          `json:"code" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=percentage fixed shipping"`
	Discount    decimal.Decimal `json:"discount"`
	Description string          `json:"description"`
	UsageLimit  int             `json:"usageLimit"`
}

type UpdateVoucherDTO struct {
	ID          string          `json:"id" binding:"required"`
	Code        string          `json:"code" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=percentage fixed shipping"`
	Discount    decimal.Decimal `json:"discount"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	UsageLimit  int             `json:"usageLimit"`
	UsageCount  int             `json:"usageCount"`
}

type ValidateVoucherDTO struct {
	Code string `json:"code"`
}
