package dto

import "github.com/shopspring/decimal"

type CreateProductDTO struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	SellPrice       decimal.Decimal `json:"sellPrice"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"`
	Features        []string        `json:"features"`
}

// UpdateProductDTO is a full-record replace; there are no partial-field
// update semantics against the sheet.
type UpdateProductDTO struct {
	ID              string          `json:"id" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Price           decimal.Decimal `json:"price"`
	SellPrice       decimal.Decimal `json:"sellPrice"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"`
	Slug            string          `json:"slug"`
	Features        []string        `json:"features"`
}
