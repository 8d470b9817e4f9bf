package models

import "github.com/shopspring/decimal"

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Price           decimal.Decimal `json:"price"`
	SellPrice       decimal.Decimal `json:"sellPrice"`
	Image           string          `json:"image"`
	Images          []string        `json:"images"`
	Slug            string          `json:"slug"`
	Features        []string        `json:"features"`
}
