// Package store defines the persistence ports the rest of the application
// talks to. Adapters exist for the spreadsheet gateway, MongoDB and an
// in-memory demo catalog; the quirks of each backend stay behind these
// interfaces.
package store

import (
	"context"

	"github.com/ministore/storefront/models"
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type VoucherStore interface {
	ListVouchers(ctx context.Context) ([]models.Voucher, error)
	CreateVoucher(ctx context.Context, v models.Voucher) error
	UpdateVoucher(ctx context.Context, v models.Voucher) error
	DeleteVoucher(ctx context.Context, id string) error
}

type OrderStore interface {
	AppendOrder(ctx context.Context, o models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}
