package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ministore/storefront/models"
)

func TestMemorySeedsDemoCatalog(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	products, err := m.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
	for _, p := range products {
		assert.NotEmpty(t, p.Images, "every demo product carries an image")
		assert.Equal(t, p.Images[0], p.Image)
		assert.True(t, p.SellPrice.LessThanOrEqual(p.Price))
	}

	vouchers, err := m.ListVouchers(ctx)
	require.NoError(t, err)
	require.Len(t, vouchers, 3)

	codes := []string{vouchers[0].Code, vouchers[1].Code, vouchers[2].Code}
	assert.Equal(t, []string{"WELCOME10", "SAVE20", "FREESHIP"}, codes)
	for _, v := range vouchers {
		assert.True(t, v.Active)
		assert.Zero(t, v.UsageCount)
	}
}

func TestMemoryProductCRUD(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	p := models.Product{
		ID:    "99",
		Name:  "Desk Lamp",
		Price: decimal.NewFromInt(35),
	}
	require.NoError(t, m.CreateProduct(ctx, p))

	products, _ := m.ListProducts(ctx)
	assert.Len(t, products, 5)

	p.Name = "Brass Desk Lamp"
	require.NoError(t, m.UpdateProduct(ctx, p))
	products, _ = m.ListProducts(ctx)
	assert.Equal(t, "Brass Desk Lamp", products[4].Name)

	require.NoError(t, m.DeleteProduct(ctx, "99"))
	products, _ = m.ListProducts(ctx)
	assert.Len(t, products, 4)
}

func TestMemoryOrdersAppendOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	orders, err := m.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, m.AppendOrder(ctx, models.Order{OrderID: "ORD-1"}))
	require.NoError(t, m.AppendOrder(ctx, models.Order{OrderID: "ORD-2"}))

	orders, err = m.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
}

func TestMemoryListCopiesAreIsolated(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, _ := m.ListProducts(ctx)
	first[0].Name = "mutated"

	second, _ := m.ListProducts(ctx)
	assert.NotEqual(t, "mutated", second[0].Name)
}
