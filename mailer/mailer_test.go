package mailer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ministore/storefront/models"
)

func sampleOrder() models.Order {
	return models.Order{
		OrderID:       "ORD-1700000000000",
		OrderDate:     "2026-08-30T10:00:00Z",
		Name:          "Jamie Tran",
		Email:         "jamie@example.com",
		Phone:         "0901234567",
		Address:       "12 Elm Street",
		ProductID:     "1",
		ProductName:   "Premium Wireless Headphones",
		OriginalPrice: decimal.NewFromInt(300000),
		Discount:      decimal.NewFromInt(10),
		DiscountType:  models.DiscountPercentage,
		VoucherCode:   "WELCOME10",
		FinalPrice:    decimal.NewFromInt(270000),
	}
}

func TestCustomerTemplate(t *testing.T) {
	body, err := render(customerTmpl, sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, body, "Jamie Tran")
	assert.Contains(t, body, "ORD-1700000000000")
	assert.Contains(t, body, "WELCOME10")
	assert.Contains(t, body, "270000")
	// The savings line shows the absolute amount taken off.
	assert.Contains(t, body, "-30000")
}

func TestCustomerTemplate_NoVoucherHidesDiscountLine(t *testing.T) {
	o := sampleOrder()
	o.VoucherCode = ""
	o.Discount = decimal.Zero
	o.FinalPrice = o.OriginalPrice

	body, err := render(customerTmpl, o)
	require.NoError(t, err)
	assert.NotContains(t, body, "Discount")
}

func TestAdminTemplate(t *testing.T) {
	body, err := render(adminTmpl, sampleOrder())
	require.NoError(t, err)

	assert.Contains(t, body, "New Order Received")
	assert.Contains(t, body, "Premium Wireless Headphones")
	assert.Contains(t, body, "jamie@example.com")
}

func TestSend_UnconfiguredHostIsNoop(t *testing.T) {
	m := New(Config{}, zap.NewNop())
	err := m.SendCustomerConfirmation(context.Background(), sampleOrder())
	assert.NoError(t, err, "offline mode must not fail order notifications")
}
