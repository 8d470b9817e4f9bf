package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ministore/storefront/checkout"
	"github.com/ministore/storefront/mailer"
	"github.com/ministore/storefront/store"
)

func orderRouter(m *store.Memory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	validator := checkout.NewValidator(m)
	// No SMTP host configured: sends are skipped, which is exactly the
	// offline behavior the storefront ships with.
	notifier := mailer.New(mailer.Config{}, log)
	svc := checkout.NewService(m, validator, notifier, log)

	r := gin.New()
	r.POST("/orders", PlaceOrder(svc))
	r.GET("/admin/orders", GetOrders(m))
	r.POST("/vouchers/validate", ValidateVoucher(validator))
	return r
}

func orderBody(overrides gin.H) gin.H {
	body := gin.H{
		"name":          "Jamie Tran",
		"email":         "jamie@example.com",
		"phone":         "0901234567",
		"address":       "12 Elm Street",
		"productId":     "1",
		"productName":   "Premium Wireless Headphones",
		"originalPrice": 300000,
		"orderDate":     "2026-08-30T10:00:00Z",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func TestPlaceOrder_EndToEnd(t *testing.T) {
	m := store.NewMemory()
	r := orderRouter(m)

	w := postJSON(t, r, "/orders", orderBody(gin.H{"voucherCode": "WELCOME10"}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.OrderID, "ORD-")

	orders, err := m.ListOrders(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "270000", orders[0].FinalPrice.String())
	assert.Equal(t, "WELCOME10", orders[0].VoucherCode)
}

func TestPlaceOrder_MissingEmail(t *testing.T) {
	m := store.NewMemory()
	r := orderRouter(m)

	w := postJSON(t, r, "/orders", orderBody(gin.H{"email": ""}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")

	orders, err := m.ListOrders(t.Context())
	require.NoError(t, err)
	assert.Empty(t, orders, "rejected orders leave no trace")
}

func TestGetOrders_NewestFirst(t *testing.T) {
	m := store.NewMemory()
	r := orderRouter(m)

	for _, date := range []string{"2026-08-28T09:00:00Z", "2026-08-30T09:00:00Z", "2026-08-29T09:00:00Z"} {
		w := postJSON(t, r, "/orders", orderBody(gin.H{"orderDate": date}))
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []struct {
			OrderDate string `json:"orderDate"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, "2026-08-30T09:00:00Z", resp.Orders[0].OrderDate)
	assert.Equal(t, "2026-08-28T09:00:00Z", resp.Orders[2].OrderDate)
}

func TestValidateVoucherEndpoint(t *testing.T) {
	m := store.NewMemory()
	r := orderRouter(m)

	w := postJSON(t, r, "/vouchers/validate", gin.H{"code": "save20"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), "SAVE20")

	w = postJSON(t, r, "/vouchers/validate", gin.H{"code": "BOGUS"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
	assert.Contains(t, w.Body.String(), "Invalid voucher code")

	w = postJSON(t, r, "/vouchers/validate", gin.H{"code": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
