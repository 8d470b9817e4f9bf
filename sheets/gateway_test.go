package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ministore/storefront/models"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) (*Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	gw := NewGateway(srv.URL, zap.NewNop())
	return NewStore(gw, zap.NewNop(), "Products", "Vouchers", "Orders"), srv
}

func TestGatewayRead_QueryShape(t *testing.T) {
	var got url.Values
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[{"id":"1","name":"Widget","Price":"19.99"}]}`))
	})

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Products", got.Get("path"))
	assert.Equal(t, "read", got.Get("action"))

	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.True(t, decimal.RequireFromString("19.99").Equal(products[0].Price))
}

func TestGatewayWrite_FlattensRowIntoQuery(t *testing.T) {
	var got url.Values
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte("ok"))
	})

	order := models.Order{
		OrderID:       "ORD-1700000000000",
		OrderDate:     "2026-08-30T10:00:00Z",
		Name:          "Jamie Tran",
		Email:         "jamie@example.com",
		Phone:         "0901234567",
		Address:       "12 Elm Street",
		ProductID:     "1",
		ProductName:   "Widget",
		OriginalPrice: decimal.NewFromInt(300000),
		FinalPrice:    decimal.NewFromInt(270000),
	}
	require.NoError(t, store.AppendOrder(context.Background(), order))

	assert.Equal(t, "Orders", got.Get("path"))
	assert.Equal(t, "write", got.Get("action"))
	assert.Equal(t, "ORD-1700000000000", got.Get("OrderID"))
	assert.Equal(t, "Jamie Tran", got.Get("CustomerName"))
	assert.Equal(t, "300000", got.Get("OriginalPrice"))
	assert.Equal(t, "270000", got.Get("FinalPrice"))
	// No voucher used: the sheet records the literal "None".
	assert.Equal(t, "None", got.Get("VoucherCode"))
}

func TestGatewayDelete(t *testing.T) {
	var got url.Values
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte("ok"))
	})

	require.NoError(t, store.DeleteVoucher(context.Background(), "42"))
	assert.Equal(t, "Vouchers", got.Get("path"))
	assert.Equal(t, "delete", got.Get("action"))
	assert.Equal(t, "42", got.Get("id"))
}

func TestListProducts_BackendDownReturnsEmpty(t *testing.T) {
	store, srv := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err, "an unreachable backend must not surface as an error on reads")
	assert.Empty(t, products)
}

func TestListProducts_MalformedResponseReturnsEmpty(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWrite_BackendErrorSurfaces(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := store.DeleteProduct(context.Background(), "1")
	assert.Error(t, err, "write failures are the caller's to log and swallow")
}

func TestListVouchers_RowParsing(t *testing.T) {
	store, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"1","code":"WELCOME10","type":"percentage","discount":"10","active":"true","usageLimit":"100","usageCount":"3"},
			{"ID":"2","Code":"SAVE20","Type":"percentage","Discount":"20","Active":"false"}
		]}`))
	})

	vouchers, err := store.ListVouchers(context.Background())
	require.NoError(t, err)
	require.Len(t, vouchers, 2)

	assert.Equal(t, "WELCOME10", vouchers[0].Code)
	assert.True(t, vouchers[0].Active)
	assert.Equal(t, 3, vouchers[0].UsageCount)

	assert.Equal(t, "SAVE20", vouchers[1].Code)
	assert.False(t, vouchers[1].Active)
}
