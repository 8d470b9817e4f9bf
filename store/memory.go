package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ministore/storefront/models"
)

// Memory is the offline adapter. It seeds the fixed demo catalog so the
// storefront works with no backing store configured, and doubles as the test
// double for the checkout flow.
type Memory struct {
	mu       sync.RWMutex
	products []models.Product
	vouchers []models.Voucher
	orders   []models.Order
}

func NewMemory() *Memory {
	return &Memory{
		products: demoProducts(),
		vouchers: demoVouchers(),
	}
}

func (m *Memory) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) CreateProduct(ctx context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, p)
	return nil
}

func (m *Memory) UpdateProduct(ctx context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = p
			return nil
		}
	}
	return nil
}

func (m *Memory) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Memory) ListVouchers(ctx context.Context) ([]models.Voucher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Voucher, len(m.vouchers))
	copy(out, m.vouchers)
	return out, nil
}

func (m *Memory) CreateVoucher(ctx context.Context, v models.Voucher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vouchers = append(m.vouchers, v)
	return nil
}

func (m *Memory) UpdateVoucher(ctx context.Context, v models.Voucher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vouchers {
		if m.vouchers[i].ID == v.ID {
			m.vouchers[i] = v
			return nil
		}
	}
	return nil
}

func (m *Memory) DeleteVoucher(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.vouchers {
		if m.vouchers[i].ID == id {
			m.vouchers = append(m.vouchers[:i], m.vouchers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Memory) AppendOrder(ctx context.Context, o models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	return nil
}

func (m *Memory) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func demoProducts() []models.Product {
	mk := func(id, name, desc, full string, price float64, image, slug string, features []string) models.Product {
		p := decimal.NewFromFloat(price)
		return models.Product{
			ID:              id,
			Name:            name,
			Description:     desc,
			FullDescription: full,
			Price:           p,
			SellPrice:       p,
			Image:           image,
			Images:          []string{image},
			Slug:            slug,
			Features:        features,
		}
	}
	return []models.Product{
		mk("1", "Premium Wireless Headphones",
			"High-quality sound with active noise cancellation",
			"Experience audio like never before with our Premium Wireless Headphones.",
			299.99,
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
			"premium-wireless-headphones",
			[]string{"Active Noise Cancellation", "30-hour battery life", "Premium leather ear cushions"}),
		mk("2", "Smart Watch Pro",
			"Track your fitness and stay connected",
			"Stay connected and healthy with the Smart Watch Pro.",
			399.99,
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
			"smart-watch-pro",
			[]string{"Heart rate monitoring", "GPS tracking", "Water-resistant (50m)"}),
		mk("3", "Minimalist Leather Wallet",
			"Handcrafted genuine leather wallet",
			"Crafted from premium full-grain leather.",
			79.99,
			"https://images.unsplash.com/photo-1627123424574-724758594e93?w=800",
			"minimalist-leather-wallet",
			[]string{"Genuine full-grain leather", "RFID-blocking technology", "Slim design"}),
		mk("4", "Portable Bluetooth Speaker",
			"Waterproof speaker with 20-hour battery life",
			"Take your music anywhere.",
			149.99,
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800",
			"portable-bluetooth-speaker",
			[]string{"IPX7 waterproof rating", "20-hour battery life", "360-degree sound"}),
	}
}

func demoVouchers() []models.Voucher {
	return []models.Voucher{
		{ID: "1", Code: "WELCOME10", Discount: decimal.NewFromInt(10), Type: models.DiscountPercentage, Description: "First-time customers", Active: true, UsageLimit: 100},
		{ID: "2", Code: "SAVE20", Discount: decimal.NewFromInt(20), Type: models.DiscountPercentage, Description: "Orders over $200", Active: true, UsageLimit: 50},
		{ID: "3", Code: "FREESHIP", Discount: decimal.Zero, Type: models.DiscountShipping, Description: "Free shipping", Active: true, UsageLimit: 200},
	}
}
