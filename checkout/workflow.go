package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ministore/storefront/models"
	"github.com/ministore/storefront/store"
)

// ErrMissingFields rejects an order before any side effect runs.
var ErrMissingFields = errors.New("missing required fields")

// Notifier sends the two order emails. Implementations must be safe to call
// concurrently.
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, o models.Order) error
	SendAdminAlert(ctx context.Context, o models.Order) error
}

// OrderInput is the order form as submitted. The voucher is re-validated and
// the final price recomputed server-side; client-supplied totals are never
// trusted.
type OrderInput struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	VoucherCode   string          `json:"voucherCode"`
	OrderDate     string          `json:"orderDate"`
}

type Service struct {
	orders    store.OrderStore
	validator *Validator
	notifier  Notifier
	log       *zap.Logger
}

func NewService(orders store.OrderStore, validator *Validator, notifier Notifier, log *zap.Logger) *Service {
	return &Service{orders: orders, validator: validator, notifier: notifier, log: log}
}

// PlaceOrder runs the submission flow: validate input, apply the voucher,
// price, notify, persist. Once the input is accepted the order always
// succeeds from the customer's point of view; notification and persistence
// failures are logged, never surfaced. There is no retry and no rollback.
func (s *Service) PlaceOrder(ctx context.Context, in OrderInput) (models.Order, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Address) == "" {
		return models.Order{}, ErrMissingFields
	}

	order := models.Order{
		OrderID:       fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		OrderDate:     in.OrderDate,
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		OriginalPrice: in.OriginalPrice,
		FinalPrice:    in.OriginalPrice,
	}

	// A rejected or unknown voucher never aborts the order; it just means no
	// discount.
	if in.VoucherCode != "" {
		voucher, err := s.validator.Validate(ctx, in.VoucherCode)
		if err != nil {
			s.log.Info("voucher not applied",
				zap.String("orderId", order.OrderID),
				zap.String("code", in.VoucherCode),
				zap.Error(err))
		} else {
			order.VoucherCode = voucher.Code
			order.DiscountType = voucher.Type
			order.Discount = voucher.Discount
			order.FinalPrice = ComputeFinalPrice(in.OriginalPrice, voucher.Type, voucher.Discount)
		}
	}

	// Both emails go out concurrently; neither blocks the other and neither
	// failure blocks the order.
	g := new(errgroup.Group)
	g.Go(func() error { return s.notifier.SendCustomerConfirmation(ctx, order) })
	g.Go(func() error { return s.notifier.SendAdminAlert(ctx, order) })
	if err := g.Wait(); err != nil {
		s.log.Warn("order notification failed",
			zap.String("orderId", order.OrderID),
			zap.Error(err))
	}

	if err := s.orders.AppendOrder(ctx, order); err != nil {
		s.log.Error("order not persisted",
			zap.String("orderId", order.OrderID),
			zap.Error(err))
	}

	return order, nil
}
