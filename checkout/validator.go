package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ministore/storefront/models"
	"github.com/ministore/storefront/store"
)

var (
	ErrEmptyCode       = errors.New("voucher code is required")
	ErrInvalidCode     = errors.New("invalid voucher code")
	ErrUsageExhausted  = errors.New("voucher usage limit reached")
	ErrInvalidDiscount = errors.New("voucher discount out of range")
)

// Validator resolves a code to an applicable voucher. Validation is
// read-only: it never increments usage, so a usage-limited code is only
// capped at the point of reading the counter.
type Validator struct {
	vouchers store.VoucherStore
}

func NewValidator(vouchers store.VoucherStore) *Validator {
	return &Validator{vouchers: vouchers}
}

// Validate matches the code case-insensitively against active vouchers.
// Inactive vouchers are indistinguishable from unknown codes. A percentage
// voucher whose value lies outside [0, 100] is rejected here rather than
// producing a negative price downstream.
func (v *Validator) Validate(ctx context.Context, code string) (*models.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	vouchers, err := v.vouchers.ListVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}

	for i := range vouchers {
		voucher := vouchers[i]
		if !voucher.Active || !strings.EqualFold(voucher.Code, code) {
			continue
		}
		if voucher.UsageLimit > 0 && voucher.UsageCount >= voucher.UsageLimit {
			return nil, ErrUsageExhausted
		}
		if voucher.Type == models.DiscountPercentage {
			if voucher.Discount.IsNegative() || voucher.Discount.GreaterThan(hundred) {
				return nil, ErrInvalidDiscount
			}
		}
		return &voucher, nil
	}
	return nil, ErrInvalidCode
}
