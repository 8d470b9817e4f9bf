package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ministore/storefront/checkout"
	"github.com/ministore/storefront/dto"
	"github.com/ministore/storefront/models"
	"github.com/ministore/storefront/store"
)

func GetVouchers(vouchers store.VoucherStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := vouchers.ListVouchers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vouchers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"vouchers": list,
		})
	}
}

// ValidateVoucher checks a code without consuming it. A missing code is the
// only client error; every other outcome is a 200 with a valid flag so the
// order form can keep going.
func ValidateVoucher(validator *checkout.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ValidateVoucherDTO
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Code) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Voucher code is required"})
			return
		}

		voucher, err := validator.Validate(c.Request.Context(), body.Code)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"valid":   false,
				"message": rejectionMessage(err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"valid":   true,
			"voucher": voucher,
		})
	}
}

func AddVoucher(vouchers store.VoucherStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateVoucherDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Vouchers are created active with a fresh usage counter.
		voucher := models.Voucher{
			ID:          fmt.Sprintf("%d", time.Now().UnixMilli()),
			Code:        strings.ToUpper(strings.TrimSpace(body.Code)),
			Type:        models.DiscountType(body.Type),
			Discount:    body.Discount,
			Description: body.Description,
			Active:      true,
			UsageLimit:  body.UsageLimit,
			UsageCount:  0,
		}

		if err := vouchers.CreateVoucher(c.Request.Context(), voucher); err != nil {
			log.Error("voucher not persisted", zap.String("id", voucher.ID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"voucher": voucher,
		})
	}
}

func UpdateVoucher(vouchers store.VoucherStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateVoucherDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		voucher := models.Voucher{
			ID:          body.ID,
			Code:        strings.ToUpper(strings.TrimSpace(body.Code)),
			Type:        models.DiscountType(body.Type),
			Discount:    body.Discount,
			Description: body.Description,
			Active:      body.Active,
			UsageLimit:  body.UsageLimit,
			UsageCount:  body.UsageCount,
		}

		if err := vouchers.UpdateVoucher(c.Request.Context(), voucher); err != nil {
			log.Error("voucher update not persisted", zap.String("id", voucher.ID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"voucher": voucher,
		})
	}
}

func DeleteVoucher(vouchers store.VoucherStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
			return
		}

		if err := vouchers.DeleteVoucher(c.Request.Context(), id); err != nil {
			log.Error("voucher delete not persisted", zap.String("id", id), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Voucher deleted",
		})
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, checkout.ErrUsageExhausted):
		return "Voucher usage limit reached"
	case errors.Is(err, checkout.ErrInvalidCode), errors.Is(err, checkout.ErrInvalidDiscount):
		return "Invalid voucher code"
	default:
		return "Failed to validate voucher"
	}
}
