package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ministore/storefront/checkout"
	"github.com/ministore/storefront/store"
)

// PlaceOrder accepts an order form submission. Field validation is the only
// gate: after it passes, the customer always sees success even if
// notification or persistence fails downstream.
func PlaceOrder(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input checkout.OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		order, err := svc.PlaceOrder(c.Request.Context(), input)
		if err != nil {
			if errors.Is(err, checkout.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"orderId": order.OrderID,
		})
	}
}

// GetOrders lists past orders for the admin dashboard, newest first.
func GetOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		sort.SliceStable(list, func(i, j int) bool {
			return parseOrderDate(list[i].OrderDate).After(parseOrderDate(list[j].OrderDate))
		})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orders":  list,
		})
	}
}

// Order dates are client-supplied strings; try the formats seen in the
// sheet and fall back to the zero time so junk sorts last.
func parseOrderDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "1/2/2006, 3:04:05 PM", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
