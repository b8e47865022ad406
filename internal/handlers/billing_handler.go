package handlers

import (
	"errors"
	"net/http"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/billing"
	"go-inventory-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// BillRequest is one sale: a single product, a quantity, an optional discount.
type BillRequest struct {
	ProductID       uint    `json:"product_id" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,gt=0"`
	DiscountPercent float64 `json:"discount" binding:"gte=0,lte=100"`
}

// --- POST: Create a bill ---
func CreateBill(c *gin.Context) {
	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	userID := c.MustGet("userID").(uint)

	bill, err := billing.CreateBill(database.DB, req.ProductID, req.Quantity, req.DiscountPercent, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperr.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
		case errors.Is(err, apperr.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		default:
			// Anything else is the store failing mid-request; the
			// transaction already rolled back.
			c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.ErrStoreUnavailable.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bill created successfully",
		"bill":    bill,
	})
}
