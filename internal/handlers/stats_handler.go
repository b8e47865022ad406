package handlers

import (
	"errors"
	"net/http"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/database"

	"github.com/gin-gonic/gin"
)

// --- GET: Own sales and profit numbers ---
func GetEmployeeStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	stats, err := database.GetEmployeeStats(database.DB, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// --- GET: Every employee's cumulative sales (manager view) ---
func GetTeamSales(c *gin.Context) {
	team, err := database.GetTeamSales(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team sales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": team})
}

// --- GET: Ledger-wide sales report ---
func GetSalesReport(c *gin.Context) {
	report, err := database.GetSalesReport(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
