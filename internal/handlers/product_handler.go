package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go-inventory-pos/internal/database"
	"go-inventory-pos/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// --- GET: List all products ---
func GetProducts(c *gin.Context) {
	var products []models.Product

	if err := database.DB.Order("product_id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

type AddProductRequest struct {
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	CostPrice    float64 `json:"cost_price" binding:"required,gt=0"`
	SellingPrice float64 `json:"selling_price" binding:"required,gt=0"`
	InitialStock int     `json:"initial_stock" binding:"gte=0"`
}

// --- POST: Stock in a new product ---
func AddProduct(c *gin.Context) {
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product := models.Product{
		Description:   req.Description,
		Category:      req.Category,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		NumberInStock: req.InitialStock,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// --- POST: Restock an existing product ---
func Restock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result := database.DB.Model(&models.Product{}).
		Where("product_id = ?", id).
		Update("number_in_stock", gorm.Expr("number_in_stock + ?", req.Quantity))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}

type AdjustPriceRequest struct {
	NewPrice float64 `json:"new_price" binding:"required,gt=0"`
}

// --- PUT: Replace a product's selling price ---
// The new price is taken as-is; selling below cost is allowed (clearance).
func AdjustPrice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req AdjustPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	product.SellingPrice = req.NewPrice
	if err := database.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price updated", "product": product})
}
