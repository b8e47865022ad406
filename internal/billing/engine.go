// Package billing turns a sale request into an immutable bill plus the stock,
// profit and salesperson updates that go with it, all inside one transaction.
package billing

import (
	"errors"
	"time"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/models"
	"go-inventory-pos/internal/tax"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Breakdown is the arithmetic of one sale before it touches the store.
type Breakdown struct {
	Subtotal    float64 // After discount, before GST
	CGSTAmount  float64
	SGSTAmount  float64
	Total       float64 // Charged to the customer, GST inclusive
	ProfitDelta float64 // (selling - cost) * quantity
}

// Compute applies the discount and splits the GST rate evenly into CGST and
// SGST. gstRate is a fraction (0.18 for 18%).
func Compute(sellingPrice, costPrice float64, quantity int, discountPercent, gstRate float64) Breakdown {
	halfRate := gstRate / 2.0

	subtotal := sellingPrice * float64(quantity) * (1 - discountPercent/100.0)
	cgst := subtotal * halfRate
	sgst := subtotal * halfRate

	return Breakdown{
		Subtotal:    subtotal,
		CGSTAmount:  cgst,
		SGSTAmount:  sgst,
		Total:       subtotal + cgst + sgst,
		ProfitDelta: (sellingPrice - costPrice) * float64(quantity),
	}
}

// CreateBill records one sale: it inserts the bill, deducts stock, bumps the
// sold count, recomputes the product's cumulative profit and credits the
// acting user's sales total. All of it commits or none of it does.
func CreateBill(db *gorm.DB, productID uint, quantity int, discountPercent float64, actingUserID uint) (*models.Bill, error) {
	if quantity <= 0 {
		return nil, apperr.ErrValidation
	}

	var bill models.Bill

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product

		// Lock the row so concurrent bills cannot oversell.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return err
		}

		if quantity > product.NumberInStock {
			return apperr.ErrInsufficientStock
		}

		b := Compute(product.SellingPrice, product.CostPrice, quantity, discountPercent, tax.RateFor(product.Category))

		bill = models.Bill{
			Time:        time.Now(),
			EmployeeID:  actingUserID,
			Cost:        b.Total,
			ProductName: product.Description,
			TotalItems:  quantity,
			Discount:    discountPercent,
			CGST:        b.CGSTAmount,
			SGST:        b.SGSTAmount,
			TotalProfit: b.ProfitDelta,
		}
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}

		product.NumberInStock -= quantity
		product.NumberSold += quantity
		product.Profit = (product.SellingPrice - product.CostPrice) * float64(product.NumberSold)
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		result := tx.Model(&models.User{}).
			Where("user_id = ?", actingUserID).
			Update("sales", gorm.Expr("sales + ?", b.Total))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &bill, nil
}
