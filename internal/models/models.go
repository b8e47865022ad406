package models

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the three known access types.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager || role == RoleAdmin
}

// User - an account that can log in and issue bills
type User struct {
	ID           uint    `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name         string  `gorm:"uniqueIndex;size:255" json:"name"`
	AccessType   string  `gorm:"size:20" json:"access_type"` // 'employee', 'manager', 'admin'
	PasswordHash string  `gorm:"column:password" json:"-"`   // Never return this in JSON
	Sales        float64 `gorm:"default:0" json:"sales"`     // Running total charged across this user's bills
}

// Product - the inventory
type Product struct {
	ID            uint    `gorm:"primaryKey;column:product_id" json:"product_id"`
	Description   string  `json:"description"`
	Category      string  `gorm:"size:255" json:"category"` // Key into the GST rate table
	CostPrice     float64 `json:"cost_price"`
	SellingPrice  float64 `json:"selling_price"`
	Profit        float64 `gorm:"default:0" json:"profit"` // (selling - cost) * number_sold
	NumberInStock int     `json:"number_in_stock"`
	NumberSold    int     `gorm:"default:0" json:"number_sold"`
}

// Bill - one completed sale. Bills are written once and never updated;
// EmployeeID carries no foreign key so deleting a user leaves history intact.
type Bill struct {
	ID          uint      `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	Time        time.Time `json:"time"`
	EmployeeID  uint      `json:"employee_id"`
	Cost        float64   `json:"cost"` // Total charged, GST inclusive
	ProductName string    `gorm:"size:255" json:"product_name"`
	TotalItems  int       `json:"total_items"`
	Discount    float64   `gorm:"default:0" json:"discount"`
	CGST        float64   `gorm:"default:0" json:"cgst"`
	SGST        float64   `gorm:"default:0" json:"sgst"`
	TotalProfit float64   `gorm:"default:0" json:"total_profit"`
}
