package database

import (
	"errors"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/models"

	"gorm.io/gorm"
)

// EmployeeStats holds one user's personal numbers.
type EmployeeStats struct {
	Sales       float64 `json:"sales"`        // Cumulative total charged
	TotalProfit float64 `json:"total_profit"` // Profit across this user's bills
}

// GetEmployeeStats returns the cumulative sales and bill profit for one user.
func GetEmployeeStats(db *gorm.DB, userID uint) (*EmployeeStats, error) {
	var stats EmployeeStats

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	stats.Sales = user.Sales

	// COALESCE ensures we get 0 instead of NULL when the user has no bills.
	err := db.Model(&models.Bill{}).
		Where("employee_id = ?", userID).
		Select("COALESCE(SUM(total_profit), 0)").
		Scan(&stats.TotalProfit).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// TeamMemberSales is one row of the manager's team view.
type TeamMemberSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// GetTeamSales lists every employee-role user with their cumulative sales.
func GetTeamSales(db *gorm.DB) ([]TeamMemberSales, error) {
	var team []TeamMemberSales
	err := db.Model(&models.User{}).
		Where("access_type = ?", models.RoleEmployee).
		Select("name, sales").
		Order("name").
		Scan(&team).Error
	return team, err
}

// SalesReport aggregates the bills ledger for the reports endpoint.
type SalesReport struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalBills   int64   `json:"total_bills"`
	TopSelling   []struct {
		ProductName string  `json:"product_name"`
		Sold        int     `json:"sold"`
		Revenue     float64 `json:"revenue"`
	} `json:"top_selling"`
	RecentBills []models.Bill `json:"recent_bills"`
}

// GetSalesReport computes all-time revenue, bill count, the five best sellers
// and the ten most recent bills.
func GetSalesReport(db *gorm.DB) (*SalesReport, error) {
	var report SalesReport

	err := db.Model(&models.Bill{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&report.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	if err := db.Model(&models.Bill{}).Count(&report.TotalBills).Error; err != nil {
		return nil, err
	}

	err = db.Model(&models.Bill{}).
		Select("product_name, SUM(total_items) as sold, SUM(cost) as revenue").
		Group("product_name").
		Order("sold desc").
		Limit(5).
		Scan(&report.TopSelling).Error
	if err != nil {
		return nil, err
	}

	err = db.Order("time desc").Limit(10).Find(&report.RecentBills).Error
	if err != nil {
		return nil, err
	}

	return &report, nil
}
