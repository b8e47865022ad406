package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go-inventory-pos/internal/apperr"
	"go-inventory-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:database_test_%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedDefaultAdmin(t *testing.T) {
	db := newTestDB(t)

	if err := SeedDefaultAdmin(db); err != nil {
		t.Fatalf("SeedDefaultAdmin: %v", err)
	}

	var admin models.User
	if err := db.Where("access_type = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		t.Fatalf("no admin seeded: %v", err)
	}
	if admin.Name != "Admin" {
		t.Errorf("admin name = %q, want Admin", admin.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(DefaultAdminPassword)); err != nil {
		t.Error("seeded admin password does not verify against the documented default")
	}

	// Idempotent on repeated startup.
	if err := SeedDefaultAdmin(db); err != nil {
		t.Fatalf("second SeedDefaultAdmin: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Where("access_type = ?", models.RoleAdmin).Count(&count)
	if count != 1 {
		t.Errorf("admin count = %d, want 1", count)
	}
}

func TestSeedDefaultAdminSkipsWhenAdminExists(t *testing.T) {
	db := newTestDB(t)

	existing := models.User{Name: "Boss", AccessType: models.RoleAdmin, PasswordHash: "x"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatal(err)
	}

	if err := SeedDefaultAdmin(db); err != nil {
		t.Fatal(err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1 (no well-known admin next to a real one)", count)
	}
}

func TestGetEmployeeStats(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "Ravi", AccessType: models.RoleEmployee, PasswordHash: "x", Sales: 212.4}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	bills := []models.Bill{
		{Time: time.Now(), EmployeeID: user.ID, Cost: 106.2, ProductName: "A", TotalItems: 1, TotalProfit: 40},
		{Time: time.Now(), EmployeeID: user.ID, Cost: 106.2, ProductName: "B", TotalItems: 1, TotalProfit: 40},
		{Time: time.Now(), EmployeeID: 999, Cost: 50, ProductName: "C", TotalItems: 1, TotalProfit: 10},
	}
	if err := db.Create(&bills).Error; err != nil {
		t.Fatal(err)
	}

	stats, err := GetEmployeeStats(db, user.ID)
	if err != nil {
		t.Fatalf("GetEmployeeStats: %v", err)
	}
	if stats.Sales != 212.4 {
		t.Errorf("Sales = %v, want 212.4", stats.Sales)
	}
	if stats.TotalProfit != 80 {
		t.Errorf("TotalProfit = %v, want 80 (other users' bills excluded)", stats.TotalProfit)
	}
}

func TestGetEmployeeStatsNoBills(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "Ravi", AccessType: models.RoleEmployee, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	stats, err := GetEmployeeStats(db, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Sales != 0 || stats.TotalProfit != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}

func TestGetEmployeeStatsUnknownUser(t *testing.T) {
	db := newTestDB(t)

	if _, err := GetEmployeeStats(db, 42); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetTeamSalesOnlyEmployees(t *testing.T) {
	db := newTestDB(t)

	users := []models.User{
		{Name: "Zara", AccessType: models.RoleEmployee, PasswordHash: "x", Sales: 10},
		{Name: "Amit", AccessType: models.RoleEmployee, PasswordHash: "x", Sales: 20},
		{Name: "Meena", AccessType: models.RoleManager, PasswordHash: "x", Sales: 99},
		{Name: "Root", AccessType: models.RoleAdmin, PasswordHash: "x"},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatal(err)
	}

	team, err := GetTeamSales(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(team) != 2 {
		t.Fatalf("team size = %d, want 2", len(team))
	}
	// Ordered by name.
	if team[0].Name != "Amit" || team[1].Name != "Zara" {
		t.Errorf("team order = %s, %s; want Amit, Zara", team[0].Name, team[1].Name)
	}
}

func TestGetSalesReport(t *testing.T) {
	db := newTestDB(t)

	now := time.Now()
	bills := []models.Bill{
		{Time: now.Add(-2 * time.Hour), EmployeeID: 1, Cost: 100, ProductName: "Charger", TotalItems: 2, TotalProfit: 30},
		{Time: now.Add(-1 * time.Hour), EmployeeID: 1, Cost: 60, ProductName: "Notebook", TotalItems: 4, TotalProfit: 24},
		{Time: now, EmployeeID: 2, Cost: 50, ProductName: "Charger", TotalItems: 1, TotalProfit: 15},
	}
	if err := db.Create(&bills).Error; err != nil {
		t.Fatal(err)
	}

	report, err := GetSalesReport(db)
	if err != nil {
		t.Fatal(err)
	}

	if report.TotalRevenue != 210 {
		t.Errorf("TotalRevenue = %v, want 210", report.TotalRevenue)
	}
	if report.TotalBills != 3 {
		t.Errorf("TotalBills = %d, want 3", report.TotalBills)
	}
	if len(report.TopSelling) != 2 {
		t.Fatalf("TopSelling size = %d, want 2", len(report.TopSelling))
	}
	if report.TopSelling[0].ProductName != "Notebook" || report.TopSelling[0].Sold != 4 {
		t.Errorf("top seller = %+v, want Notebook with 4 sold", report.TopSelling[0])
	}
	if len(report.RecentBills) != 3 {
		t.Fatalf("RecentBills size = %d, want 3", len(report.RecentBills))
	}
	// Newest first.
	if report.RecentBills[0].Cost != 50 {
		t.Errorf("most recent bill cost = %v, want 50", report.RecentBills[0].Cost)
	}
}

func TestGetSalesReportEmptyLedger(t *testing.T) {
	db := newTestDB(t)

	report, err := GetSalesReport(db)
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalRevenue != 0 || report.TotalBills != 0 {
		t.Errorf("empty ledger report = %+v, want zeros", report)
	}
}
