package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"go-inventory-pos/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DefaultAdminPassword is provisioned for the seeded admin account and must be
// changed by the deployer.
const DefaultAdminPassword = "admin123"

func Connect() {
	// Credentials come from the environment (.env in dev).
	dsn := os.Getenv("DB_DSN")

	if dsn == "" {
		log.Fatal("❌ Error: DB_DSN not found in .env file. Please configure your database.")
	}

	// Create the schema first if the deployer asked for it. The DSN in
	// DB_DSN already names the database, so this uses a server-level DSN.
	if serverDSN := os.Getenv("DB_SERVER_DSN"); serverDSN != "" {
		createDatabase(serverDSN, os.Getenv("DB_NAME"))
	}

	var err error

	// Connect with GORM (wait for the DB to be ready).
	for i := 0; i < 5; i++ {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatal("Failed to connect to database after 5 attempts:", err)
	}

	log.Println("✅ Successfully connected to MySQL!")

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to sync database schema:", err)
	}

	log.Println("✅ Database Schema Synced!")

	if err := SeedDefaultAdmin(DB); err != nil {
		log.Fatal("Failed to provision default admin:", err)
	}
}

// createDatabase makes startup idempotent on a fresh MySQL server.
func createDatabase(serverDSN, name string) {
	if name == "" {
		name = "inventory_management"
	}

	srv, err := gorm.Open(mysql.Open(serverDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Warning: could not reach server to create database %q: %v", name, err)
		return
	}

	if err := srv.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)).Error; err != nil {
		log.Printf("Warning: CREATE DATABASE %q failed: %v", name, err)
	}

	if sqlDB, err := srv.DB(); err == nil {
		sqlDB.Close()
	}
}

// Migrate creates or updates the three tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Bill{},
	)
}

// SeedDefaultAdmin inserts the well-known Admin account when no admin exists,
// so a fresh deployment can always log in.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("access_type = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		AccessType:   models.RoleAdmin,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("⚠️ WARNING: Default admin 'Admin' created with the well-known password. Change it immediately!")
	return nil
}
