package main

import (
	"log"
	"os"
	"time"

	"go-inventory-pos/internal/auth"
	"go-inventory-pos/internal/database"
	"go-inventory-pos/internal/handlers"
	"go-inventory-pos/internal/middleware"
	"go-inventory-pos/internal/tax"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	// Deployer-edited GST table overrides the built-in defaults.
	if ratesFile := os.Getenv("GST_RATES_FILE"); ratesFile != "" {
		if err := tax.Load(ratesFile); err != nil {
			log.Fatal("Failed to load GST rates file:", err)
		}
	}

	database.Connect()
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/me", handlers.Me)

		// EMPLOYEE AND UP
		api.GET("/products", middleware.RequirePermission(auth.OpViewCatalog), handlers.GetProducts)
		api.POST("/products", middleware.RequirePermission(auth.OpAddProduct), handlers.AddProduct)
		api.POST("/products/:id/restock", middleware.RequirePermission(auth.OpRestock), handlers.Restock)
		api.POST("/bills", middleware.RequirePermission(auth.OpCreateBill), handlers.CreateBill)
		api.GET("/stats", middleware.RequirePermission(auth.OpOwnStats), handlers.GetEmployeeStats)

		// MANAGER AND UP
		api.GET("/team-sales", middleware.RequirePermission(auth.OpTeamSales), handlers.GetTeamSales)
		api.PUT("/products/:id/price", middleware.RequirePermission(auth.OpAdjustPrice), handlers.AdjustPrice)
		api.GET("/reports", middleware.RequirePermission(auth.OpSalesReport), handlers.GetSalesReport)

		// ADMIN ONLY
		admin := api.Group("/admin")
		admin.Use(middleware.RequirePermission(auth.OpManageUsers))
		{
			admin.GET("/users", handlers.GetUsers)
			admin.POST("/users", handlers.AddUser)
			admin.DELETE("/users/:id", handlers.RemoveUser)
			admin.PUT("/users/:id/password", handlers.ResetPassword)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
