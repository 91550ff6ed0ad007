package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Aryan-Mangla/FastFood-business-management-system/config"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/checkout"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/handler"
	"github.com/Aryan-Mangla/FastFood-business-management-system/internal/store"
	"github.com/Aryan-Mangla/FastFood-business-management-system/pkg/seed"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Create Stores
	inventory := store.NewInventory()
	cart := store.NewCart()
	bills := store.NewBills()

	// 3. Seed Sample Data
	if config.AppConfig.Inventory.SeedSampleData {
		seed.Apply(inventory, bills)
	}

	checkoutSvc := checkout.NewService(inventory, cart, bills)

	// 4. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	inventoryHandler := &handler.InventoryHandler{
		Inventory:         inventory,
		LowStockThreshold: config.AppConfig.Inventory.LowStockThreshold,
	}
	invRoutes := r.Group("/api/v1/inventory")
	{
		invRoutes.GET("/products", inventoryHandler.ListProducts)
		invRoutes.POST("/products", inventoryHandler.CreateProduct)
		invRoutes.PUT("/products/:id", inventoryHandler.UpdateProduct)
		invRoutes.DELETE("/products/:id", inventoryHandler.DeleteProduct)
		invRoutes.POST("/stock", inventoryHandler.AddStock)
		invRoutes.GET("/alerts", inventoryHandler.GetLowStockAlerts)
	}

	cartHandler := &handler.CartHandler{Cart: cart, Inventory: inventory}
	cartRoutes := r.Group("/api/v1/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:id", cartHandler.SetQuantity)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
		cartRoutes.DELETE("", cartHandler.Clear)
	}

	billingHandler := &handler.BillingHandler{Bills: bills, Checkout: checkoutSvc}
	billingRoutes := r.Group("/api/v1/billing")
	{
		billingRoutes.GET("/bills", billingHandler.ListBills)
		billingRoutes.PUT("/bills/:id/status", billingHandler.UpdateBillStatus)
		billingRoutes.GET("/next-bill-no", billingHandler.GetNextBillNo)
		billingRoutes.POST("/checkout", billingHandler.CreateCheckout)
	}

	dashboardHandler := &handler.DashboardHandler{
		Inventory:         inventory,
		Bills:             bills,
		LowStockThreshold: config.AppConfig.Inventory.LowStockThreshold,
	}
	r.GET("/api/v1/dashboard", dashboardHandler.GetDashboardStats)
	r.GET("/api/v1/reports/sales", dashboardHandler.GetSalesReport)

	publicHandler := &handler.PublicHandler{Inventory: inventory}
	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/config", publicHandler.GetPublicConfig)
		publicRoutes.GET("/products", publicHandler.ListPublicProducts)
		publicRoutes.GET("/site-info", publicHandler.GetSiteInfo)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
