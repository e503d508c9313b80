package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shoab414/Hotel-Management/config"
	"github.com/shoab414/Hotel-Management/internal/handler"
	"github.com/shoab414/Hotel-Management/internal/invoice"
	"github.com/shoab414/Hotel-Management/internal/middleware"
	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/repository"
	"github.com/shoab414/Hotel-Management/internal/utils"
	"github.com/shoab414/Hotel-Management/pkg/database"
	"github.com/shoab414/Hotel-Management/pkg/logger"
)

func main() {
	log := logger.Get()
	defer log.Sync()

	cfg := config.Load()

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := database.Seed(db, &cfg.Defaults); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	repo := repository.New(db, cfg.Billing.GSTRate)
	jwt := utils.NewJWTManager(cfg.Server.JWTSecret, cfg.Server.JWTExpirationHours)
	invoices := invoice.NewGenerator(cfg.Billing.InvoiceDir)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := &handler.AuthHandler{Repo: repo, JWT: jwt}
	hotelHandler := &handler.HotelHandler{Repo: repo}
	guestHandler := &handler.GuestHandler{Repo: repo}
	posHandler := &handler.POSHandler{Repo: repo}
	menuHandler := &handler.MenuHandler{Repo: repo}
	inventoryHandler := &handler.InventoryHandler{Repo: repo}
	billingHandler := &handler.BillingHandler{Repo: repo, Invoices: invoices}
	analyticsHandler := &handler.AnalyticsHandler{Repo: repo}
	exportHandler := &handler.ExportHandler{Repo: repo}

	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.Auth(jwt))
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.Auth(jwt, models.RoleAdmin))
	{
		adminRoutes.POST("/users", authHandler.CreateUser)
		adminRoutes.GET("/users", authHandler.ListUsers)
	}

	hotelRoutes := r.Group("/api/v1/hotel")
	hotelRoutes.Use(middleware.Auth(jwt))
	{
		hotelRoutes.GET("/rooms", hotelHandler.ListRooms)
		hotelRoutes.GET("/reservations", hotelHandler.ListReservations)
		hotelRoutes.POST("/reservations", hotelHandler.CreateReservation)
		hotelRoutes.POST("/reservations/:id/checkin", hotelHandler.CheckIn)
		hotelRoutes.POST("/reservations/:id/checkout", hotelHandler.CheckOut)
		hotelRoutes.POST("/reservations/:id/cancel", hotelHandler.CancelReservation)
		hotelRoutes.POST("/reservations/:id/settle", hotelHandler.Checkout)

		hotelRoutes.GET("/guests", guestHandler.ListGuests)
		hotelRoutes.GET("/customers", guestHandler.ListCustomers)
		hotelRoutes.POST("/customers", guestHandler.CreateCustomer)
		hotelRoutes.PUT("/customers/:id", guestHandler.UpdateCustomer)
		hotelRoutes.POST("/customers/:id/checkout", guestHandler.CheckoutByCustomer)
		hotelRoutes.POST("/quick-reserve", guestHandler.QuickReserve)
	}

	// Room/customer administration is kept away from front-desk staff.
	hotelAdmin := r.Group("/api/v1/hotel")
	hotelAdmin.Use(middleware.Auth(jwt, models.RoleAdmin, models.RoleManager))
	{
		hotelAdmin.POST("/rooms", hotelHandler.CreateRoom)
		hotelAdmin.PUT("/rooms/:id", hotelHandler.UpdateRoom)
		hotelAdmin.DELETE("/rooms/:id", hotelHandler.DeleteRoom)
		hotelAdmin.PUT("/rooms/:id/status", hotelHandler.SetRoomStatus)
		hotelAdmin.DELETE("/customers/:id", guestHandler.DeleteCustomer)
	}

	posRoutes := r.Group("/api/v1/pos")
	posRoutes.Use(middleware.Auth(jwt))
	{
		posRoutes.GET("/tables", posHandler.ListTables)
		posRoutes.POST("/tables", posHandler.CreateTable)
		posRoutes.PUT("/tables/:id/status", posHandler.SetTableStatus)
		posRoutes.GET("/tables/:id/orders", posHandler.TableOrders)
		posRoutes.POST("/tables/:id/checkout", posHandler.CheckoutTable)

		posRoutes.POST("/orders", posHandler.OpenOrder)
		posRoutes.GET("/orders/:id", posHandler.GetOrder)
		posRoutes.POST("/orders/:id/kitchen", posHandler.SendToKitchen)
		posRoutes.POST("/orders/:id/served", posHandler.MarkServed)
		posRoutes.POST("/orders/:id/settle", posHandler.SettleOrder)
		posRoutes.POST("/orders/:id/cancel", posHandler.CancelOrder)
		posRoutes.PUT("/order-details/:id/kitchen-status", posHandler.UpdateKitchenStatus)
	}

	menuRoutes := r.Group("/api/v1/menu")
	menuRoutes.Use(middleware.Auth(jwt))
	{
		menuRoutes.GET("/items", menuHandler.ListItems)
		menuRoutes.GET("/categories", menuHandler.ListCategories)
	}
	menuAdmin := r.Group("/api/v1/menu")
	menuAdmin.Use(middleware.Auth(jwt, models.RoleAdmin, models.RoleManager))
	{
		menuAdmin.POST("/items", menuHandler.CreateItem)
		menuAdmin.PUT("/items/:id", menuHandler.UpdateItem)
		menuAdmin.DELETE("/items/:id", menuHandler.DeleteItem)
		menuAdmin.PUT("/items/:id/active", menuHandler.SetActive)
	}

	invRoutes := r.Group("/api/v1/inventory")
	invRoutes.Use(middleware.Auth(jwt, models.RoleAdmin, models.RoleManager))
	{
		invRoutes.GET("/items", inventoryHandler.ListItems)
		invRoutes.POST("/items", inventoryHandler.CreateItem)
		invRoutes.PUT("/items/:id", inventoryHandler.UpdateItem)
		invRoutes.DELETE("/items/:id", inventoryHandler.DeleteItem)
		invRoutes.POST("/consumption", inventoryHandler.RecordConsumption)
		invRoutes.GET("/consumption", inventoryHandler.ListConsumption)
		invRoutes.GET("/consumption/summary", inventoryHandler.SummarizeConsumption)
		invRoutes.DELETE("/consumption/:id", inventoryHandler.DeleteConsumption)
		invRoutes.GET("/suppliers", inventoryHandler.ListSuppliers)
		invRoutes.POST("/suppliers", inventoryHandler.CreateSupplier)
		invRoutes.PUT("/suppliers/:id", inventoryHandler.UpdateSupplier)
		invRoutes.DELETE("/suppliers/:id", inventoryHandler.DeleteSupplier)
	}

	billingRoutes := r.Group("/api/v1/billing")
	billingRoutes.Use(middleware.Auth(jwt))
	{
		billingRoutes.GET("/orders", billingHandler.ListOrders)
		billingRoutes.POST("/orders/:id/invoice", billingHandler.GenerateInvoice)
	}

	analyticsRoutes := r.Group("/api/v1/analytics")
	analyticsRoutes.Use(middleware.Auth(jwt, models.RoleAdmin, models.RoleManager))
	{
		analyticsRoutes.GET("/dashboard", analyticsHandler.Dashboard)
		analyticsRoutes.GET("/revenue-series", analyticsHandler.RevenueSeries)
		analyticsRoutes.GET("/orders-per-day", analyticsHandler.OrdersPerDay)
		analyticsRoutes.GET("/revenue-by-category", analyticsHandler.RevenueByCategory)
		analyticsRoutes.GET("/payment-methods", analyticsHandler.PaymentMethodSplit)
	}

	exportRoutes := r.Group("/api/v1/export")
	exportRoutes.Use(middleware.Auth(jwt, models.RoleAdmin, models.RoleManager))
	{
		exportRoutes.GET("/customers.csv", exportHandler.ExportCustomersCSV)
		exportRoutes.GET("/sales.xlsx", exportHandler.ExportSalesXLSX)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	log.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
