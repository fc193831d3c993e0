package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/config"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/internal/presentation/http/handler"
	"github.com/pattarad/rankha-pos/internal/presentation/http/middleware"
	"github.com/pattarad/rankha-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Stock     *handler.StockHandler
	Sale      *handler.SaleHandler
	Customer  *handler.CustomerHandler
	Shift     *handler.ShiftHandler
	Invoice   *handler.InvoiceHandler
	Settings  *handler.SettingsHandler
	Report    *handler.ReportHandler
	Assistant *handler.AssistantHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-shop rate limiter
		rateLimiter := middleware.NewShopRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PATCH("/settings", h.Settings.Update)

	// Products and stock
	registerProductRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h, deps)

	// Customers and debts
	registerCustomerRoutes(protected, h)

	// Shifts
	registerShiftRoutes(protected, h)

	// Tax invoices
	registerInvoiceRoutes(protected, h)

	// Reports
	registerReportRoutes(protected, h)

	// Assistant
	protected.POST("/assistant/ask", h.Assistant.Ask)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/stock-in", h.Stock.StockIn)
		products.POST("/:id/adjust", h.Stock.Adjust)
	}

	protected.GET("/stock/movements", h.Stock.ListMovements)
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale creation uses idempotency middleware to prevent duplicates
		sales.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/debtors", h.Customer.Debtors)
		customers.GET("/:id", h.Customer.Get)
		customers.PATCH("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.POST("/:id/add-debt", h.Customer.AddDebt)
		customers.POST("/:id/pay-debt", h.Customer.PayDebt)
	}
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers) {
	shifts := protected.Group("/shifts")
	{
		shifts.GET("", h.Shift.List)
		shifts.POST("/open", h.Shift.Open)
		shifts.POST("/close", h.Shift.Close)
		shifts.GET("/current", h.Shift.Current)
		shifts.GET("/:id", h.Shift.Get)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Issue)
		invoices.GET("/by-sale/:saleId", h.Invoice.GetBySale)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/today", h.Report.Today)
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/top-products", h.Report.TopProducts)
		reports.GET("/low-stock", h.Report.LowStock)
		reports.GET("/debtors", h.Report.Debtors)
	}
}
