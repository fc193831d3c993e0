package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/config"
	"github.com/pattarad/rankha-pos/internal/infrastructure/database"
	"github.com/pattarad/rankha-pos/internal/infrastructure/repository"
	"github.com/pattarad/rankha-pos/internal/presentation/http/handler"
	"github.com/pattarad/rankha-pos/internal/presentation/http/routes"
	"github.com/pattarad/rankha-pos/pkg/keylock"
	"github.com/pattarad/rankha-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	productRepo := repository.NewProductRepository(db)
	stockRepo := repository.NewStockRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Per-shop locks serialize shift transitions and invoice numbering
	locks := keylock.New()

	// Initialize services
	authService := service.NewAuthService(userRepo, shopRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	stockService := service.NewStockService(stockRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, settingsRepo)
	customerService := service.NewCustomerService(customerRepo)
	shiftService := service.NewShiftService(shiftRepo, saleRepo, locks)
	invoiceService := service.NewInvoiceService(invoiceRepo, saleRepo, settingsRepo, locks)
	settingsService := service.NewSettingsService(settingsRepo)
	reportService := service.NewReportService(reportRepo, saleRepo, productRepo, customerRepo)
	assistantService := service.NewAssistantService(reportService, cfg.Assistant.GeminiAPIKey, cfg.Assistant.GeminiModel)

	// Sweep expired idempotency records in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to clean up idempotency records: %v", err)
			}
		}
	}()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Stock:     handler.NewStockHandler(stockService),
		Sale:      handler.NewSaleHandler(saleService),
		Customer:  handler.NewCustomerHandler(customerService),
		Shift:     handler.NewShiftHandler(shiftService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Report:    handler.NewReportHandler(reportService),
		Assistant: handler.NewAssistantHandler(assistantService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
