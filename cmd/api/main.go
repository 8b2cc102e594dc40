package main

import (
	"log"
	"time"

	"github.com/dcamacho/barkeep-api/internal/application/service"
	"github.com/dcamacho/barkeep-api/internal/config"
	"github.com/dcamacho/barkeep-api/internal/infrastructure/database"
	"github.com/dcamacho/barkeep-api/internal/infrastructure/ledgerstore"
	"github.com/dcamacho/barkeep-api/internal/infrastructure/repository"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/handler"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/routes"
	"github.com/dcamacho/barkeep-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	stockEntryRepo := repository.NewStockEntryRepository(db)

	// Initialize the table-order ledger store
	ledgerStore, err := ledgerstore.NewFileStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to initialize ledger store: %v", err)
	}

	reportLocation, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Printf("Warning: invalid report timezone %q, falling back to UTC: %v", cfg.Report.Timezone, err)
		reportLocation = time.UTC
	}

	// Initialize services
	authService := service.NewAuthService(profileRepo, jwtManager)
	profileService := service.NewProfileService(profileRepo)
	productService := service.NewProductService(productRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	stockService := service.NewStockService(productRepo, stockEntryRepo)
	salesService := service.NewSalesService(saleRepo, reportLocation)

	ledgerService, err := service.NewLedgerService(productRepo, settingsRepo, ledgerStore)
	if err != nil {
		log.Fatalf("Failed to restore table orders: %v", err)
	}
	settlementService := service.NewSettlementService(saleRepo, productRepo, ledgerService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService, profileService),
		Product:  handler.NewProductHandler(productService),
		Table:    handler.NewTableHandler(ledgerService, settlementService),
		Sales:    handler.NewSalesHandler(salesService),
		Stock:    handler.NewStockHandler(stockService),
		Settings: handler.NewSettingsHandler(settingsService),
		Profile:  handler.NewProfileHandler(profileService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	if cfg.App.Maintenance {
		log.Printf("Maintenance mode is enabled; API requests will be rejected")
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
