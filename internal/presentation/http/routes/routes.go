package routes

import (
	"time"

	"github.com/dcamacho/barkeep-api/internal/config"
	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/handler"
	"github.com/dcamacho/barkeep-api/internal/presentation/http/middleware"
	"github.com/dcamacho/barkeep-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Table    *handler.TableHandler
	Sales    *handler.SalesHandler
	Stock    *handler.StockHandler
	Settings *handler.SettingsHandler
	Profile  *handler.ProfileHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health stays reachable in maintenance mode
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.MaintenanceMiddleware(deps.Cfg.App.Maintenance))
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Own profile
	protected.GET("/profile", h.Auth.GetProfile)

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/available", h.Product.ListAvailable)
		products.GET("/low-stock", h.Product.ListLowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Tables: ledger and settlement
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.ListStatuses)
		tables.POST("/settle-all", h.Table.SettleAll)
		tables.GET("/:number/order", h.Table.GetOrder)
		tables.DELETE("/:number/order", h.Table.ClearOrder)
		tables.POST("/:number/lines", h.Table.AddLine)
		tables.PUT("/:number/lines/:productId", h.Table.SetLineQuantity)
		tables.DELETE("/:number/lines/:productId", h.Table.RemoveLine)
		tables.POST("/:number/settle", h.Table.Settle)
	}

	// Sales history and reporting
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/report", h.Sales.Report)
		sales.GET("/:id", h.Sales.Get)
	}

	// Restocks
	stock := protected.Group("/stock-entries")
	{
		stock.GET("", h.Stock.List)
		stock.GET("/totals", h.Stock.Totals)
		stock.POST("", h.Stock.Create)
	}

	// Admin console
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(enum.RoleAdmin))
	{
		admin.GET("/settings", h.Settings.Get)
		admin.PUT("/settings", h.Settings.Update)

		admin.GET("/users", h.Profile.List)
		admin.POST("/users", h.Profile.Create)
		admin.PUT("/users/:id", h.Profile.Update)
		admin.DELETE("/users/:id", h.Profile.Delete)
	}
}
