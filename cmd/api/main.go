package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sweetline/shop-api/internal/cache"
	"github.com/sweetline/shop-api/internal/config"
	"github.com/sweetline/shop-api/internal/database"
	"github.com/sweetline/shop-api/internal/handler"
	"github.com/sweetline/shop-api/internal/middleware"
	"github.com/sweetline/shop-api/internal/repository"
	"github.com/sweetline/shop-api/internal/service"
)

const version = "1.0.0"

// maxBodyBytes caps request body size on all routes.
const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting shop api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis. The settings cache is best-effort, so a missing
	// Redis only degrades to uncached reads.
	var redisClient *cache.RedisClient
	if rc, err := cache.NewRedisClient(&cfg.Redis); err != nil {
		log.Warn().Err(err).Msg("redis unavailable - settings cache disabled")
	} else {
		redisClient = rc
		defer redisClient.Close()
		log.Info().Msg("redis connected successfully")
	}
	settingsCache := cache.NewSettingsCache(redisClient, cfg.Cache.SettingsTTL)

	// 4. Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	preorderRepo := repository.NewPreorderRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	healthRepo := repository.NewHealthRepository(db)

	// 5. Initialize services
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo)
	orderSvc := service.NewOrderService(orderRepo)
	preorderSvc := service.NewPreorderService(preorderRepo, customerRepo)
	settingsSvc := service.NewSettingsService(settingRepo, settingsCache)

	// 6. Initialize handlers
	handlers := &Handlers{
		Root:     handler.NewRootHandler(version),
		Health:   handler.NewHealthHandler(healthRepo),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Order:    handler.NewOrderHandler(orderSvc),
		Preorder: handler.NewPreorderHandler(preorderSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
	}

	// 7. Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.BodyLimitMiddleware(maxBodyBytes))
	router.Use(middleware.LoggingMiddleware())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	setupRoutes(router, handlers, rateLimiter)

	// 8. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 10. Shutdown HTTP server with timeout, then drain the pool via the
	// deferred Close calls.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Root     *handler.RootHandler
	Health   *handler.HealthHandler
	Catalog  *handler.CatalogHandler
	Order    *handler.OrderHandler
	Preorder *handler.PreorderHandler
	Settings *handler.SettingsHandler
}

// setupRoutes registers all routes. The rate limiter applies to everything
// under /api; the root endpoint stays unthrottled.
func setupRoutes(router *gin.Engine, handlers *Handlers, rateLimiter *middleware.RateLimiter) {
	router.GET("/", handlers.Root.GetRoot)

	api := router.Group("/api")
	api.Use(rateLimiter.Handle())
	{
		api.GET("/health", handlers.Health.GetHealth)
		api.GET("/categories", handlers.Catalog.GetCategories)
		api.GET("/products", handlers.Catalog.GetProducts)
		api.POST("/orders", handlers.Order.CreateOrder)
		api.POST("/preorders", handlers.Preorder.CreatePreorder)
		api.GET("/settings", handlers.Settings.GetSettings)
	}

	router.NoRoute(handler.NotFound)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
