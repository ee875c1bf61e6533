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

	"github.com/magnetmantra/magnet_api/internal/cache"
	"github.com/magnetmantra/magnet_api/internal/config"
	"github.com/magnetmantra/magnet_api/internal/database"
	"github.com/magnetmantra/magnet_api/internal/handler"
	"github.com/magnetmantra/magnet_api/internal/middleware"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/service"
	"github.com/magnetmantra/magnet_api/internal/worker"
	"github.com/magnetmantra/magnet_api/pkg/imagehost"
	"github.com/magnetmantra/magnet_api/pkg/mailrelay"
)

// main is the application entrypoint for the storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting magnet api")

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

	// 3b. Connect to Redis. The catalog snapshot is an optimization;
	// the storefront still works straight off Postgres without it.
	var catalogCache *cache.CatalogCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed - catalog cache disabled")
	} else {
		defer redisClient.Close()
		catalogCache = cache.NewCatalogCache(redisClient)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize outbound clients
	var imageClient *imagehost.Client
	if cfg.ImageHost.URLEndpoint != "" && cfg.ImageHost.PrivateKey != "" {
		imageClient = imagehost.NewClient(cfg.ImageHost.URLEndpoint, cfg.ImageHost.PublicKey, cfg.ImageHost.PrivateKey)
	} else {
		log.Warn().Msg("image host not configured - media endpoints will be disabled")
	}

	var mailClient *mailrelay.Client
	if cfg.Mail.RelayURL != "" {
		mailClient = mailrelay.NewClient(cfg.Mail.RelayURL)
	} else {
		log.Warn().Msg("mail relay not configured - inquiry notifications disabled")
	}

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 6. Initialize services
	var snapshot service.SnapshotCache
	if catalogCache != nil {
		snapshot = catalogCache
	}
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo, snapshot)
	productSvc := service.NewProductService(productRepo, snapshotInvalidator(catalogCache))
	categorySvc := service.NewCategoryService(categoryRepo, productRepo, snapshotInvalidator(catalogCache))
	var mailer service.InquiryMailer
	if mailClient != nil {
		mailer = mailClient
	}
	inquirySvc := service.NewInquiryService(inquiryRepo, mailer)
	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(userRepo)
	var mediaSvc *service.MediaService
	if imageClient != nil {
		mediaSvc = service.NewMediaService(imageClient)
	}

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db),
		Catalog:  handler.NewCatalogHandler(catalogSvc),
		Inquiry:  handler.NewInquiryHandler(inquirySvc),
		Auth:     handler.NewAuthHandler(authSvc),
		Product:  handler.NewProductManagementHandler(productSvc),
		Category: handler.NewCategoryManagementHandler(categorySvc),
		InqAdmin: handler.NewInquiryManagementHandler(inquirySvc),
		User:     handler.NewUserManagementHandler(userSvc),
	}
	if mediaSvc != nil {
		handlers.Media = handler.NewMediaHandler(mediaSvc)
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	if catalogCache != nil {
		go worker.NewCatalogRefreshWorker(catalogSvc, cfg.Worker.CatalogRefreshInterval).Start(ctx)
	}

	// 12. Start HTTP server
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

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// snapshotInvalidator keeps the nil-interface pitfall out of wiring: a
// nil *cache.CatalogCache must become a nil interface, not a non-nil
// interface wrapping a nil pointer.
func snapshotInvalidator(c *cache.CatalogCache) service.SnapshotInvalidator {
	if c == nil {
		return nil
	}
	return c
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Catalog  *handler.CatalogHandler
	Inquiry  *handler.InquiryHandler
	Auth     *handler.AuthHandler
	Product  *handler.ProductManagementHandler
	Category *handler.CategoryManagementHandler
	InqAdmin *handler.InquiryManagementHandler
	User     *handler.UserManagementHandler
	Media    *handler.MediaHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront
	catalog := router.Group("/v1/catalog")
	{
		catalog.GET("/products", handlers.Catalog.ListProducts)
		catalog.GET("/products/:id", handlers.Catalog.GetProduct)
		catalog.GET("/categories", handlers.Catalog.ListCategories)
	}
	router.POST("/v1/inquiries", handlers.Inquiry.Submit)

	// Admin back-office
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle(), jwtMiddleware.RequireAdmin())
	{
		// Product Management
		admin.GET("/products", handlers.Product.ListProducts)
		admin.POST("/products", handlers.Product.CreateProduct)
		admin.GET("/products/:id", handlers.Product.GetProduct)
		admin.PUT("/products/:id", handlers.Product.UpdateProduct)
		admin.POST("/products/:id/lock", handlers.Product.ToggleLock)
		admin.DELETE("/products/:id", handlers.Product.DeleteProduct)

		// Category Management
		admin.GET("/categories", handlers.Category.ListCategories)
		admin.POST("/categories", handlers.Category.CreateCategory)
		admin.GET("/categories/:id", handlers.Category.GetCategory)
		admin.PUT("/categories/:id", handlers.Category.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.Category.DeleteCategory)

		// Inquiry Management
		admin.GET("/inquiries", handlers.InqAdmin.ListInquiries)
		admin.GET("/inquiries/:id", handlers.InqAdmin.GetInquiry)
		admin.PUT("/inquiries/:id/status", handlers.InqAdmin.UpdateStatus)
		admin.DELETE("/inquiries/:id", handlers.InqAdmin.DeleteInquiry)

		// User Management
		admin.GET("/users", handlers.User.ListUsers)
		admin.POST("/users", handlers.User.CreateUser)
		admin.GET("/users/:id", handlers.User.GetUser)
		admin.POST("/users/:id/role-toggle", handlers.User.ToggleRole)

		// Media
		if handlers.Media != nil {
			admin.POST("/media", handlers.Media.Upload)
			admin.DELETE("/media/:fileID", handlers.Media.Delete)
		}
	}
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
