package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/greenbowl/greenbowl-backend/config"
	"github.com/greenbowl/greenbowl-backend/internal/app/controller"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/app/service"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/greenbowl/greenbowl-backend/internal/middleware"
	"github.com/greenbowl/greenbowl-backend/internal/router"
	"github.com/greenbowl/greenbowl-backend/internal/scheduler"
	"github.com/greenbowl/greenbowl-backend/internal/session"
	"github.com/greenbowl/greenbowl-backend/internal/storage"
	"github.com/greenbowl/greenbowl-backend/pkg/logger"
	"github.com/greenbowl/greenbowl-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting GREENBOWL Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis for session storage
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	// Initialize image storage
	var imageStorage storage.ImageStorage
	if cfg.Storage.Driver == "s3" {
		imageStorage = storage.NewS3Storage(
			cfg.Storage.S3.Region,
			cfg.Storage.S3.Bucket,
			cfg.Storage.S3.AccessKeyID,
			cfg.Storage.S3.SecretAccessKey,
			cfg.Storage.S3.BaseURL,
		)
	} else {
		imageStorage, err = storage.NewLocalStorage(cfg.Storage.UploadDir)
		if err != nil {
			logger.Fatal("Failed to initialize upload directory", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	productRepo := repository.NewProductRepository(database)
	cartRepo := repository.NewCartRepository(database)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	catalogService := service.NewCatalogService(categoryRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	checkoutService := service.NewCheckoutService(cartRepo, cfg.Checkout.StubDelay)
	seedService := service.NewSeedService(categoryRepo, productRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.Session)
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(cartService)
	checkoutController := controller.NewCheckoutController(checkoutService)
	adminController := controller.NewAdminController(seedService, imageStorage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(sessions, cfg.Session.Secret, cfg.Session.CookieName)

	// Optional stale-cart sweep
	var cleanupScheduler *scheduler.CartCleanupScheduler
	if cfg.Cleanup.Enabled {
		cleanupScheduler = scheduler.NewCartCleanupScheduler(cartRepo, cfg.Cleanup.CartRetention)
		if err := cleanupScheduler.Start(); err != nil {
			logger.Fatal("Failed to start cart cleanup scheduler", err)
		}
	}

	// Setup router
	r := router.NewRouter(
		authController,
		catalogController,
		cartController,
		checkoutController,
		adminController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	if cleanupScheduler != nil {
		cleanupScheduler.Stop()
	}
	logger.Info("Server stopped successfully")
}
