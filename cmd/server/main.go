package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/wedsimplify/wedsimplify-backend/internal/cache"
	"github.com/wedsimplify/wedsimplify-backend/internal/catalog"
	"github.com/wedsimplify/wedsimplify-backend/internal/config"
	"github.com/wedsimplify/wedsimplify-backend/internal/database"
	"github.com/wedsimplify/wedsimplify-backend/internal/handlers"
	"github.com/wedsimplify/wedsimplify-backend/internal/logging"
	"github.com/wedsimplify/wedsimplify-backend/internal/middleware"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
	"github.com/wedsimplify/wedsimplify-backend/internal/routes"
	"github.com/wedsimplify/wedsimplify-backend/internal/services"
	"github.com/wedsimplify/wedsimplify-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.IsProduction())

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Category catalog
	categories, err := catalog.Load(cfg.CategoriesConfigPath)
	if err != nil {
		slog.Error("failed to load categories", "path", cfg.CategoriesConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("category catalog loaded", "categories", categories.Len())

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.AttachDB(database.DB, cfg.IsProduction())

	retention, err := logging.NewRetention(database.DB, cfg.LogRetentionDays)
	if err != nil {
		slog.Error("log retention setup failed", "error", err)
		os.Exit(1)
	}
	retention.Start()

	// Vendor detail cache (optional)
	var vendorCache services.VendorDetailCache = cache.Noop{}
	var cachePinger handlers.Pinger
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, vendor cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			redisCache := cache.NewRedisVendorCache(redisClient, cfg.VendorCacheTTL)
			vendorCache = redisCache
			cachePinger = redisCache
			slog.Info("vendor cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.VendorCacheTTL)
		}
	}

	// Object storage
	objectStore, err := storage.NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		slog.Error("object storage setup failed", "endpoint", cfg.MinioEndpoint, "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepo(database.DB)
	tokenRepo := repository.NewTokenRepo(database.DB)
	profileRepo := repository.NewProfileRepo(database.DB)
	vendorRepo := repository.NewVendorRepo(database.DB)
	inquiryRepo := repository.NewInquiryRepo(database.DB)
	planningRepo := repository.NewPlanningRepo(database.DB)
	calendarRepo := repository.NewCalendarRepo(database.DB)
	savedRepo := repository.NewSavedVendorRepo(database.DB)
	notificationRepo := repository.NewNotificationRepo(database.DB)
	settingsRepo := repository.NewSettingsRepo(database.DB)

	// Services
	authService := services.NewAuthService(userRepo, tokenRepo, cfg)
	profileService := services.NewProfileService(userRepo, profileRepo, categories)
	vendorService := services.NewVendorService(vendorRepo, profileService, categories, vendorCache)
	settingsService := services.NewSettingsService(settingsRepo)
	notificationService := services.NewNotificationService(notificationRepo, settingsService)
	inquiryService := services.NewInquiryService(inquiryRepo, profileService, vendorService, notificationService)
	planningService := services.NewPlanningService(planningRepo, profileService)
	calendarService := services.NewCalendarService(calendarRepo, profileService)
	savedService := services.NewSavedVendorService(savedRepo, vendorService)
	objectService := services.NewObjectService(objectStore, profileService, vendorService, cfg.UploadURLExpiry)

	// Handlers
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, profileService),
		Health:   handlers.NewHealthHandler(database.Health{}, cachePinger, categories.Len),
		Profile:  handlers.NewProfileHandler(profileService),
		Vendor:   handlers.NewVendorHandler(vendorService),
		Inquiry:  handlers.NewInquiryHandler(inquiryService),
		Planning: handlers.NewPlanningHandler(planningService),
		Calendar: handlers.NewCalendarHandler(calendarService),
		Account:  handlers.NewAccountHandler(savedService, notificationService, settingsService),
		Object:   handlers.NewObjectHandler(objectService),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, userRepo, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := retention.Stop(); err != nil {
		slog.Error("scheduler shutdown error", "error", err)
	}
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}

	if err := database.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
