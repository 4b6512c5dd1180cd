package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product_slider_app_go/config"
	"product_slider_app_go/db"
	"product_slider_app_go/handlers"
	"product_slider_app_go/logger"
	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, envLoaded := config.Load()

	log := logger.New(cfg.Environment, cfg.LogLevel, cfg.LogFile)
	defer log.Sync()
	if !envLoaded {
		log.Debug("No .env file found, using environment variables")
	}

	// Initialize database
	database, err := db.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close(database)

	// Run migrations
	if err := db.AutoMigrate(database, &models.Option{}, &models.Product{}, &models.User{}, &models.Session{}); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Services
	options := services.NewOptionStore(database)
	catalog := services.NewCatalog(database)
	categories := services.NewCategoryStore(options, catalog, log)
	settings := services.NewSettingsService(options)
	auth := services.NewAuthService(database, log)

	ctx := context.Background()
	if err := services.NewActivator(options, log).Activate(ctx, cfg.SeedDefaults); err != nil {
		log.Fatal("Activation failed", zap.Error(err))
	}
	if err := services.SeedAdminFromEnv(ctx, auth, log); err != nil {
		log.Error("Failed to seed admin user", zap.Error(err))
	}

	middleware.InitAssetVersions("static", log)

	h := handlers.New(handlers.Deps{
		Config:     cfg,
		Log:        log,
		Catalog:    catalog,
		Categories: categories,
		Settings:   settings,
		Slider:     services.NewSliderService(categories, catalog, settings, log),
		Auth:       auth,
		Storage:    services.NewArchiveStorage(cfg, log),
		Monitor:    services.NewSecurityMonitor(log),
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         hstsMaxAge(cfg),
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Storefront
	e.GET("/", h.Home)
	e.GET("/slider", h.Slider)
	e.GET("/healthz", h.Healthz)

	// Login
	loginLimiter := middleware.NewLoginRateLimiter(cfg.LoginAttemptsPerMinute)
	e.GET("/admin/login", h.LoginPage)
	e.POST("/admin/login", h.Login, loginLimiter.Middleware())

	// Admin (authentication required)
	admin := e.Group("/admin")
	admin.Use(middleware.RequireAuth(auth))
	admin.Use(middleware.AuditContext())
	{
		admin.POST("/logout", h.Logout)

		settingsRoutes := admin.Group("/settings")
		settingsRoutes.Use(middleware.RequireCapability(models.CapabilityManageOptions))
		{
			settingsRoutes.GET("", h.SettingsPage)
			settingsRoutes.POST("", h.SaveSettings)
		}

		categoryRoutes := admin.Group("/categories")
		categoryRoutes.Use(middleware.RequireCapability(models.CapabilityManageStore))
		{
			categoryRoutes.GET("", h.CategoriesPage)
			categoryRoutes.POST("", h.SaveCategory)
			categoryRoutes.GET("/new", h.NewCategoryPage)
			categoryRoutes.GET("/export", h.ExportCategories)
			categoryRoutes.POST("/export/archive", h.ArchiveCategories)
			categoryRoutes.POST("/import", h.ImportCategories)
			categoryRoutes.GET("/:id/edit", h.EditCategoryPage)
			categoryRoutes.POST("/:id/delete", h.DeleteCategory)
		}
	}

	// Admin AJAX endpoint
	e.POST("/admin-ajax", h.AdminAjax,
		middleware.NewAjaxRateLimiter().Middleware(),
		middleware.RequireAuth(auth),
		middleware.RequireCapability(models.CapabilityManageStore),
		middleware.AuditContext(),
	)

	// Start background cleanup job (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auth.CleanupExpiredSessions(context.Background()); err != nil {
				log.Error("Error cleaning up expired sessions", zap.Error(err))
			}
		}
	}()

	// Start server
	go func() {
		log.Info("Server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
