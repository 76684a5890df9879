package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"circles-of-care-site/config"
	_ "circles-of-care-site/docs" // Important for Swagger
	"circles-of-care-site/internal/content"
	v1 "circles-of-care-site/internal/delivery/http/v1"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/internal/repository/postgres"
	"circles-of-care-site/internal/usecase"
	"circles-of-care-site/pkg/database"
	"circles-of-care-site/pkg/email"
	"circles-of-care-site/pkg/logger"
	"circles-of-care-site/pkg/redis"
	"circles-of-care-site/pkg/security"

	"github.com/gin-gonic/gin"
)

// @title           Circles of Care Site API
// @version         1.0
// @description     Contact enquiries, service catalog and schema.org structured data for the website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	securityLogger := security.InitSecurityLogger("circles-of-care-site", security.Environment())
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// run owns every resource so its defers complete before the exit code is set
	err = run(cfg)
	_ = securityLogger.Sync()
	if err != nil {
		logger.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

func run(cfg *config.Config) error {
	logger.Log.Info("Starting site server", "port", cfg.Port)

	// 3. Load the site catalog; a broken catalog must stop start-up
	opts := []content.Option{}
	if cfg.SiteURL != "" {
		opts = append(opts, content.WithSiteURL(cfg.SiteURL))
	}
	var site *domain.Site
	var err error
	if cfg.SiteContentPath != "" {
		site, err = content.LoadFile(cfg.SiteContentPath, opts...)
	} else {
		site, err = content.Load(opts...)
	}
	if err != nil {
		return fmt.Errorf("load site content: %w", err)
	}
	logger.Log.Info("Site content loaded", "url", site.Identity.URL, "services", len(site.Services))

	ctx := context.Background()
	checks := map[string]usecase.HealthCheck{}

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limiting uses in-memory counters", "error", err)
	} else {
		defer redis.Close()
		checks["redis"] = redis.HealthCheck
	}

	// 5. Setup Inquiry Archive (optional)
	var archive domain.InquiryRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Warn("Database unavailable - inquiries will not be archived", "error", err)
		} else {
			defer dbPool.Close()
			if err := postgres.EnsureSchema(ctx, dbPool); err != nil {
				logger.Log.Warn("Failed to prepare inquiry archive", "error", err)
			}
			archive = postgres.NewInquiryRepository(dbPool)
			checks["database"] = dbPool.Ping
		}
	}

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg, site.Identity.Name)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 7. Setup UseCases
	siteUC := usecase.NewSiteUsecase(site)
	contactUC := usecase.NewContactUsecase(site, emailService, archive, cfg.SendTimeout)
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		SiteUC:    siteUC,
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	// In-flight contact sends may take up to SendTimeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SendTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
