package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/localflow/internal/database"
	"github.com/anonto42/localflow/internal/router"
	"github.com/anonto42/localflow/internal/search"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/anonto42/localflow/internal/views"
	"github.com/anonto42/localflow/pkg/config"
	"github.com/anonto42/localflow/pkg/firebase"
	"github.com/anonto42/localflow/pkg/logger"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	searchStateTTL  = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	// Initialize database connection
	db, err := config.InitDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.CloseDB()

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(cfg.Database.PostgresUrl); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}
		log.Info("Database migrations applied")
	}

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.Firebase.CredentialsPath, cfg.Firebase.APIKey, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize Firebase")
	}
	provider := firebase.NewProvider(firebaseApp, cfg.Session.TTL)

	secret := cfg.SearchStateSecret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn("SEARCH_STATE_SECRET not set; using a per-process secret")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	renderer, err := views.New()
	if err != nil {
		log.WithError(err).Fatal("Failed to parse templates")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	deps := router.Deps{
		Config:    cfg,
		DB:        db.Postgres,
		Provider:  provider,
		Codec:     search.NewStateCodec(secret, searchStateTTL),
		Validator: e.Validator.(*validators.CustomValidator),
		Metrics:   collector,
		Log:       log,
	}
	router.SetupMiddleware(e, deps)
	if err := router.SetupRoutes(e, deps); err != nil {
		log.WithError(err).Fatal("Failed to set up routes")
	}

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metrics.Handler(registry),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()

	// Start server
	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Metrics server shutdown failed")
	}
	log.Info("Server stopped")
}
