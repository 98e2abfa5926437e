package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/database"
	"networth-tracker/internal/handlers"
	custommiddleware "networth-tracker/internal/middleware"
	"networth-tracker/internal/repositories"
	"networth-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	accountRepo := repositories.NewAccountRepository(db)
	entryRepo := repositories.NewBalanceEntryRepository(db)
	rateRepo := repositories.NewExchangeRateRepository(db)
	prefRepo := repositories.NewUserPreferenceRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	scheduler := services.NewSampleScheduler()
	historyService := services.NewNetWorthHistoryService(
		accountRepo,
		entryRepo,
		rateRepo,
		prefRepo,
		scheduler,
		metrics,
		cfg.Engine.AggregationWorkers,
	)
	seeder := services.NewDemoSeederService(accountRepo, entryRepo, rateRepo)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	networthHandler := handlers.NewNetWorthHandler(historyService)
	accountHandler := handlers.NewAccountHandler(accountRepo)
	entryHandler := handlers.NewBalanceEntryHandler(entryRepo, accountRepo)
	exchangeRateHandler := handlers.NewExchangeRateHandler(rateRepo)
	preferenceHandler := handlers.NewPreferenceHandler(prefRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Engine.RateLimitPerSecond, cfg.Engine.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/networth/history", networthHandler.GetHistory)

	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.GetAccounts)
	api.GET("/accounts/:accountId", accountHandler.GetAccount)
	api.PUT("/accounts/:accountId", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:accountId", accountHandler.DeleteAccount)

	api.POST("/accounts/:accountId/entries", entryHandler.CreateEntry)
	api.GET("/accounts/:accountId/entries", entryHandler.GetEntries)
	api.DELETE("/accounts/:accountId/entries/:entryId", entryHandler.DeleteEntry)

	api.PUT("/rates", exchangeRateHandler.UpsertRate)
	api.GET("/rates", exchangeRateHandler.GetRates)

	api.GET("/preferences", preferenceHandler.GetPreferences)
	api.PUT("/preferences", preferenceHandler.UpdatePreferences)

	// Development-only endpoints
	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(seeder)
		api.POST("/dev/seed", devHandler.SeedDemoData)
		slog.Info("Development endpoints enabled")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil {
			slog.Info("Server stopped", "reason", err)
		}
	}()

	// Graceful shutdown on SIGTERM or SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	slog.Info("Shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
	slog.Info("Server exited")
}
