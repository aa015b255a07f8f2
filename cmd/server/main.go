package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	categorizer := services.NewCategorizerService()
	parser := services.NewStatementParser()
	extractor := services.NewRowExtractor()
	importService := services.NewImportService(parser, extractor, categorizer, transactionRepo, metrics)
	transactionService := services.NewTransactionService(transactionRepo, categorizer)
	forecastService := services.NewForecastService(transactionRepo)
	anomalyService := services.NewAnomalyService(transactionRepo)
	insightService := services.NewInsightService(transactionRepo)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.ML.MaxFailures,
		ResetTimeout:    cfg.ML.ResetTimeout,
		HalfOpenMaxSucc: 3,
	})
	mlClient := services.NewMLClient(&cfg.ML, breaker)
	mlService := services.NewMLService(mlClient, categorizer, forecastService, anomalyService, transactionRepo, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	importHandler := handlers.NewImportHandler(importService, cfg.Security.MaxUploadBytes)
	analyticsHandler := handlers.NewAnalyticsHandler(mlService, insightService, anomalyService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(&cfg.Auth))

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	api.POST("/transactions/import", importHandler.ImportStatement)

	api.GET("/dashboard", transactionHandler.GetDashboardStats)

	api.POST("/ml/categorize", analyticsHandler.Categorize)
	api.GET("/ml/forecast", analyticsHandler.GetForecast)
	api.GET("/ml/anomalies", analyticsHandler.GetAnomalies)
	api.GET("/ml/insights", analyticsHandler.GetInsights)

	if cfg.IsDevelopment() {
		generator := services.NewSampleDataGenerator(uint64(time.Now().UnixNano()))
		devHandler := handlers.NewDevHandler(transactionRepo, generator, metrics)
		api.POST("/dev/seed", devHandler.SeedData)
		slog.Info("development seed endpoint enabled")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
