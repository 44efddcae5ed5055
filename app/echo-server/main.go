package main

import (
	"context"
	servermetrics "customerRenewal/app/echo-server/metrics"
	"customerRenewal/app/echo-server/router"
	"customerRenewal/business/evaluation"
	"customerRenewal/internal/middleware"
	psqlRepo "customerRenewal/internal/repository/postgres"
	"customerRenewal/internal/repository/predictor"
	redisRepo "customerRenewal/internal/repository/redis"
	"customerRenewal/internal/rest"
	"customerRenewal/pkg/config"
	"customerRenewal/pkg/database"
	redisDB "customerRenewal/pkg/database/redis"
	"customerRenewal/pkg/logger"
	"customerRenewal/pkg/metrics"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting renewal evaluation service", "name", cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()
	servermetrics.Init()

	predictorRepo := predictor.NewPredictorRepository(predictor.PredictorConfig{
		EndpointURL:   cfg.Predictor.EndpointURL,
		Token:         cfg.Predictor.Token,
		AuthScheme:    cfg.Predictor.AuthScheme,
		BasicUsername: cfg.Predictor.BasicUsername,
		BasicPassword: cfg.Predictor.BasicPassword,
		Timeout:       cfg.Predictor.Timeout,
		ContactID:     cfg.Predictor.ContactID,
	})

	// Optional evaluation history
	var history evaluation.EvaluationRepository
	if cfg.History.Enabled {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")
		history = psqlRepo.NewEvaluationRepository(db)
	}

	// Optional rate limiting
	var rateLimit echo.MiddlewareFunc
	if cfg.RateLimit.Enabled {
		rdb, err := redisDB.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisDB.CloseRedisClient(rdb)
		logger.Info("Redis connected successfully")

		limiter := redisRepo.NewRateLimitRepository(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		rateLimit = middleware.RateLimit(limiter)
	}

	// Init service
	evaluationService := evaluation.NewEvaluationService(predictorRepo, history)

	// Init handler
	evaluationHandler := rest.NewEvaluationHandler(evaluationService, cfg.Server.RequestTimeout)
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	setupMiddleware(e, cfg)

	// Setup routes
	router.SetOpsRoutes(e, healthHandler)

	api := e.Group("/api/v1")
	router.SetEvaluationRoutes(api, evaluationHandler, rateLimit)
	if evaluationService.HistoryEnabled() {
		router.SetHistoryRoutes(api, evaluationHandler, middleware.AuthMiddleware(cfg.JWT.SecretKey), middleware.AdminOnly())
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr, "history", evaluationService.HistoryEnabled(), "rate_limit", cfg.RateLimit.Enabled)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// setupMiddleware installs the global middleware. Metrics sit outside Recover
// so requests that panic are still counted as 500s.
func setupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(servermetrics.Middleware())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency.String())
			return nil
		},
	}))
}
