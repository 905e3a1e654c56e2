package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/farmos/crop-service/config"
	_ "github.com/farmos/crop-service/docs"
	"github.com/farmos/crop-service/internal/catalog"
	"github.com/farmos/crop-service/internal/fetch"
	"github.com/farmos/crop-service/internal/fetch/ratelimit"
	"github.com/farmos/crop-service/internal/handlers"
	"github.com/farmos/crop-service/internal/inventory"
	"github.com/farmos/crop-service/internal/middleware"
	"github.com/farmos/crop-service/internal/pkg/cuid2"
	"github.com/farmos/crop-service/internal/stage"
	"github.com/farmos/crop-service/internal/telemetry"
	"github.com/farmos/crop-service/internal/weather"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting crop service")

	ctx := context.Background()

	cleanup, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cleanup(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	cat, err := loadCatalog(cfg.Catalog.Path, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load species catalog")
	}
	logger.Info().Int("species", len(cat.Species())).Msg("Species catalog loaded")

	engine := stage.NewEngine(cat)
	store := inventory.NewSeededStore()

	fetchClient := fetch.NewClient(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		MaxRetries:        cfg.RateLimit.MaxRetries,
		InitialBackoffMs:  cfg.RateLimit.InitialBackoffMs,
		MaxBackoffMs:      cfg.RateLimit.MaxBackoffMs,
	})
	weatherSvc := weather.NewService(fetchClient, cfg.Weather.BaseURL)

	handlers.Init(engine, store, weatherSvc, stage.NewClock())

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	setupMiddleware(router, logger)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.Use(middleware.APIKeyMiddleware())
	api.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimiterConfig()))
	{
		crops := api.Group("/crops")
		{
			crops.GET("", handlers.ListCrops)
			crops.POST("", handlers.CreateCrop)
			crops.PUT("", handlers.ReplaceInventory)
			crops.PUT("/:index", handlers.UpdateCrop)
			crops.DELETE("/:index", handlers.DeleteCrop)
			crops.GET("/export", handlers.ExportInventory)
		}

		fields := api.Group("/fields")
		{
			fields.POST("/area", handlers.ComputeArea)
			fields.POST("", handlers.SaveField)
		}

		api.GET("/planner", handlers.HarvestPlanner)
		api.GET("/weather/:place", handlers.GetWeather)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// loadCatalog returns the built-in catalog when no override file is configured.
func loadCatalog(path string, logger *zerolog.Logger) (*catalog.Catalog, error) {
	if path == "" {
		logger.Info().Msg("No catalog override configured, using built-in species")
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "crop-service").Logger()
	return &logger
}

func setupMiddleware(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = cuid2.GeneratePrefixedId("req", cuid2.PrefixedIdOptions{})
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		end := time.Now()
		latency := end.Sub(start)

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Str("requestId", requestID).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	})
}
