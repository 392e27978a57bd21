package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/yt-summarizer/docs"
	"github.com/johnquangdev/yt-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/yt-summarizer/pkg/ai"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
	pkgvalidator "github.com/johnquangdev/yt-summarizer/pkg/validator"
	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

// @title           YouTube Summarizer API
// @version         1.0
// @description     Summarizes YouTube videos from their English captions using the Hugging Face inference API

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	logger.Info("🔧 Initializing dependencies...")

	captionClient := youtube.NewCaptionClient(&cfg.YouTube)
	hfClient := pkgai.NewHuggingFaceClient(&cfg.HuggingFace)
	if cfg.HuggingFace.APIKey == "" {
		logger.Warn("⚠️  HUGGINGFACE_API_KEY is not set; summarize requests will fail until it is configured")
	}
	logger.Info("🤖 Summarizer configured",
		zap.String("model", cfg.HuggingFace.Model),
		zap.Int("max_chunk_length", cfg.Summary.MaxChunkLength),
		zap.Int("max_passes", cfg.Summary.MaxPasses),
		zap.Int("concurrency", cfg.Summary.Concurrency),
	)

	summaryService := summary.NewSummaryService(captionClient, hfClient, cfg, logger)
	summaryController := handler.NewSummaryController(summaryService, logger)

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summaryController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		logger.Info("🔗 Health check: http://" + addr + "/health")

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = level
	return zcfg.Build()
}
