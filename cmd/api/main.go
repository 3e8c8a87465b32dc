package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/subtally/subtally-api/internal/config"
	"github.com/subtally/subtally-api/internal/extract"
	"github.com/subtally/subtally-api/internal/handlers"
	"github.com/subtally/subtally-api/internal/logger"
	"github.com/subtally/subtally-api/internal/middleware"
	"github.com/subtally/subtally-api/internal/services"
)

func main() {
	log := logger.New()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := config.LoadFromEnv()

	// Initialize the pipeline
	validator := services.NewFileValidator(cfg.MaxUploadBytes)
	extractor := extract.NewPDFExtractor()
	processor := services.NewProcessor(validator, extractor, cfg.MaxPDFPages)

	processHandler := handlers.NewProcessHandler(processor)

	app := fiber.New(fiber.Config{
		AppName:   "subtally API v1.0",
		BodyLimit: int(cfg.MaxUploadBytes) + 1024*1024, // headroom for multipart framing
	})

	// Apply global middleware
	app.Use(middleware.CORS(cfg.AllowedOrigins))
	app.Use(middleware.RequestID(log))

	// Health check endpoint (public)
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "subtally-api",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")
	v1.Post("/process", processHandler.ProcessStatement)

	// Start server in a goroutine so the main goroutine can wait for signals
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		log.Info().Str("addr", addr).Str("environment", cfg.Environment).Msg("subtally API listening")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
