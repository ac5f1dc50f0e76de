package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/revampedplant756/weather-glasses-app/internal/api/http"
	"github.com/revampedplant756/weather-glasses-app/internal/config"
	"github.com/revampedplant756/weather-glasses-app/internal/geo"
	"github.com/revampedplant756/weather-glasses-app/internal/logging"
	"github.com/revampedplant756/weather-glasses-app/internal/scheduler"
	"github.com/revampedplant756/weather-glasses-app/internal/session"
	"github.com/revampedplant756/weather-glasses-app/internal/weather/openweather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logging.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.OpenWeatherAPIKey == "" {
		zlog.Warn("OPENWEATHER_API_KEY is not set; fetches will fail")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	fetcher := openweather.New(httpClient, cfg.OpenWeatherAPIKey)

	// Reverse geocoding is optional; without a key, coordinate-seeded
	// sessions display raw coordinates.
	var resolver session.GeoResolver
	if cfg.GeocoderAPIKey != "" {
		resolver = geo.NewResolver(cfg.GeocoderAPIKey)
	}

	machine := session.NewMachine(fetcher, resolver, cfg.DisplayFahrenheit, zlog)
	registry := session.NewRegistry()

	// Periodic eviction of idle sessions.
	sweeper := scheduler.New(registry, cfg.SessionTTL, cfg.SweepInterval, zlog)
	if err := sweeper.Start(); err != nil {
		zlog.Fatalw("failed to start session sweeper", "error", err)
	}
	defer sweeper.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-glasses",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-glasses",
			"sessions": registry.Len(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, registry, machine, zlog)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Errorw("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Errorw("error during shutdown", "error", err)
	}
}
