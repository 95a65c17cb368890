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

	httpapi "github.com/yosefdabbas22/weather-app/internal/api/http"
	"github.com/yosefdabbas22/weather-app/internal/config"
	"github.com/yosefdabbas22/weather-app/internal/geo"
	"github.com/yosefdabbas22/weather-app/internal/geo/geocode"
	"github.com/yosefdabbas22/weather-app/internal/scheduler"
	"github.com/yosefdabbas22/weather-app/internal/store"
	"github.com/yosefdabbas22/weather-app/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Resolution pipeline over the geocoding service.
	search := geocode.NewSearchClient(httpClient, cfg.GeocodeBaseURL)
	reverse := geocode.NewReverseClient(httpClient, cfg.ReverseBaseURL)
	resolver := geo.NewResolver(search)

	// Short-TTL response cache and persisted recent searches.
	cache := store.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	recents, err := store.OpenRecentStore(cfg.RecentDBPath, cfg.RecentMax)
	if err != nil {
		log.Fatalf("failed to open recent-search store: %v", err)
	}
	defer recents.Close()

	// Forecast provider and the service tying it all together.
	provider := weather.NewOpenMeteoProvider(httpClient, cfg.ForecastBaseURL)
	service := weather.NewService(resolver, reverse, provider, cache, recents, cfg.ForecastDays)

	// Scheduler that keeps recently searched locations warm in the cache.
	sched := scheduler.New(recents, cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-app",
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
			"status":  "ok",
			"service": "weather-app",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, recents)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
