package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// HTTPTimeout applies to every outbound call to the geocoding and
	// forecast services.
	HTTPTimeout time.Duration

	// Upstream base URLs; overridable so tests can point at stubs.
	GeocodeBaseURL  string
	ReverseBaseURL  string
	ForecastBaseURL string

	// ForecastDays is the length of the short forecast (1-7).
	ForecastDays int

	// Response cache retention.
	CacheTTL        time.Duration
	CacheMaxEntries int

	// Recent-search persistence.
	RecentDBPath string
	RecentMax    int

	// RefreshInterval controls how often cached weather is re-fetched for
	// recently searched locations.
	RefreshInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocodeBaseURL = os.Getenv("GEOCODE_BASE_URL")
	cfg.ReverseBaseURL = os.Getenv("REVERSE_GEOCODE_BASE_URL")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 5)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 7 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 7")
	}

	ttlStr := getenvDefault("CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl
	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 256)

	cfg.RecentDBPath = getenvDefault("RECENT_DB_PATH", "weather-app.db")
	cfg.RecentMax = getenvInt("RECENT_MAX", 10)

	refreshStr := getenvDefault("REFRESH_INTERVAL", "30m")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
