package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Port string

	// Database; empty means in-memory repositories only.
	DatabaseURL string

	// Live price feed
	PriceFeedSymbol   string        // portfolio symbol the feed updates, e.g. "BTC"
	PriceFeedCoinID   string        // price-source identifier, e.g. "bitcoin"
	PriceFeedInterval time.Duration // poll interval
	PriceFeedBaseURL  string        // override for tests; empty uses the public API
}

// Load reads configuration from environment variables (.env file optional).
func Load() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		PriceFeedSymbol:   getEnv("PRICE_FEED_SYMBOL", "BTC"),
		PriceFeedCoinID:   getEnv("PRICE_FEED_COIN_ID", "bitcoin"),
		PriceFeedInterval: 10 * time.Second,
		PriceFeedBaseURL:  strings.TrimSpace(os.Getenv("PRICE_FEED_BASE_URL")),
	}

	if v := strings.TrimSpace(os.Getenv("PRICE_FEED_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PRICE_FEED_INTERVAL %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("PRICE_FEED_INTERVAL must be positive, got %q", v)
		}
		cfg.PriceFeedInterval = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
