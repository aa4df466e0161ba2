package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the daemon configuration
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	ItemsPath string // YAML definitions file

	ProfileProviderURL string // empty disables owner profile resolution
	ProfileCacheSize   int
	ProfileCacheTTL    time.Duration
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		ItemsPath:          getEnv("ITEMS_CONFIG", "configs/items.yml"),
		ProfileProviderURL: getEnv("PROFILE_PROVIDER_URL", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	size, err := strconv.Atoi(getEnv("PROFILE_CACHE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_CACHE_SIZE value: %w", err)
	}
	cfg.ProfileCacheSize = size

	ttl, err := time.ParseDuration(getEnv("PROFILE_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROFILE_CACHE_TTL value: %w", err)
	}
	cfg.ProfileCacheTTL = ttl

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
