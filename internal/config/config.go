package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Jagriti portal settings
	JagritiBaseURL string
	UserAgent      string

	// Upstream request settings
	RequestTimeout   time.Duration
	MaxRetries       int
	RetryBackoffBase time.Duration

	// Default search date window
	DefaultFromDate string
	DefaultToDate   string

	// Directory cache TTL (0 disables caching)
	DirectoryCacheTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		JagritiBaseURL:  getEnv("JAGRITI_BASE_URL", "https://e-jagriti.gov.in"),
		UserAgent:       getEnv("USER_AGENT", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"),
		DefaultFromDate: getEnv("DEFAULT_FROM_DATE", "2025-01-01"),
		DefaultToDate:   getEnv("DEFAULT_TO_DATE", "2025-09-03"),
	}

	requestTimeout, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = time.Duration(requestTimeout) * time.Second

	cfg.MaxRetries, err = strconv.Atoi(getEnv("MAX_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_RETRIES: %w", err)
	}

	backoffBase, err := strconv.Atoi(getEnv("RETRY_BACKOFF_BASE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RETRY_BACKOFF_BASE: %w", err)
	}
	cfg.RetryBackoffBase = time.Duration(backoffBase) * time.Second

	cacheTTL, err := strconv.Atoi(getEnv("DIRECTORY_CACHE_TTL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_CACHE_TTL: %w", err)
	}
	cfg.DirectoryCacheTTL = time.Duration(cacheTTL) * time.Second

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
