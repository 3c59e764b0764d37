package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// CoinGecko API
	CoinGeckoURL    string
	CoinGeckoAPIKey string

	// Market data
	MarketDataCacheTTL time.Duration
	MarketDataTimeout  time.Duration

	// Cache
	CacheBackend    string // "memory" or "redis"
	CacheMaxEntries int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	// Telegram
	TelegramBotToken string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// CoinGecko defaults
		CoinGeckoURL:    getEnvOrDefault("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey: os.Getenv("COINGECKO_API_KEY"),

		// Market data defaults
		MarketDataCacheTTL: getDurationOrDefault("MARKETDATA_CACHE_TTL", 5*time.Minute),
		MarketDataTimeout:  getDurationOrDefault("MARKETDATA_TIMEOUT", 10*time.Second),

		// Cache defaults
		CacheBackend:    getEnvOrDefault("CACHE_BACKEND", CacheBackendMemory),
		CacheMaxEntries: getIntOrDefault("CACHE_MAX_ENTRIES", 1000),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getIntOrDefault("REDIS_DB", 0),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.CoinGeckoURL == "" {
		return fmt.Errorf("COINGECKO_API_URL cannot be empty")
	}

	if c.MarketDataCacheTTL <= 0 {
		return fmt.Errorf("MARKETDATA_CACHE_TTL must be positive, got %v", c.MarketDataCacheTTL)
	}

	if c.MarketDataTimeout <= 0 {
		return fmt.Errorf("MARKETDATA_TIMEOUT must be positive, got %v", c.MarketDataTimeout)
	}

	if c.CacheBackend != CacheBackendMemory && c.CacheBackend != CacheBackendRedis {
		return fmt.Errorf("CACHE_BACKEND must be 'memory' or 'redis', got %q", c.CacheBackend)
	}

	if c.CacheMaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive, got %d", c.CacheMaxEntries)
	}

	if c.CacheBackend == CacheBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR cannot be empty when CACHE_BACKEND is 'redis'")
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
