package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// Every environment variable is read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Database (optional; score history is disabled when URL is empty)
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Upstream market data provider
	Provider ProviderConfig

	// Engine
	Engine EngineConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Monitoring
	MetricsEnabled bool
	MetricsPort    string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// ProviderConfig holds upstream market-data provider configuration
type ProviderConfig struct {
	BaseURL     string
	Benchmark   string // benchmark ticker for CAPM (default SPY)
	Timeout     time.Duration
	RatePerSec  float64 // request rate limit against the provider
	RateBurst   int
	CacheTTL    time.Duration // computed-result cache lifetime
}

// EngineConfig holds computation engine defaults
type EngineConfig struct {
	DefaultPrecision int     // decimal places: 2, 4, 6 or 8
	RiskFreeRate     float64 // annual risk-free rate used by CAPM alpha
	MinTTMQuarters   int     // trailing quarters required before TTM alignment
}

// SchedulerConfig holds scheduled-job configuration
type SchedulerConfig struct {
	Enabled   bool
	Watchlist []string // tickers warmed into cache before market open
	WarmCron  string   // cron spec (with seconds) for the warm-up job
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		Provider: ProviderConfig{
			BaseURL:    getEnv("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
			Benchmark:  getEnv("PROVIDER_BENCHMARK", "SPY"),
			Timeout:    getEnvAsDuration("PROVIDER_TIMEOUT", "30s"),
			RatePerSec: getEnvAsFloat("PROVIDER_RATE_PER_SEC", 2.0),
			RateBurst:  getEnvAsInt("PROVIDER_RATE_BURST", 4),
			CacheTTL:   getEnvAsDuration("PROVIDER_CACHE_TTL", "24h"),
		},

		Engine: EngineConfig{
			DefaultPrecision: getEnvAsInt("ENGINE_DEFAULT_PRECISION", 4),
			RiskFreeRate:     getEnvAsFloat("ENGINE_RISK_FREE_RATE", 0.0),
			MinTTMQuarters:   getEnvAsInt("ENGINE_MIN_TTM_QUARTERS", 8),
		},

		Scheduler: SchedulerConfig{
			Enabled:   getEnvAsBool("SCHEDULER_ENABLED", false),
			Watchlist: getEnvAsList("SCHEDULER_WATCHLIST", nil),
			WarmCron:  getEnv("SCHEDULER_WARM_CRON", "0 0 8 * * MON-FRI"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		// Monitoring
		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		MetricsPort:    getEnv("METRICS_PORT", "9091"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.Engine.DefaultPrecision {
	case 2, 4, 6, 8:
	default:
		return fmt.Errorf("ENGINE_DEFAULT_PRECISION must be one of: 2, 4, 6, 8")
	}

	if c.Engine.MinTTMQuarters < 4 {
		return fmt.Errorf("ENGINE_MIN_TTM_QUARTERS must be at least 4")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToUpper(trimmed))
		}
	}
	return out
}
