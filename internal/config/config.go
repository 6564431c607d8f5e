package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Ingest   IngestConfig
	LogLevel zerolog.Level
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// StoreConfig selects and configures the usage counter backend.
type StoreConfig struct {
	Backend       string
	KVURL         string
	KVToken       string
	MongoURI      string
	MongoDatabase string
	Timeout       time.Duration
}

type IngestConfig struct {
	DedupWindow time.Duration
}

// Load reads configuration from the environment. A .env file in the working directory
// is loaded first when present.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", 8080),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
			RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
		Store: StoreConfig{
			Backend:       strings.ToLower(getEnv("COUNTER_STORE", "auto")),
			KVURL:         getEnv("KV_REST_API_URL", ""),
			KVToken:       getEnv("KV_REST_API_TOKEN", ""),
			MongoURI:      getEnv("MONGO_URI", ""),
			MongoDatabase: getEnv("MONGO_DATABASE", "rankeo"),
			Timeout:       getEnvDuration("COUNTER_STORE_TIMEOUT", 800*time.Millisecond),
		},
		Ingest: IngestConfig{
			DedupWindow: getEnvDuration("METRICS_DEDUP_WINDOW", 500*time.Millisecond),
		},
		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	switch c.Store.Backend {
	case "auto", "memory", "redis":
	case "mongo":
		if c.Store.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo counter store")
		}
	default:
		return fmt.Errorf("invalid counter store: %s (must be auto, memory, redis or mongo)", c.Store.Backend)
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("counter store timeout must be positive")
	}
	if c.Ingest.DedupWindow <= 0 {
		return fmt.Errorf("dedup window must be positive")
	}
	return nil
}

func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
