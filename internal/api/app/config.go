package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer       string        // Issuer claim for session tokens (default: offmenu-api)
	Audience     string        // Audience claim for session tokens (default: offmenu)
	BaseURL      string        // Frontend origin magic links point at (default: http://localhost:3000)
	SessionTTL   time.Duration // Session token lifetime (default: 24h)
	SigningKey   string        // Optional: path to a PKCS8 Ed25519 PEM; empty generates an ephemeral key
	DatabaseFile string        // Path to SQLite database file (default: ./offmenu.db)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads configuration from the environment, with a local
// .env file layered underneath for development.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Issuer:               getEnvOrDefault("OFFMENU_ISSUER", "offmenu-api"),
		Audience:             getEnvOrDefault("OFFMENU_AUDIENCE", "offmenu"),
		BaseURL:              getEnvOrDefault("OFFMENU_BASE_URL", "http://localhost:3000"),
		SessionTTL:           getEnvDurationOrDefault("OFFMENU_SESSION_TTL", 24*time.Hour),
		SigningKey:           os.Getenv("OFFMENU_SIGNING_KEY_FILE"),
		DatabaseFile:         getEnvOrDefault("OFFMENU_DATABASE_FILE", "offmenu.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
