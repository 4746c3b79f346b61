package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string
	UserID   int64
	Timezone string

	// Database
	DatabaseDriver string
	SQLitePath     string
	DatabaseURL    string

	// Scheduler
	MaxSchedulingWeeks int
	AllowSplitting     bool
}

// Load loads configuration from environment variables, with a .env file as
// an optional source for development.
func Load() (*Config, error) {
	// Load .env if present; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		UserID:   getInt64Env("CHRONO_USER_ID", 1),
		Timezone: getEnv("CHRONO_TIMEZONE", "UTC"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		SQLitePath:     getEnv("SQLITE_PATH", defaultSQLitePath()),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		MaxSchedulingWeeks: getIntEnv("CHRONO_MAX_WEEKS", 12),
		AllowSplitting:     getBoolEnv("CHRONO_ALLOW_SPLITTING", true),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".chrono", "chrono.db")
	}
	return filepath.Join(home, ".chrono", "chrono.db")
}
