package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Database
	DatabaseURL string
	SQLitePath  string

	// HTTP API
	HTTPAddr            string
	HTTPShutdownTimeout time.Duration

	// Planner defaults
	DailyBudgetMinutes int
	SessionMinutes     int
	BreakMinutes       int
	MaxSplitMinutes    int
	EfficiencyFactor   float64
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("TASKFLOW_LOG_LEVEL", "info"),
		LogFormat: getEnv("TASKFLOW_LOG_FORMAT", "text"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("TASKFLOW_SQLITE_PATH", defaultSQLitePath()),

		HTTPAddr:            getEnv("TASKFLOW_HTTP_ADDR", "0.0.0.0:8080"),
		HTTPShutdownTimeout: getDurationEnv("TASKFLOW_HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),

		DailyBudgetMinutes: getIntEnv("TASKFLOW_DAILY_BUDGET_MINUTES", 480),
		SessionMinutes:     getIntEnv("TASKFLOW_SESSION_MINUTES", 25),
		BreakMinutes:       getIntEnv("TASKFLOW_BREAK_MINUTES", 5),
		MaxSplitMinutes:    getIntEnv("TASKFLOW_MAX_SPLIT_MINUTES", 90),
		EfficiencyFactor:   getFloatEnv("TASKFLOW_EFFICIENCY_FACTOR", 0.8),
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

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".taskflow", "taskflow.db")
	}
	return filepath.Join(home, ".taskflow", "taskflow.db")
}
