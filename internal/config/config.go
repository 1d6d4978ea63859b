package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	GeminiAPIKey         string
	GeminiModel          string
	ChecklistWorkerCount int
	ChecklistQueueSize   int
	ForecastDays         int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:focusflow.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		GeminiAPIKey:         envOr("GEMINI_API_KEY", ""),
		GeminiModel:          envOr("GEMINI_MODEL", "gemini-2.5-flash"),
		ChecklistWorkerCount: envIntOr("CHECKLIST_WORKER_COUNT", 1),
		ChecklistQueueSize:   envIntOr("CHECKLIST_QUEUE_SIZE", 16),
		ForecastDays:         envIntOr("FORECAST_DAYS", 7),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.ChecklistWorkerCount <= 0 {
		problems = append(problems, "CHECKLIST_WORKER_COUNT must be positive")
	}
	if c.ChecklistQueueSize <= 0 {
		problems = append(problems, "CHECKLIST_QUEUE_SIZE must be positive")
	}
	if c.ForecastDays <= 0 {
		problems = append(problems, "FORECAST_DAYS must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
