// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `validate:"required,numeric"`

	// Sessions idle longer than SessionTTL are discarded; zero keeps them
	// until they are closed.
	SessionTTL    time.Duration `validate:"gte=0"`
	SweepInterval time.Duration `validate:"gt=0"`

	// PDF export
	ExportTimeout time.Duration `validate:"gt=0"`
	ChromePath    string

	// Export job log; empty disables it. Accepts URLs and key=value DSNs.
	ExportsDatabaseURL string

	SummarySoftLimit int `validate:"gt=0"`
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "3000"),
		SessionTTL:         getEnvDuration("SESSION_TTL", 30*time.Minute),
		SweepInterval:      getEnvDuration("SWEEP_INTERVAL", time.Minute),
		ExportTimeout:      getEnvDuration("EXPORT_TIMEOUT", 60*time.Second),
		ChromePath:         os.Getenv("CHROME_PATH"),
		ExportsDatabaseURL: os.Getenv("EXPORTS_DATABASE_URL"),
		SummarySoftLimit:   getEnvInt("SUMMARY_SOFT_LIMIT", 500),
	}
}

// Validate checks value ranges and that the exports DSN parses.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.ExportsDatabaseURL != "" {
		if _, err := pgxpool.ParseConfig(c.ExportsDatabaseURL); err != nil {
			return fmt.Errorf("config error: EXPORTS_DATABASE_URL: %w", err)
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
