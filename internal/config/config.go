// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the tool's runtime settings.
type Config struct {
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the OS
// environment. Missing values fall back to defaults; a missing .env file is
// not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, using OS environment", "error", err)
	}

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
