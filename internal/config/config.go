package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the API server.
type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogJSON     bool
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        strings.TrimSpace(os.Getenv("APP_PORT")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogJSON:     os.Getenv("LOG_JSON") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "task_manager.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}
