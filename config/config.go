// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings. App-level preferences
// (currency, schedules) live in the database, not here.
type Config struct {
	Port       int
	DBPath     string
	CORSOrigin string
}

// Load reads .env if present, then the environment, falling back to
// sensible local-development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       envInt("PORT", 8080),
		DBPath:     envString("DB_PATH", "househelp.db"),
		CORSOrigin: envString("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
