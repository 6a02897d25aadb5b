// Package config loads server configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	Addr   string
	DBPath string
	Env    string
}

// Load reads configuration from a .env file (if one exists in the
// working directory) and the environment, applying defaults for unset
// values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:   getenv("KATALOG_ADDR", ":8080"),
		DBPath: getenv("KATALOG_DB", "katalog.sqlite3"),
		Env:    getenv("KATALOG_ENV", "production"),
	}
}

// Development reports whether the server runs in development mode.
func (c Config) Development() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
