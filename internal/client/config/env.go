package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envAPIBaseURL     = "PLACETRACK_API_URL"
	envSessionDBPath  = "PLACETRACK_SESSION_DB"
	envSearchDebounce = "PLACETRACK_SEARCH_DEBOUNCE"
)

// parseEnv overlays Config with values from the process environment. A
// local .env file, if present, is loaded first; real environment variables
// win over .env entries (godotenv does not override existing ones).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv(envSearchDebounce); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
}
