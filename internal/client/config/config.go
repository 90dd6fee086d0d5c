// Package config handles configuration for the placetrack client, layering
// defaults, environment variables (including a local .env file), an
// optional JSON file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the placetrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the placement backend.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - SearchDebounce: quiet interval before a search issues a request.
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.SessionDBPath = "placetrack.db"
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
