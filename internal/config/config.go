// Package config loads runtime settings for the WebStash CLI. Values come
// from defaults, an optional JSON file (-c/-config) and command-line flags,
// in that order, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the WebStash CLI.
//
// Fields:
//   - DatabaseDSN: path (or SQLite DSN) of the local store.
//   - TipRotationInterval: how often the security-tip banner rotates.
type Config struct {
	DatabaseDSN         string
	TipRotationInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "webstash.db"
	c.TipRotationInterval = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
