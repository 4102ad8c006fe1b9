// Package config assembles runtime settings for the FileVault CLI from
// defaults, an optional JSON file, and command-line flags. Later sources
// take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the FileVault CLI.
//
// Fields:
//   - DatabasePath: path (or DSN) of the SQLite snapshot store.
//   - KeyLength: length of generated encryption keys.
//   - SaveRetryDelay: pause before the single retry of a failed snapshot save.
type Config struct {
	DatabasePath   string
	KeyLength      int
	SaveRetryDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "vault.db"
	c.KeyLength = 16
	c.SaveRetryDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
