// Package config loads runtime settings for the prompt library CLI.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabasePath: path of the local document database file.
//   - HistoryLimit: how many history entries the history command shows by
//     default.
type Config struct {
	DatabasePath string
	HistoryLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "prompts.db"
	c.HistoryLimit = 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
