package config

import (
	"fmt"
	"net/url"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns %d exceeds max_conns %d",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server: rate_limit_per_minute must be >= 0 (got %d)",
			c.Server.RateLimitPerMinute)
	}

	u, err := url.Parse(c.Translator.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("translator: base_url %q is not an absolute URL", c.Translator.BaseURL)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log: level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log: format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}
