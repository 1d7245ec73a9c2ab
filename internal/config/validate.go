package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLevels, c.Log.Level)
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validFormats, c.Log.Format)
	}

	if c.Cache.Enabled() && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache is enabled (got %s)", c.Cache.TTL)
	}

	if err := c.Leads.validate(); err != nil {
		return fmt.Errorf("leads: %w", err)
	}

	if c.Catalog.RecommendationLimit <= 0 {
		return fmt.Errorf("catalog.recommendation_limit must be > 0 (got %d)", c.Catalog.RecommendationLimit)
	}

	return nil
}

func (l *LeadsConfig) validate() error {
	if l.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", l.RateLimitPerMinute)
	}
	if l.WebhookURL == "" {
		return nil
	}

	u, err := url.Parse(l.WebhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("webhook_url must be an absolute http(s) URL (got %q)", l.WebhookURL)
	}
	if l.WebhookTimeout <= 0 {
		return fmt.Errorf("webhook_timeout must be > 0 (got %s)", l.WebhookTimeout)
	}
	return nil
}
