package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Leads    LeadsConfig    `yaml:"leads"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy makes X-Forwarded-For and X-Real-Ip authoritative for the client address.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CacheConfig holds Redis settings for the read-through catalog cache.
// An empty Addr disables caching.
type CacheConfig struct {
	Addr     string        `yaml:"addr"     env:"CACHE_REDIS_ADDR"`
	Password string        `yaml:"password" env:"CACHE_REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"CACHE_REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"            env-default:"5m"`
	Prefix   string        `yaml:"prefix"   env:"CACHE_PREFIX"         env-default:"market:"`
}

// Enabled reports whether a Redis address is configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LeadsConfig holds settings for contact, offer and sell forms.
type LeadsConfig struct {
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"LEADS_RATE_LIMIT_PER_MINUTE" env-default:"10"`
	WebhookURL         string        `yaml:"webhook_url"           env:"LEADS_WEBHOOK_URL"`
	WebhookTimeout     time.Duration `yaml:"webhook_timeout"       env:"LEADS_WEBHOOK_TIMEOUT"       env-default:"5s"`
}

// CatalogConfig holds storefront catalog settings.
type CatalogConfig struct {
	RecommendationLimit int `yaml:"recommendation_limit" env:"CATALOG_RECOMMENDATION_LIMIT" env-default:"4"`
}
