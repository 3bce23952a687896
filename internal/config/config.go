package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// telemetry
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// training
	ReferenceTimezone        string   `toml:"reference_timezone"`
	CleanupEnabled           bool     `toml:"cleanup_enabled"`
	CatalogCacheSizeMB       int      `toml:"catalog_cache_size_mb"`
	CatalogCacheTTLSeconds   int      `toml:"catalog_cache_ttl_seconds"`
	MutationsRateLimitPerMin int      `toml:"mutations_rate_limit_per_min"`
	AllowedOrigins           []string `toml:"allowed_origins"`
	SessionTokenTTLHours     int      `toml:"session_token_ttl_hours"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("env %s not configured", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReferenceTimezone == "" {
		c.ReferenceTimezone = "America/Sao_Paulo"
	}
	if c.CatalogCacheSizeMB <= 0 {
		c.CatalogCacheSizeMB = 8
	}
	if c.CatalogCacheTTLSeconds <= 0 {
		c.CatalogCacheTTLSeconds = 300
	}
	if c.MutationsRateLimitPerMin <= 0 {
		c.MutationsRateLimitPerMin = 120
	}
	if c.SessionTokenTTLHours <= 0 {
		c.SessionTokenTTLHours = 24 * 7
	}
}
