// Package config handles loading and validating the catalogd configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Upstream dialects.
const (
	DialectDummyJSON = "dummyjson"
	DialectPlatzi    = "platzi"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// UpstreamConfig defines the remote catalog API settings.
type UpstreamConfig struct {
	Dialect    string          `yaml:"dialect"`  // dummyjson, platzi
	BaseURL    string          `yaml:"base_url"` // empty uses the dialect's public API
	Timeout    time.Duration   `yaml:"timeout"`
	FetchBatch int             `yaml:"fetch_batch"`
	MaxPages   int             `yaml:"max_pages"` // 0 = unlimited
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
	Breaker    BreakerConfig   `yaml:"breaker"`
}

// RateLimitConfig defines upstream rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 = no daily cap
}

// BreakerConfig defines the upstream circuit breaker.
type BreakerConfig struct {
	Disabled     bool          `yaml:"disabled"`
	MaxRequests  uint32        `yaml:"max_requests"`
	Interval     time.Duration `yaml:"interval"`
	Timeout      time.Duration `yaml:"timeout"`
	FailureRatio float64       `yaml:"failure_ratio"`
	MinRequests  uint32        `yaml:"min_requests"`
}

// CatalogConfig defines query engine behavior.
type CatalogConfig struct {
	DefaultPageSize   int      `yaml:"default_page_size"`
	MatchMode         string   `yaml:"match_mode"`         // word_prefix, substring; empty follows the dialect
	AllowedCategories []string `yaml:"allowed_categories"` // empty follows the dialect, ["*"] allows all
	Locale            string   `yaml:"locale"`
}

// TracingConfig defines OpenTelemetry export settings.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyUpstreamDefaults(&cfg.Upstream)
	applyCatalogDefaults(&cfg.Catalog)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyUpstreamDefaults(u *UpstreamConfig) {
	if u.Dialect == "" {
		u.Dialect = DialectDummyJSON
	}
	if u.Timeout == 0 {
		u.Timeout = 30 * time.Second
	}
	if u.FetchBatch == 0 {
		u.FetchBatch = 100
	}
	applyRateLimitDefaults(&u.RateLimit)
	applyBreakerDefaults(&u.Breaker)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 10.0
	}
	if r.Burst == 0 {
		r.Burst = 20
	}
}

func applyBreakerDefaults(b *BreakerConfig) {
	if b.MaxRequests == 0 {
		b.MaxRequests = 1
	}
	if b.Interval == 0 {
		b.Interval = 60 * time.Second
	}
	if b.Timeout == 0 {
		b.Timeout = 30 * time.Second
	}
	if b.FailureRatio == 0 {
		b.FailureRatio = 0.5
	}
	if b.MinRequests == 0 {
		b.MinRequests = 5
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.DefaultPageSize == 0 {
		c.DefaultPageSize = 30
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "catalogd"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	switch cfg.Upstream.Dialect {
	case DialectDummyJSON, DialectPlatzi:
	default:
		errs = append(errs, fmt.Errorf(
			"upstream.dialect must be one of: dummyjson, platzi (got %q)",
			cfg.Upstream.Dialect,
		))
	}
	if cfg.Upstream.BaseURL != "" {
		u, err := url.Parse(cfg.Upstream.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("upstream.base_url must be an absolute http(s) URL (got %q)",
				cfg.Upstream.BaseURL))
		}
	}
	if cfg.Upstream.FetchBatch < 1 {
		errs = append(errs, fmt.Errorf("upstream.fetch_batch must be positive"))
	}
	if cfg.Upstream.MaxPages < 0 {
		errs = append(errs, fmt.Errorf("upstream.max_pages must not be negative"))
	}
	if cfg.Upstream.RateLimit.PerSecond < 0 || cfg.Upstream.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Errorf("upstream.rate_limit values must not be negative"))
	}
	if cfg.Upstream.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("upstream.rate_limit.daily_limit must not be negative"))
	}
	if r := cfg.Upstream.Breaker.FailureRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("upstream.breaker.failure_ratio must be between 0 and 1 (got %g)", r))
	}

	if cfg.Catalog.DefaultPageSize < 1 {
		errs = append(errs, fmt.Errorf("catalog.default_page_size must be positive"))
	}
	switch cfg.Catalog.MatchMode {
	case "", "word_prefix", "substring":
	default:
		errs = append(errs, fmt.Errorf(
			"catalog.match_mode must be one of: word_prefix, substring (got %q)",
			cfg.Catalog.MatchMode,
		))
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}
	if r := cfg.Tracing.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_ratio must be between 0 and 1 (got %g)", r))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
