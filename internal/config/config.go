package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

const (
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
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
	StoreBackend   string `toml:"store_backend"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// analytics
	Timezone             string `toml:"timezone"`
	AnalyticsCacheSizeMB int    `toml:"analytics_cache_size_mb"`

	ImportRateLimitPerMin int      `toml:"import_rate_limit_per_min"`
	AllowedOrigins        []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		if t.Development == nil {
			return nil, errors.New("development config missing")
		}
		t.Development.Environment = "development"
		return t.Development, nil
	case "prod", "production":
		if t.Production == nil {
			return nil, errors.New("production config missing")
		}
		t.Production.Environment = "production"
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config section for env,
// with defaults applied to every omitted value.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for in-memory TOML content.
func Parse(content, env string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.StoreBackend == "" {
		c.StoreBackend = StoreBackendMemory
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "gymtracker"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.AnalyticsCacheSizeMB == 0 {
		c.AnalyticsCacheSizeMB = 10
	}
	if c.ImportRateLimitPerMin == 0 {
		c.ImportRateLimitPerMin = 5
	}
}

// Validate reports every problem found, not only the first one.
func (c *Config) Validate() error {
	var err error
	if c.Port < 0 || c.Port > 65535 {
		err = multierr.Append(err, fmt.Errorf("port out of range: %d", c.Port))
	}
	switch c.StoreBackend {
	case StoreBackendRedis:
		if c.RedisHost == "" {
			err = multierr.Append(err, errors.New("redis store backend needs redis_host"))
		}
	case StoreBackendPostgres:
		if c.PostgresHost == "" {
			err = multierr.Append(err, errors.New("postgres store backend needs postgres_host"))
		}
	case StoreBackendMemory:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown store backend: %s", c.StoreBackend))
	}
	if _, locErr := time.LoadLocation(c.Timezone); locErr != nil {
		err = multierr.Append(err, fmt.Errorf("timezone [%s]: %w", c.Timezone, locErr))
	}
	if c.AnalyticsCacheSizeMB < 0 {
		err = multierr.Append(err, fmt.Errorf("negative analytics cache size: %d", c.AnalyticsCacheSizeMB))
	}
	return err
}

// Location returns the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
