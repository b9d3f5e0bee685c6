// Package config reads service settings from the environment.
package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"

	"payment-insights-go/internal/logger"
)

// Config holds runtime configuration.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DatasetPath         string        `envconfig:"DATASET_PATH" default:"User Perception of Digital Payment Platforms .csv"`
	DatasetURL          string        `envconfig:"DATASET_URL"`
	DatasetFetchTimeout time.Duration `envconfig:"DATASET_FETCH_TIMEOUT" default:"30s"`
	CatalogPath         string        `envconfig:"CATALOG_PATH"`

	Port           string        `envconfig:"PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	IdleTimeout    time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`

	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	ExportRateLimit int           `envconfig:"EXPORT_RATE_LIMIT" default:"20"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DatasetPath == "" && cfg.DatasetURL == "" {
		return nil, errors.New("one of DATASET_PATH or DATASET_URL must be set")
	}
	if cfg.ExportRateLimit <= 0 {
		return nil, errors.New("EXPORT_RATE_LIMIT must be positive")
	}
	return &cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c != nil && c.RedisAddr != ""
}

// LoggerOptions carries the logging settings into logger.NewWithOptions.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Environment: c.Environment,
		Level:       c.LogLevel,
	}
}
