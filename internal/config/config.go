// Package config loads server configuration from environment variables,
// optionally overlaid by a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Limits  LimitsConfig  `yaml:"limits" envconfig:"LIMITS"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"stdout"`
}

// LimitsConfig bounds request handling.
type LimitsConfig struct {
	RateLimitRPS   float64 `yaml:"rate_limit_rps" envconfig:"RATE_LIMIT_RPS" default:"100"`
	RateLimitBurst int     `yaml:"rate_limit_burst" envconfig:"RATE_LIMIT_BURST" default:"50"`
	// MaxGridCells rejects pathological payloads before the core sees them.
	MaxGridCells int `yaml:"max_grid_cells" envconfig:"MAX_GRID_CELLS" default:"65536"`
	// SmoothConcurrency bounds the rows a smoothing pass computes in
	// parallel.
	SmoothConcurrency int `yaml:"smooth_concurrency" envconfig:"SMOOTH_CONCURRENCY" default:"4"`
}

// TracingConfig controls span export.
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED" default:"false"`
}

// Load reads configuration from CALIB_* environment variables, then applies
// any overrides from the YAML file at path (empty path skips the file).
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CALIB", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(path, &cfg); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Limits.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit rps must be positive: %g", c.Limits.RateLimitRPS)
	}
	if c.Limits.MaxGridCells < 1 {
		return fmt.Errorf("max grid cells must be positive: %d", c.Limits.MaxGridCells)
	}
	if c.Limits.SmoothConcurrency < 1 {
		return fmt.Errorf("smooth concurrency must be positive: %d", c.Limits.SmoothConcurrency)
	}
	return nil
}
