// Package config loads the runner configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Tick    TickConfig    `yaml:"tick"`
	Clock   ClockConfig   `yaml:"clock"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// TickConfig controls how often, and how many times, the root is updated.
type TickConfig struct {
	Interval time.Duration `yaml:"interval"`
	// Max caps the number of ticks. Zero means no limit.
	Max int `yaml:"max"`
}

// ClockConfig controls the time source handed to time-sensitive nodes.
type ClockConfig struct {
	// Scale speeds up (>1) or slows down (<1) tree time relative to wall time.
	Scale float64 `yaml:"scale"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, if set, receives logs instead of stderr.
	File string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables the endpoint.
	Addr string `yaml:"addr"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Tick:  TickConfig{Interval: 100 * time.Millisecond},
		Clock: ClockConfig{Scale: 1},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load loads configuration from the default config file path.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads configuration from path. A missing file yields the
// defaults.
//
// SECURITY: the final path component must not be a symlink, so a config path
// cannot be pointed at an arbitrary file.
func LoadFromPath(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg, err := LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader loads configuration from r, on top of the defaults. Unknown
// keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Tick.Interval <= 0 {
		errs = append(errs, fmt.Errorf("tick.interval must be positive, got %s", c.Tick.Interval))
	}
	if c.Tick.Max < 0 {
		errs = append(errs, fmt.Errorf("tick.max must not be negative, got %d", c.Tick.Max))
	}
	if c.Clock.Scale <= 0 {
		errs = append(errs, fmt.Errorf("clock.scale must be positive, got %v", c.Clock.Scale))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}
