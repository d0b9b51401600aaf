package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/coat/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "coat.json"

	// DefaultInspectorAddr is the default inspector listen address.
	DefaultInspectorAddr = "localhost:7070"

	// DefaultNamespace is the default Prometheus metric namespace.
	DefaultNamespace = "coat"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultPasses is the default number of demo passes.
	DefaultPasses = 5

	// DefaultInterval is the default delay between demo passes.
	DefaultInterval = "500ms"
)

// Config represents coat.json.
type Config struct {
	// Inspector contains devtools server configuration.
	Inspector InspectorConfig `json:"inspector"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics"`

	// Log contains logging configuration.
	Log LogConfig `json:"log"`

	// Demo contains settings for the demo and serve commands.
	Demo DemoConfig `json:"demo"`

	configPath string
}

// InspectorConfig contains devtools server settings.
type InspectorConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`
}

// DemoConfig contains settings for the scripted demo app.
type DemoConfig struct {
	// Passes is the number of build passes the demo command runs.
	Passes int `json:"passes,omitempty"`

	// Interval is the delay between passes (e.g., "500ms").
	Interval string `json:"interval,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Inspector: InspectorConfig{
			Enabled: true,
			Addr:    DefaultInspectorAddr,
		},
		Metrics: MetricsConfig{Namespace: DefaultNamespace},
		Log:     LogConfig{Level: DefaultLogLevel},
		Demo: DemoConfig{
			Passes:   DefaultPasses,
			Interval: DefaultInterval,
		},
	}
}

// Load reads coat.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E011").
			WithDetail("Failed to read " + path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E011").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that coat.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E011").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E011").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Inspector.Addr == "" {
		c.Inspector.Addr = DefaultInspectorAddr
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Demo.Passes == 0 {
		c.Demo.Passes = DefaultPasses
	}
	if c.Demo.Interval == "" {
		c.Demo.Interval = DefaultInterval
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Demo.Passes < 1 {
		return errors.New("E010").
			WithDetailf("demo.passes must be at least 1, got %d", c.Demo.Passes)
	}
	d, err := time.ParseDuration(c.Demo.Interval)
	if err != nil {
		return errors.New("E010").
			WithDetailf("demo.interval %q is not a duration", c.Demo.Interval).
			WithSuggestion(`Use a Go duration such as "250ms" or "1s"`)
	}
	if d < 0 {
		return errors.New("E010").
			WithDetailf("demo.interval must not be negative, got %s", d)
	}
	if c.Inspector.Enabled && c.Inspector.Addr == "" {
		return errors.New("E010").
			WithDetail("inspector.addr is required when the inspector is enabled")
	}
	return nil
}

// Interval returns demo.interval parsed. Call Validate first; an invalid
// value yields the default.
func (c *Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.Demo.Interval)
	if err != nil {
		d, _ = time.ParseDuration(DefaultInterval)
	}
	return d
}

// LogLevel returns log.level as a slog level. An invalid value yields info.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("E010").
		WithDetailf("log.level %q is not one of debug, info, warn, error", s)
}
