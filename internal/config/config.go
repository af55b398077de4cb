// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shades.
//
// go-shades is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeremyhahn/go-shades/pkg/gf251"
	"github.com/jeremyhahn/go-shades/pkg/logging"
)

// Config represents the complete go-shades configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
	Scheme  SchemeConfig  `yaml:"scheme" mapstructure:"scheme"`
	Output  string        `yaml:"output" mapstructure:"output"`
}

// LoggingConfig controls logging behavior
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// StorageConfig selects where share sets are kept
type StorageConfig struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // file, memory
	Path    string `yaml:"path" mapstructure:"path"`
}

// MetricsConfig controls metrics collection
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Textfile, when set, receives the Prometheus text exposition after each command
	Textfile string `yaml:"textfile" mapstructure:"textfile"`
}

// SchemeConfig holds the default threshold and share count
type SchemeConfig struct {
	Threshold int `yaml:"threshold" mapstructure:"threshold"`
	Shares    int `yaml:"shares" mapstructure:"shares"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Storage: StorageConfig{Backend: "file", Path: filepath.Join(home, ".shades")},
		Metrics: MetricsConfig{Enabled: true},
		Scheme:  SchemeConfig{Threshold: 2, Shares: 4},
		Output:  "text",
	}
}

// Load reads configuration from a YAML file on top of the defaults and
// applies environment variable overrides
func Load(path string) (*Config, error) {
	// #nosec G304 - Config file path is provided by admin/user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies SHADES_* environment variable overrides
func ApplyEnvOverrides(cfg *Config) {
	if level := os.Getenv("SHADES_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("SHADES_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	if dataDir := os.Getenv("SHADES_DATA_DIR"); dataDir != "" {
		cfg.Storage.Path = dataDir
	}
	if backend := os.Getenv("SHADES_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if textfile := os.Getenv("SHADES_METRICS_TEXTFILE"); textfile != "" {
		cfg.Metrics.Textfile = textfile
	}
	overrideInt("SHADES_THRESHOLD", &cfg.Scheme.Threshold)
	overrideInt("SHADES_SHARES", &cfg.Scheme.Shares)
}

func overrideInt(name string, target *int) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logging.DefaultLogger().Warnf("invalid %s value %q, using %d: %v", name, raw, *target, err)
		return
	}
	*target = v
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logging.Format)
	}

	switch c.Storage.Backend {
	case "memory":
	case "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path must be specified for the file backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be file or memory)", c.Storage.Backend)
	}

	if c.Scheme.Threshold < 2 {
		return fmt.Errorf("invalid threshold: %d (must be at least 2)", c.Scheme.Threshold)
	}
	if c.Scheme.Shares < c.Scheme.Threshold || c.Scheme.Shares >= gf251.Modulus {
		return fmt.Errorf("invalid share count: %d (must be between threshold %d and %d)",
			c.Scheme.Shares, c.Scheme.Threshold, gf251.Modulus-1)
	}

	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format: %s (must be text or json)", c.Output)
	}
	return nil
}
