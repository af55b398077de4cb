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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeremyhahn/go-shades/internal/config"
	"github.com/jeremyhahn/go-shades/pkg/logging"
	"github.com/jeremyhahn/go-shades/pkg/metrics"
	"github.com/jeremyhahn/go-shades/pkg/shareset"
	"github.com/jeremyhahn/go-shades/pkg/storage"
	"github.com/jeremyhahn/go-shades/pkg/storage/file"
	"github.com/spf13/viper"
)

// Flag names shared between cobra and viper.
const (
	flagConfig          = "config"
	flagOutput          = "output"
	flagVerbose         = "verbose"
	flagDataDir         = "data-dir"
	flagStorage         = "storage"
	flagMetricsTextfile = "metrics-textfile"
)

// envBindings maps persistent flags to the environment variables that may
// set them.
var envBindings = map[string]string{
	flagConfig:          "SHADES_CONFIG",
	flagOutput:          "SHADES_OUTPUT",
	flagVerbose:         "SHADES_VERBOSE",
	flagDataDir:         "SHADES_DATA_DIR",
	flagStorage:         "SHADES_STORAGE_BACKEND",
	flagMetricsTextfile: "SHADES_METRICS_TEXTFILE",
}

// Config holds the resolved CLI state for one invocation
type Config struct {
	// Settings is the merged file, environment and flag configuration
	Settings *config.Config

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables debug logging
	Verbose bool

	logger  *logging.Logger
	backend storage.Backend
}

// NewConfig creates a CLI config holding the built-in defaults
func NewConfig() *Config {
	settings := config.Default()
	return &Config{
		Settings:     settings,
		OutputFormat: settings.Output,
		logger:       logging.Discard(),
	}
}

// load resolves settings in increasing precedence: defaults, config file,
// environment, then explicitly set flags.
func (c *Config) load(v *viper.Viper, stderr io.Writer) error {
	var settings *config.Config
	if path := v.GetString(flagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		settings = loaded
	} else {
		settings = config.Default()
		config.ApplyEnvOverrides(settings)
	}

	if v.IsSet(flagOutput) {
		settings.Output = strings.ToLower(v.GetString(flagOutput))
	}
	if v.IsSet(flagDataDir) {
		settings.Storage.Path = v.GetString(flagDataDir)
	}
	if v.IsSet(flagStorage) {
		settings.Storage.Backend = v.GetString(flagStorage)
	}
	if v.IsSet(flagMetricsTextfile) {
		settings.Metrics.Textfile = v.GetString(flagMetricsTextfile)
	}
	c.Verbose = v.GetBool(flagVerbose)
	if c.Verbose {
		settings.Logging.Level = "debug"
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c.Settings = settings
	c.OutputFormat = settings.Output
	c.logger = logging.New(stderr, settings.Logging.Level, settings.Logging.Format)

	if settings.Metrics.Enabled {
		metrics.Enable()
	} else {
		metrics.Disable()
	}
	return nil
}

// Backend returns the storage backend, opening it on first use
func (c *Config) Backend() (storage.Backend, error) {
	if c.backend != nil {
		return c.backend, nil
	}

	switch c.Settings.Storage.Backend {
	case "memory":
		c.backend = storage.NewMemory()
	case "file":
		fs, err := file.New(c.Settings.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
		c.backend = fs
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", c.Settings.Storage.Backend)
	}
	c.logger.Debugf("opened %s storage", c.Settings.Storage.Backend)
	return c.backend, nil
}

// Repository returns a share set repository over the configured backend
func (c *Config) Repository() (*shareset.Repository, error) {
	backend, err := c.Backend()
	if err != nil {
		return nil, err
	}
	return shareset.NewRepository(backend), nil
}

// Logger returns the logger configured for this invocation
func (c *Config) Logger() *logging.Logger {
	return c.logger
}

// Close flushes the metrics textfile, if configured, and releases storage
func (c *Config) Close() error {
	var firstErr error
	if path := c.Settings.Metrics.Textfile; path != "" && metrics.IsEnabled() {
		if err := metrics.WriteTextfile(path); err != nil {
			firstErr = fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if c.backend != nil {
		if err := c.backend.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.backend = nil
	}
	return firstErr
}
