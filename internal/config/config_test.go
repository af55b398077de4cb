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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoad_Success tests successful loading of a valid config file
func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: "debug"
  format: "json"

storage:
  backend: "file"
  path: "/var/lib/shades"

metrics:
  enabled: true
  textfile: "/var/lib/node_exporter/shades.prom"

scheme:
  threshold: 3
  shares: 5

output: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/var/lib/shades", cfg.Storage.Path)
	assert.Equal(t, "/var/lib/node_exporter/shades.prom", cfg.Metrics.Textfile)
	assert.Equal(t, 3, cfg.Scheme.Threshold)
	assert.Equal(t, 5, cfg.Scheme.Shares)
	assert.Equal(t, "json", cfg.Output)
}

// TestLoad_PartialUsesDefaults tests that omitted sections keep their defaults
func TestLoad_PartialUsesDefaults(t *testing.T) {
	path := writeConfig(t, "scheme:\n  threshold: 3\n  shares: 6\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, 3, cfg.Scheme.Threshold)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "logging: [not, a, map"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scheme:\n  threshold: 1\n"))
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SHADES_LOG_LEVEL", "warn")
	t.Setenv("SHADES_LOG_FORMAT", "json")
	t.Setenv("SHADES_DATA_DIR", "/tmp/shades-data")
	t.Setenv("SHADES_STORAGE_BACKEND", "memory")
	t.Setenv("SHADES_METRICS_TEXTFILE", "/tmp/shades.prom")
	t.Setenv("SHADES_THRESHOLD", "4")
	t.Setenv("SHADES_SHARES", "not-a-number")

	cfg := Default()
	ApplyEnvOverrides(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/shades-data", cfg.Storage.Path)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/shades.prom", cfg.Metrics.Textfile)
	assert.Equal(t, 4, cfg.Scheme.Threshold)
	// invalid value keeps the default
	assert.Equal(t, 4, cfg.Scheme.Shares)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "memory backend without path", mutate: func(c *Config) { c.Storage = StorageConfig{Backend: "memory"} }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "s3" }, wantErr: true},
		{name: "file backend without path", mutate: func(c *Config) { c.Storage.Path = "" }, wantErr: true},
		{name: "threshold one", mutate: func(c *Config) { c.Scheme.Threshold = 1 }, wantErr: true},
		{name: "shares below threshold", mutate: func(c *Config) { c.Scheme.Shares = 1 }, wantErr: true},
		{name: "shares beyond field", mutate: func(c *Config) { c.Scheme.Shares = 251 }, wantErr: true},
		{name: "bad output", mutate: func(c *Config) { c.Output = "table" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
