// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"material-quantity/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Resolver contains quantity resolution settings
	Resolver ResolverConfig `json:"resolver"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Database contains project store configuration
	Database DatabaseConfig `json:"database,omitempty"`

	// API contains API server configuration
	API APIConfig `json:"api,omitempty"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ResolverConfig contains resolution-related settings
type ResolverConfig struct {
	// DefaultWastePercent is the waste buffer applied when a schedule
	// or request does not specify one
	DefaultWastePercent float64 `json:"default_waste_percent"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowTraces prints calculation traces alongside quantities
	ShowTraces bool `json:"show_traces"`
}

// DatabaseConfig contains project store settings
type DatabaseConfig struct {
	// URL is the Postgres connection string
	URL string `json:"url,omitempty"`

	// MaxConnections caps the connection pool size
	MaxConnections int32 `json:"max_connections,omitempty"`
}

// APIConfig contains API server settings
type APIConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Resolver: ResolverConfig{
			DefaultWastePercent: 10,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowTraces:    true,
		},
		API: APIConfig{
			Addr: ":8487",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
