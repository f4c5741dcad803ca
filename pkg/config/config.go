// Package config holds runtime configuration for the AtomDB tools: the
// root data directory, the default dataset, and the query-server
// settings. Values come from an optional YAML file with ATOMDB_*
// environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultDataset is the dataset queried when none is named.
const DefaultDataset = "hci"

// Config represents the AtomDB configuration.
type Config struct {
	DataPath string `yaml:"data_path" env:"ATOMDB_DATAPATH"`
	Dataset  string `yaml:"dataset" env:"ATOMDB_DATASET"`
	Server   Server `yaml:"server"`
}

// Server contains the query-server configuration.
type Server struct {
	Bind   string `yaml:"bind" env:"ATOMDB_BIND"`
	Port   int    `yaml:"port" env:"ATOMDB_PORT"`
	APIKey string `yaml:"api_key" env:"ATOMDB_API_KEY"`
}

// DefaultConfig returns a default configuration: data under ./datasets,
// dataset "hci", server on localhost:8080.
func DefaultConfig() *Config {
	return &Config{
		DataPath: "./datasets",
		Dataset:  DefaultDataset,
		Server: Server{
			Bind: "127.0.0.1",
			Port: 8080,
		},
	}
}

// Load returns the configuration from the given YAML file, overlaid with
// any ATOMDB_* environment variables. An empty path skips the file and
// applies the environment over the defaults.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return config, nil
}

// Save writes the configuration to the specified path, creating the
// directory if needed.
func Save(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the per-user configuration path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./atomdb.yaml"
	}
	return filepath.Join(homeDir, ".config", "atomdb", "config.yaml")
}

// Exists checks if a configuration file exists.
func Exists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
