// Package config handles reading and writing ~/.replog/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for ~/.replog/config.yaml.
type Config struct {
	Version     int               `yaml:"version"`
	Server      ServerConfig      `yaml:"server"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
}

// ServerConfig points the client at the workout tracker backend.
type ServerConfig struct {
	URL string `yaml:"url"`
}

// SuggestionsConfig controls the exercise autocomplete behaviour.
type SuggestionsConfig struct {
	Limit      int `yaml:"limit"`
	DebounceMs int `yaml:"debounce_ms"`
}

// configFile is the path relative to the replog directory.
const replogDir = ".replog"
const configFile = "config.yaml"

// DefaultDir returns the per-user replog directory (~/.replog).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, replogDir), nil
}

// ReadConfig reads config.yaml from the given replog directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given replog directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			URL: "http://localhost:8000",
		},
		Suggestions: SuggestionsConfig{
			Limit:      10,
			DebounceMs: 300,
		},
	}
}
