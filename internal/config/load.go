package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no path is given.
const DefaultConfigFile = "wobblesim.yaml"

// Load builds the configuration with priority: defaults < file < flags.
// An empty path falls back to DefaultConfigFile when it exists.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if flags != nil {
		flags.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile merges a YAML file over the existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
