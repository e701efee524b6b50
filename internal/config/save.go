package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes the configuration as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
