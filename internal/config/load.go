package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load resolves the configuration with priority: defaults < preset
// file < flags. presetPath may be empty.
func Load(presetPath string, apply func(*Config)) (*Config, error) {
	cfg := Default()
	if presetPath != "" {
		if err := loadFromFile(cfg, presetPath); err != nil {
			return nil, fmt.Errorf("loading preset from %s: %w", presetPath, err)
		}
	}
	if apply != nil {
		apply(cfg)
	}
	return cfg, nil
}

// loadFromFile merges a YAML preset file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
