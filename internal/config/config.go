// Package config handles YAML configuration parsing.
package config

import (
	"fmt"
	"os"

	"alohatrace/internal/metrics"
	"alohatrace/internal/radio"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Radio      radio.Params        `yaml:"radio"`
	Thresholds *metrics.Thresholds `yaml:"thresholds,omitempty"`
}

// LoadConfig reads and parses a YAML configuration file. Radio fields the
// file leaves unset keep the default modem parameters.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{Radio: radio.DefaultParams()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
