package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseConfig reads, validates and parses a rendered configuration file
func ParseConfig(configFile string) (*Config, error) {
	if err := Validate(configFile); err != nil {
		return nil, err
	}

	file, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
