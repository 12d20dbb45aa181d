package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DynamicConfig represents runtime-changeable configuration. The server
// keeps serving with its current settings when the overrides file is
// missing or invalid.
type DynamicConfig struct {
	Logging  LoggingOverrides `json:"logging"`
	Metadata ConfigMetadata   `json:"metadata"`
}

// LoggingOverrides holds runtime logging overrides
type LoggingOverrides struct {
	// Level overrides the process log level; empty keeps the current one
	Level string `json:"level"`
}

// ConfigMetadata holds metadata about the configuration
type ConfigMetadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// loadConfigFromFile reads and parses a dynamic configuration file
func loadConfigFromFile(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg DynamicConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// validate checks the override values that have constrained domains
func (c *DynamicConfig) validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
