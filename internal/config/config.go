package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		// Path is the store file every collection is persisted in.
		Path string `yaml:"path" env:"MILTON_STORAGE_PATH"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level" env:"MILTON_LOG_LEVEL"`
		Format string `yaml:"format" env:"MILTON_LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional yaml file and environment
// variables, on top of the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Storage.Path = "milton.db"
	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// validateConfig checks the configuration for required values
func validateConfig(config *Config) error {
	if config.Storage.Path == "" {
		return fmt.Errorf("storage path cannot be empty")
	}

	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", config.Logging.Format)
	}
	return nil
}
