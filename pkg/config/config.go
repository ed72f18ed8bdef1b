package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AlsoSylv/samira/pkg/lcu"
	"github.com/AlsoSylv/samira/pkg/logging"
)

// Config is the top-level configuration file structure.
type Config struct {
	Discovery DiscoveryConfig    `yaml:"discovery"`
	Logging   logging.ZapOptions `yaml:"logging"`
}

// DiscoveryConfig configures how the client is located.
type DiscoveryConfig struct {
	// ClientProcessName and GameProcessName default to the stock names for
	// the current platform. Platforms without stock names require explicit
	// values.
	ClientProcessName string `yaml:"client_process_name,omitempty"`
	GameProcessName   string `yaml:"game_process_name,omitempty"`

	// ForceLockFile switches the primary strategy to the lock file.
	ForceLockFile bool `yaml:"force_lock_file,omitempty"`

	// Fallback retries discovery under the alternate strategy when the
	// failure suggests it could succeed. Pointer to distinguish unset from
	// false; defaults to true.
	Fallback *bool `yaml:"fallback,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// LoadFromFile loads configuration from a YAML file and applies defaults.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration %s: %w", filename, err)
	}

	setDefaults(&config)

	return &config, nil
}

// setDefaults applies default values to unset fields.
func setDefaults(config *Config) {
	defaultClient, defaultGame := lcu.DefaultProcessNames()
	if config.Discovery.ClientProcessName == "" {
		config.Discovery.ClientProcessName = defaultClient
	}
	if config.Discovery.GameProcessName == "" {
		config.Discovery.GameProcessName = defaultGame
	}
	if config.Discovery.Fallback == nil {
		fallback := true
		config.Discovery.Fallback = &fallback
	}

	defaultLogging := logging.DefaultZapOptions()
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogging.Level
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogging.Format
	}
	if config.Logging.Output == "" {
		config.Logging.Output = defaultLogging.Output
	}
}

// Validate checks the configuration after defaulting.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Discovery.ClientProcessName == "" {
		return fmt.Errorf("client_process_name is required, there is no default on this platform")
	}
	if config.Discovery.GameProcessName == "" {
		return fmt.Errorf("game_process_name is required, there is no default on this platform")
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s, valid levels: debug, info, warn, error", config.Logging.Level)
	}

	switch config.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s, valid formats: json, console", config.Logging.Format)
	}

	return nil
}
