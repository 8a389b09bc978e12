// Package config provides configuration management for the curvebootstrap
// CLI: default currency/method, output preferences, and log level, loaded
// from a TOML file plus environment overrides via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds curvebootstrap's CLI configuration.
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultsConfig holds the currency/method used when a CLI invocation
// doesn't specify one explicitly.
type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	Method   string `mapstructure:"method"`
}

// OutputConfig controls where and how curvebootstrap writes results.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "csv" or "json"
	Dir    string `mapstructure:"dir"`    // used by the batch subcommand
}

// LoggingConfig controls the CLI's structured logging.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/curvebootstrap"
	}
	return filepath.Join(home, ".config", "curvebootstrap")
}

// Default returns curvebootstrap's built-in defaults, used when no config
// file is present.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Currency: "USD", Method: "linear"},
		Output:   OutputConfig{Format: "csv", Dir: "."},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads config.toml from configDir (falling back to DefaultConfigDir
// when empty), seeded with Default()'s values, then applies
// CURVEBOOTSTRAP_-prefixed environment overrides.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("CURVEBOOTSTRAP")
	v.AutomaticEnv()

	v.SetDefault("defaults.currency", "USD")
	v.SetDefault("defaults.method", "linear")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.dir", ".")
	v.SetDefault("logging.level", "info")

	cfg := &Config{}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}
