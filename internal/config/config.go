// Package config provides configuration management for mcpconf using Viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// AppName is the application name used for config file naming.
const AppName = "mcpconf"

// Config represents the top-level configuration structure.
type Config struct {
	Version       int                       `mapstructure:"version" yaml:"version"`
	DefaultClient string                    `mapstructure:"default_client" yaml:"default_client"`
	Clients       map[string]ClientOverride `mapstructure:"clients" yaml:"clients"`
}

// ClientOverride contains configuration overrides for a specific client.
type ClientOverride struct {
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version:       1,
		DefaultClient: schema.ClientClaudeCode,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again resets any previously loaded state.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence). MCPCONF_CONFIG_DIR overrides
	// the XDG location, which tests rely on to isolate state.
	viper.AddConfigPath(".")
	if dir := os.Getenv("MCPCONF_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
	}

	// Environment variable support
	viper.SetEnvPrefix("MCPCONF")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_client", schema.ClientClaudeCode)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else if path != "" {
			if _, statErr := os.Stat(path); statErr != nil {
				return nil, errors.Wrapf(statErr, "config file not found at %s", path)
			}
			return nil, errors.Wrap(err, "reading config file")
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}
