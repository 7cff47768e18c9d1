// Package config loads Hasami's retention parameters using Viper.
//
// Precedence (lowest to highest): built-in defaults, HASAMI_*
// environment variables, user config (~/.hasami/hasami.toml), then
// project config (hasami.toml found by walking up from the working
// directory).
// The retention core itself takes plain ints; this package exists so
// collaborators resolve (base, retain) the same way everywhere.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/samalone/Hasami/errors"
)

// Config holds the retention parameters.
type Config struct {
	// Base is the positional base used for digit bucketing.
	Base int `mapstructure:"base"`
	// Retain is the number of items to keep per pruning pass.
	Retain int `mapstructure:"retain"`
}

// Validate fails fast on parameters the retention core would reject.
func (c *Config) Validate() error {
	if c.Base <= 1 {
		return errors.Wrapf(errors.ErrInvalidBase, "base %d", c.Base)
	}
	if c.Retain <= 0 {
		return errors.Wrapf(errors.ErrInvalidRetainCount, "retain %d", c.Retain)
	}
	return nil
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base", 2)    // binary bucketing halves each era
	v.SetDefault("retain", 10) // keep 10 items per pruning pass
}

// Load reads configuration from the standard locations and validates it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HASAMI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	mergeConfigFiles(v)
	return LoadWithViper(v)
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// LoadWithViper loads and validates configuration from a provided Viper
// instance. Load and LoadFromFile both funnel through here; embedders
// with their own config plumbing can call it directly.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// findProjectConfig searches for hasami.toml by walking up the directory
// tree. Returns the first path found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, "hasami.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// mergeConfigFiles merges configuration files in precedence order:
// user < project.
func mergeConfigFiles(v *viper.Viper) {
	var configPaths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(homeDir, ".hasami", "hasami.toml"))
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")
		if err := fileViper.ReadInConfig(); err == nil {
			for key, value := range fileViper.AllSettings() {
				v.Set(key, value)
			}
		}
	}
}
