// Package config provides functions for loading and saving pr-status defaults files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alan/pr-status/cmd"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to configuration keys to form environment variable names
const EnvPrefix = "PR_STATUS"

// DefaultLookbackDays is the lookback window used when nothing else is configured
const DefaultLookbackDays = 10

// DefaultConfigPath returns ~/.config/pr-status/config.yaml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pr-status.yaml"
	}
	return filepath.Join(home, ".config", "pr-status", "config.yaml")
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
	}

	// every key needs a default so AutomaticEnv applies during Unmarshal
	v.SetDefault("repositories", []string{})
	v.SetDefault("lookback_days", DefaultLookbackDays)
	v.SetDefault("author", "")
	v.SetDefault("format", string(cmd.FormatHTML))
	v.SetDefault("backend", cmd.BackendGH)
	v.SetDefault("open", true)
	v.SetDefault("output_dir", "")
	return v
}

// LoadConfig loads defaults, the file at filename if present, and PR_STATUS_* environment overrides
func LoadConfig(filename string) (*cmd.Config, error) {
	return load(newViper(true), filename)
}

// LoadConfigFile loads defaults and the file at filename if present, ignoring the environment.
// Used when the result is written back to disk.
func LoadConfigFile(filename string) (*cmd.Config, error) {
	return load(newViper(false), filename)
}

func load(v *viper.Viper, filename string) (*cmd.Config, error) {

	if filename != "" {
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	var config cmd.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.Repositories = cmd.NormalizeRepositories(config.Repositories)

	return &config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(filename string, config *cmd.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
