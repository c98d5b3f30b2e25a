// Package config provides configuration management for mcph using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mcph/mcph/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// DefaultClients are the clients targeted when --client is not given.
	// Empty means every installed client.
	DefaultClients []string `mapstructure:"default_clients" yaml:"default_clients"`

	// BackupRetention is how many config file backups to keep per client.
	BackupRetention int `mapstructure:"backup_retention" yaml:"backup_retention"`

	// BackupDir overrides the default backup location.
	BackupDir string `mapstructure:"backup_dir" yaml:"backup_dir"`

	// HistoryDir overrides where the snapshot history file lives.
	HistoryDir string `mapstructure:"history_dir" yaml:"history_dir"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))

	viper.SetEnvPrefix("MCPH")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_clients", []string{})
	viper.SetDefault("backup_retention", 5)
	viper.SetDefault("backup_dir", paths.BackupDir())
	viper.SetDefault("history_dir", paths.HistoryDir())
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
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	for _, name := range c.DefaultClients {
		if !paths.ValidClient(name) {
			return fmt.Errorf("invalid default client: %s", name)
		}
	}
	if c.BackupRetention < 0 {
		return fmt.Errorf("backup_retention must not be negative: %d", c.BackupRetention)
	}
	return nil
}
