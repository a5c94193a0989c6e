// Package config parses the termkit app configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the default name for the termkit configuration file.
const ConfigFilename = ".termkit.yml"

// Config is the app-level configuration: which palette to use, where a
// custom theme file lives, and how to log.
type Config struct {
	Version int `yaml:"version"`

	// Palette names a built-in palette; ignored when ThemeFile is set.
	Palette string `yaml:"palette"`
	// ThemeFile points at a custom token table in palette YAML.
	ThemeFile string `yaml:"theme_file"`
	// Platform overrides the host platform tag for this process.
	Platform string `yaml:"platform"`
	// Scheme pins the appearance ("light"/"dark"); empty means detect.
	Scheme string `yaml:"scheme"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Load loads the configuration from the default location under dir.
// A missing file is not an error: defaults apply.
func Load(dir string) (*Config, error) {
	return LoadFrom(filepath.Join(dir, ConfigFilename))
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", config.Version)
	}

	applyDefaults(&config)

	return &config, nil
}

func defaults() *Config {
	config := &Config{Version: 1}
	applyDefaults(config)

	return config
}

func applyDefaults(config *Config) {
	if config.Palette == "" {
		config.Palette = "catppuccin"
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if config.Log.MaxSizeMB == 0 {
		config.Log.MaxSizeMB = 10
	}

	if config.Log.MaxBackups == 0 {
		config.Log.MaxBackups = 3
	}
}
