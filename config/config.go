// Package config persists user preferences between runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const configName = "modcheck"

// Config holds the persisted preferences.
type Config struct {
	// ModFolder is the last folder the user scanned.
	ModFolder string `mapstructure:"mod_folder"`

	// WindowWidth and WindowHeight restore the main window size.
	WindowWidth  float32 `mapstructure:"window_width"`
	WindowHeight float32 `mapstructure:"window_height"`
}

// Default returns the configuration used when nothing is stored yet.
func Default() *Config {
	return &Config{
		WindowWidth:  1000,
		WindowHeight: 700,
	}
}

// Dir returns the directory the config file lives in, normally
// <user config dir>/modcheck.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, configName), nil
}

// Load reads the configuration from dir, or from Dir() when dir is empty.
// A missing file is not an error: defaults are returned.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		dir, err = Dir()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("mod_folder", Default().ModFolder)
	v.SetDefault("window_width", Default().WindowWidth)
	v.SetDefault("window_height", Default().WindowHeight)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to dir, or to Dir() when dir is empty,
// creating the directory if needed.
func (c *Config) Save(dir string) error {
	if dir == "" {
		var err error
		dir, err = Dir()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.Set("mod_folder", c.ModFolder)
	v.Set("window_width", c.WindowWidth)
	v.Set("window_height", c.WindowHeight)

	path := filepath.Join(dir, configName+".yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
