// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	UI     UIConfig     `yaml:"ui"`
}

// ServerConfig holds connection settings for the board API.
type ServerConfig struct {
	// URL is the base URL of the idea board API service.
	URL string `yaml:"url"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	// MinZoom and MaxZoom bound the canvas zoom factor.
	MinZoom float64 `yaml:"min_zoom,omitempty"`
	MaxZoom float64 `yaml:"max_zoom,omitempty"`

	// ZoomStep is the increment for keyboard zoom.
	ZoomStep float64 `yaml:"zoom_step,omitempty"`

	// HistoryLimit caps the undo stack.
	HistoryLimit int `yaml:"history_limit,omitempty"`

	// TimerMinutes is the default session timer length.
	TimerMinutes int `yaml:"timer_minutes,omitempty"`

	// Notifications enables desktop notifications when the timer ends.
	Notifications bool `yaml:"notifications"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "http://localhost:8000",
		},
		UI: UIConfig{
			MinZoom:       0.25,
			MaxZoom:       3.0,
			ZoomStep:      0.1,
			HistoryLimit:  50,
			TimerMinutes:  5,
			Notifications: true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "ideaboard")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize backfills zero values with defaults so a sparse config file
// cannot produce a zoom range of [0,0] or an empty server URL.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.UI.MinZoom <= 0 {
		c.UI.MinZoom = def.UI.MinZoom
	}
	if c.UI.MaxZoom <= c.UI.MinZoom {
		c.UI.MaxZoom = def.UI.MaxZoom
	}
	if c.UI.ZoomStep <= 0 {
		c.UI.ZoomStep = def.UI.ZoomStep
	}
	if c.UI.HistoryLimit <= 0 {
		c.UI.HistoryLimit = def.UI.HistoryLimit
	}
	if c.UI.TimerMinutes <= 0 {
		c.UI.TimerMinutes = def.UI.TimerMinutes
	}
}
