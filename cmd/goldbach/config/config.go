// Package config holds user preferences for the goldbach explorer, stored
// as JSON in a project-local .goldbach directory with a home-level fallback.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoggingConfig gates the categorized debug file logging.
type LoggingConfig struct {
	Debug      bool            `json:"debug,omitempty"`
	Categories map[string]bool `json:"categories,omitempty"`
}

// Config holds user preferences.
type Config struct {
	Theme string `json:"theme"` // "light" or "dark"

	// MaxNumber is the practical ceiling for interactive inputs. Trial
	// division is O(sqrt n) per check; beyond the low hundred-thousands a
	// range analysis stops feeling interactive, so the presentation layer
	// refuses larger inputs with a hint instead of stalling.
	MaxNumber int `json:"max_number"`

	// Workers bounds the parallel range analysis; 1 keeps it sequential.
	Workers int `json:"workers"`

	// LegendLimit hides the scatter legend above this many even numbers.
	LegendLimit int `json:"legend_limit"`

	// ChartWidth/ChartHeight size the scatter plot grid.
	ChartWidth  int `json:"chart_width"`
	ChartHeight int `json:"chart_height"`

	Logging LoggingConfig `json:"logging,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:       "light",
		MaxNumber:   100000,
		Workers:     1,
		LegendLimit: 10,
		ChartWidth:  60,
		ChartHeight: 20,
	}
}

// dirOverride, when set, bypasses the project-local and home resolution.
var dirOverride string

// SetDir overrides the storage directory for the whole process. An empty
// value restores the default resolution.
func SetDir(dir string) {
	dirOverride = dir
}

// Dir returns the directory where config, stats, and logs are stored.
func Dir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}

	// Prefer a project-local .goldbach directory if present or creatable.
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".goldbach")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".goldbach"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk, falling back to defaults when the
// file is absent or unreadable. Unset numeric fields fall back per-field so
// partial configs stay valid.
func Load() (Config, error) {
	path, err := File()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.MaxNumber <= 0 {
		c.MaxNumber = def.MaxNumber
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.LegendLimit <= 0 {
		c.LegendLimit = def.LegendLimit
	}
	if c.ChartWidth <= 0 {
		c.ChartWidth = def.ChartWidth
	}
	if c.ChartHeight <= 0 {
		c.ChartHeight = def.ChartHeight
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
