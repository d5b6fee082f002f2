// Package config loads the builder's YAML configuration. Every field has
// a sensible default so running with no config file at all just works.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for the landing-page builder.
type Config struct {
	// DataDir is the root directory for the database, page assets, and
	// published output. Default: ~/.local/share/hackpage
	DataDir string `yaml:"data_dir"`
	// DBPath overrides the SQLite file location. Default: <DataDir>/hackpage.db
	DBPath string `yaml:"db_path"`

	Autosave AutosaveConfig `yaml:"autosave"`
	Publish  PublishConfig  `yaml:"publish"`
}

// AutosaveConfig controls the draft autosave scheduler.
type AutosaveConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`  // default: true
	Interval string `yaml:"interval,omitempty"` // e.g. "30s", "2m"; default: 30s
}

// PublishConfig controls where explicit saves write the public artifact.
type PublishConfig struct {
	// Dir receives <hackathonId>/index.html and style.css on every
	// publish; empty disables the on-disk copy (the artifact still goes
	// to the database).
	Dir string `yaml:"dir,omitempty"`
}

// Load reads the config at path. A missing file (or empty path) yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		homeDir, _ := os.UserHomeDir()
		c.DataDir = filepath.Join(homeDir, ".local", "share", "hackpage")
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "hackpage.db")
	}
}

// AssetDir is where page assets (hero backgrounds, sponsor logos) live.
func (c *Config) AssetDir() string {
	return filepath.Join(c.DataDir, "assets")
}

// AutosaveInterval returns the parsed flush interval, zero when autosave
// is disabled.
func (c *Config) AutosaveInterval() time.Duration {
	if c.Autosave.Enabled != nil && !*c.Autosave.Enabled {
		return 0
	}
	if c.Autosave.Interval == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(c.Autosave.Interval)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}
