// Package config loads the optional per-user defaults file. Nothing in it
// is required; a missing file simply yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries the settings a user may pin in their defaults file.
type Config struct {
	// Color is the default color policy: auto, always, or never.
	Color string `yaml:"color"`

	Cut struct {
		// Delimiter is the default field delimiter for cut -f.
		Delimiter string `yaml:"delimiter"`
	} `yaml:"cut"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Color = "auto"
	c.Cut.Delimiter = "\t"
	return c
}

// Path returns the conventional location of the defaults file.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "unixish", "config.yaml")
}

// Load reads the defaults file at path, falling back to Default when the
// file does not exist. A file that exists but cannot be parsed is an
// error; silently ignoring it would hide typos from the user.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.Cut.Delimiter == "" {
		cfg.Cut.Delimiter = "\t"
	}
	return cfg, nil
}
