// Package config provides the configuration loader for mclib-extractor.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "mclib-extractor.yaml"

var (
	// ErrInvalidWorkers is returned when workers is below 1.
	ErrInvalidWorkers = zerr.New("workers must be at least 1")

	// ErrEmptyDestination is returned when no destination directory is set.
	ErrEmptyDestination = zerr.New("destination must not be empty")
)

// Config holds the tool settings.
type Config struct {
	MinecraftDir string `yaml:"minecraft_dir"`
	Destination  string `yaml:"destination"`
	Download     bool   `yaml:"download"`
	Workers      int    `yaml:"workers"`
}

// Default returns the built-in settings. The launcher directory is
// $APPDATA/.minecraft when APPDATA is set, ~/.minecraft otherwise.
func Default() Config {
	return Config{
		MinecraftDir: DefaultMinecraftDir(),
		Destination:  ".",
		Download:     true,
		Workers:      1,
	}
}

// DefaultMinecraftDir returns the launcher directory for this user.
func DefaultMinecraftDir() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ".minecraft"
		}
		base = home
	}
	return filepath.Join(base, ".minecraft")
}

// Load returns Default overlaid with the YAML file at path. With an empty
// path DefaultFile is tried and silently ignored when absent; an explicit
// path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings for values the tool cannot run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return zerr.With(ErrInvalidWorkers, "workers", c.Workers)
	}
	if c.Destination == "" {
		return ErrEmptyDestination
	}
	return nil
}
