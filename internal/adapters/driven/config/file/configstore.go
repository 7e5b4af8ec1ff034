// Package file loads the datasets CLI configuration from a TOML file.
// Flags override file values; file values override defaults.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-level settings of the datasets CLI.
type Config struct {
	// Token is the opaque credential forwarded to the hub and to
	// metadata requests. Empty means anonymous.
	Token string `toml:"token"`

	// MaxWorkers caps concurrent origin metadata requests. Zero selects
	// the built-in default.
	MaxWorkers int `toml:"max_workers"`

	// AllowedExtensions is the default extension allow-list. Empty means
	// all extensions.
	AllowedExtensions []string `toml:"allowed_extensions"`

	// DataDir is where the resolution history database lives. Empty
	// selects ~/.datasets/data.
	DataDir string `toml:"data_dir"`
}

// DefaultPath returns the default config file location,
// ~/.datasets/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datasets", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the zero
// config without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
