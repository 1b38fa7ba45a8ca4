// Package config loads the optional relichelper.yaml. Every field has a
// default, so running with no config file at all is the common case.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRosterFile  = "characters.json"
	DefaultCatalogFile = "relics.json"
)

type Config struct {
	DataDir     string `yaml:"data_dir"`
	RosterFile  string `yaml:"roster_file"`
	CatalogFile string `yaml:"catalog_file"`
}

// DefaultPath returns the config file location under the user config
// directory, e.g. ~/.config/relichelper/relichelper.yaml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "relichelper", "relichelper.yaml"), nil
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := defaults(filepath.Dir(path))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	fill(cfg, filepath.Dir(path))

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func defaults(dir string) *Config {
	return &Config{
		DataDir:     dir,
		RosterFile:  DefaultRosterFile,
		CatalogFile: DefaultCatalogFile,
	}
}

func fill(cfg *Config, dir string) {
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = dir
	}
	if strings.TrimSpace(cfg.RosterFile) == "" {
		cfg.RosterFile = DefaultRosterFile
	}
	if strings.TrimSpace(cfg.CatalogFile) == "" {
		cfg.CatalogFile = DefaultCatalogFile
	}
}

func validate(cfg *Config) error {
	if filepath.Base(cfg.RosterFile) != cfg.RosterFile {
		return fmt.Errorf("roster_file must be a bare file name: %s", cfg.RosterFile)
	}
	if filepath.Base(cfg.CatalogFile) != cfg.CatalogFile {
		return fmt.Errorf("catalog_file must be a bare file name: %s", cfg.CatalogFile)
	}
	if cfg.RosterFile == cfg.CatalogFile {
		return fmt.Errorf("roster_file and catalog_file must differ: %s", cfg.RosterFile)
	}
	return nil
}
