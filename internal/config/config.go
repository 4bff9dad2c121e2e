package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataFileName   = "deadlines.json"
)

type Config struct {
	// DeadlinesFile is the path of the JSON data file holding every
	// category's deadlines.
	DeadlinesFile string `toml:"deadlines_file"`
}

func defaultConfig() Config {
	return Config{DeadlinesFile: DefaultDataFileName}
}

// DefaultPath is the config location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deadlinesbot", DefaultConfigFileName), nil
}

// LoadOrCreate reads the TOML config at path, writing the defaults there on
// first run. The bot token is never part of the config file; it stays in
// the environment.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DeadlinesFile == "" {
		cfg.DeadlinesFile = DefaultDataFileName
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
