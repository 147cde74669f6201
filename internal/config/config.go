package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/remember.yaml"

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
}

// LoadConfig reads the YAML config file named by REMEMBER_CONFIG, falling
// back to config/remember.yaml. A missing file is not an error; the zero
// config resolves to the defaults.
func LoadConfig() (*Config, error) {
	path := os.Getenv("REMEMBER_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		slog.Error("Error opening config file", "path", path, "error", err)
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Error reading config file", "path", path, "error", err)
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		slog.Error("Error parsing YAML", "path", path, "error", err)
		return nil, err
	}

	return &config, nil
}

// StorePath resolves the database location. Precedence: DATABASE_PATH env,
// then the config file, then ~/.buddy/buddy.db.
func (c *Config) StorePath() (string, error) {
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		return path, nil
	}
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".buddy", "buddy.db"), nil
}
