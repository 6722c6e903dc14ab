package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

type LogConfig struct {
	Path       string `json:"path"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	// Level is the structural parameter: grid side = Level*Level.
	Level int `json:"level"`
	// Hardness seeds the difficulty selector on the new-game screen.
	Hardness int       `json:"hardness"`
	Log      LogConfig `json:"log"`
}

func Default() *Config {
	return &Config{
		Level:    3,
		Hardness: 1,
		Log: LogConfig{
			Path:       "sudoku.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads a JSON config; a missing file is not an error, it just
// means defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"level":     c.Level,
		"hardness":  c.Hardness,
		"log_path":  c.Log.Path,
		"log_level": c.Log.Level,
	}
}
