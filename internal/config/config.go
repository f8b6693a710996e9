// Package config loads HexWars settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration.
type Config struct {
	// Seed for map generation. 0 means a time-based seed.
	Seed int64 `env:"HEXWARS_SEED" envDefault:"0"`
	// MapSize names a preset from presets.json (small, medium, large).
	MapSize string `env:"HEXWARS_MAP_SIZE" envDefault:"small"`
	// Shape overrides the preset's silhouette when set.
	Shape string `env:"HEXWARS_SHAPE"`
	// Players is the number of seats, clamped to 1..4 by the engine.
	Players int `env:"HEXWARS_PLAYERS" envDefault:"2"`

	LogFile  string `env:"HEXWARS_LOG_FILE" envDefault:"hexwars.log"`
	LogLevel string `env:"HEXWARS_LOG_LEVEL" envDefault:"info"`

	Telemetry        bool   `env:"HEXWARS_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_HEXWARS_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_HEXWARS_DATASET" envDefault:"hexwars"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error; variables may be set directly.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
