// SPDX-License-Identifier: MIT

// Package config loads host configuration and session scripts from TOML.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/linear"
)

// Default values for fields absent from the file.
const (
	DefaultSeed     = linear.DefaultSeed
	DefaultLogLevel = "info"
	DefaultMaxRun   = linear.DefaultMaxRun
)

// ErrInvalid marks a configuration value that parsed but is unusable.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the knobs a host exposes for an Engine.
type Config struct {
	Seed     uint64
	LogLevel string
	MaxRun   int
}

type fileConfig struct {
	Seed     int64  `toml:"seed"`
	LogLevel string `toml:"log_level"`
	MaxRun   int64  `toml:"max_run"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:     DefaultSeed,
		LogLevel: DefaultLogLevel,
		MaxRun:   DefaultMaxRun,
	}
}

// Load reads path and overlays every defined key on Default().
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return fromFile(raw, meta)
}

// Parse is Load over an in-memory document.
func Parse(doc string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(doc, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := Default()

	if meta.IsDefined("seed") {
		if raw.Seed < 0 {
			return Config{}, fmt.Errorf("seed %d: %w", raw.Seed, ErrInvalid)
		}
		cfg.Seed = uint64(raw.Seed)
	}

	if meta.IsDefined("log_level") {
		lvl := strings.ToLower(strings.TrimSpace(raw.LogLevel))
		if _, err := zerolog.ParseLevel(lvl); err != nil {
			return Config{}, fmt.Errorf("log_level %q: %w", raw.LogLevel, ErrInvalid)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("max_run") {
		if raw.MaxRun < 1 || raw.MaxRun > DefaultMaxRun {
			return Config{}, fmt.Errorf("max_run %d: %w", raw.MaxRun, ErrInvalid)
		}
		cfg.MaxRun = int(raw.MaxRun)
	}

	return cfg, nil
}

// Level returns the zerolog level for LogLevel (info when empty).
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

// Options turns the configuration into Engine options.
func (c Config) Options(log zerolog.Logger) []linear.Option {
	maxRun := c.MaxRun
	if maxRun < 1 {
		maxRun = DefaultMaxRun
	}

	return []linear.Option{
		linear.WithSeed(c.Seed),
		linear.WithMaxRun(maxRun),
		linear.WithLogger(log.Level(c.Level())),
	}
}
