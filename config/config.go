// Package config reads runtime settings for the tetrion binaries from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/plus3/tetrion/game"
)

// Prefix is prepended to every environment variable name.
const Prefix = "TETRION_"

// Config holds the settings shared by the player and the stress runner.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON"`

	Seed           uint64        `env:"SEED"`
	StartLevel     int           `env:"START_LEVEL"`
	DAS            time.Duration `env:"DAS" envDefault:"167ms"`
	ARR            time.Duration `env:"ARR" envDefault:"33ms"`
	LockDelay      time.Duration `env:"LOCK_DELAY" envDefault:"500ms"`
	SoftDropFactor int           `env:"SOFT_DROP_FACTOR" envDefault:"20"`
	LineTarget     int           `env:"LINE_TARGET" envDefault:"999"`
	Preview        int           `env:"PREVIEW" envDefault:"5"`
}

// Load reads the given dotenv files, or .env when none are named, and then
// parses the environment. Variables already set in the environment win over
// file values. A missing default .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load dotenv: %w", err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Preview < 0 {
		return Config{}, fmt.Errorf("parse env: %sPREVIEW must not be negative, got %d", Prefix, cfg.Preview)
	}
	return cfg, nil
}

// Game converts the settings into a controller configuration on the
// standard field.
func (c Config) Game() game.Config {
	g := game.DefaultConfig()
	g.Seed = c.Seed
	g.StartLevel = c.StartLevel
	g.DAS = c.DAS
	g.ARR = c.ARR
	g.LockDelay = c.LockDelay
	g.SoftDropFactor = c.SoftDropFactor
	g.LineTarget = c.LineTarget
	g.PreviewCount = c.Preview
	return g
}

// Logger builds a zerolog logger at the configured level. Output is human
// readable unless LogJSON is set.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
