// Package config loads runtime settings from the environment.
//
// Variables (defaults in parentheses):
//
//	LOG_LEVEL         zerolog level written to stderr (warn)
//	GUESS_MIN         lowest possible target (1)
//	GUESS_MAX         highest possible target (100)
//	GUESS_MODE        "loop" plays until a correct guess, "once" takes a single guess (loop)
//	GUESS_CLEAR       clear the screen after each parsed guess: auto|always|never (auto)
//	GUESS_COLOR       colour result lines: auto|always|never (auto)
//	GUESS_REVEAL      log the target at debug level (false)
//	GUESS_DAILY_SALT  when set, derive the target from today's date and this salt
//	GUESS_SEED        PRNG seed; 0 seeds from the clock (0)
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/guessgame/internal/game"
)

const (
	ModeLoop = "loop"
	ModeOnce = "once"
)

const (
	Auto   = "auto"
	Always = "always"
	Never  = "never"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	Min       int    `env:"GUESS_MIN" envDefault:"1"`
	Max       int    `env:"GUESS_MAX" envDefault:"100"`
	Mode      string `env:"GUESS_MODE" envDefault:"loop"`
	Clear     string `env:"GUESS_CLEAR" envDefault:"auto"`
	Color     string `env:"GUESS_COLOR" envDefault:"auto"`
	Reveal    bool   `env:"GUESS_REVEAL"`
	DailySalt string `env:"GUESS_DAILY_SALT"`
	Seed      uint64 `env:"GUESS_SEED"`
}

// Load parses the environment into a validated Config.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("config: parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Range is the configured target interval.
func (c Config) Range() game.Range { return game.Range{Min: c.Min, Max: c.Max} }

// Level returns the parsed log level.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Validate checks cross-field constraints and enum values.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	switch c.Mode {
	case ModeLoop, ModeOnce:
	default:
		return fmt.Errorf("config: GUESS_MODE %q: want %s or %s", c.Mode, ModeLoop, ModeOnce)
	}
	for name, v := range map[string]string{"GUESS_CLEAR": c.Clear, "GUESS_COLOR": c.Color} {
		switch v {
		case Auto, Always, Never:
		default:
			return fmt.Errorf("config: %s %q: want auto, always or never", name, v)
		}
	}
	return nil
}
