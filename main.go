package main

import (
	"errors"
	"io"
	mrand "math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessgame/internal/config"
	"github.com/robalobadob/guessgame/internal/console"
	"github.com/robalobadob/guessgame/internal/daily"
	"github.com/robalobadob/guessgame/internal/game"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	sink := console.NewScreen(os.Stdout,
		enabled(cfg.Clear, os.Stdout),
		enabled(cfg.Color, os.Stdout),
	)
	if err := run(cfg, time.Now(), os.Stdin, sink); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// run plays one session according to cfg.
func run(cfg config.Config, now time.Time, in io.Reader, out io.Writer) error {
	s := newSession(cfg, now)
	ev := log.Debug().
		Str("session", s.ID).
		Str("range", s.Range.String()).
		Str("mode", cfg.Mode).
		Bool("daily", cfg.DailySalt != "")
	if cfg.Reveal {
		ev = ev.Int("target", s.Target())
	}
	ev.Msg("session started")

	if cfg.Mode == config.ModeOnce {
		p := &console.Player{Session: s, Messages: console.OnceMessages(s.Range)}
		_, err := p.RunOnce(in, out)
		return err
	}

	_, err := console.NewPlayer(s).Run(in, out)
	if errors.Is(err, game.ErrInputExhausted) {
		log.Warn().Str("session", s.ID).Int("attempts", s.Attempts()).Msg("input closed before the number was guessed")
	}
	return err
}

// newSession picks the target: derived from the date when a daily salt is set,
// otherwise drawn from a PCG source seeded by cfg.Seed or the clock.
func newSession(cfg config.Config, now time.Time) *game.Session {
	r := cfg.Range()
	if cfg.DailySalt != "" {
		return game.NewWithTarget(r, daily.Target(now, cfg.DailySalt, r))
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	return game.NewInRange(mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), r)
}

// enabled resolves an auto|always|never setting against f.
func enabled(setting string, f *os.File) bool {
	switch setting {
	case config.Always:
		return true
	case config.Never:
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
