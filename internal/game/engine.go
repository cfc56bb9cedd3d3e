// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create sessions with a target drawn uniformly from a closed range.
//   - Parse textual guesses (trimmed, base-10, signed).
//   - Compare guesses against the target and track attempts.
//   - Track state transitions: playing → won.
//
// Notes:
//   - Malformed input never counts as an attempt.
//   - There is no losing state; a session only ends on a correct guess.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strconv"
	"strings"
)

const (
	DefaultMin = 1
	DefaultMax = 100
)

var (
	// ErrInvalidNumber is returned for input that does not parse as an integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrSessionFinished is returned for guesses made after a win.
	ErrSessionFinished = errors.New("session finished")
	// ErrInputExhausted means the input source ended before the target was found.
	ErrInputExhausted = errors.New("input exhausted")
)

// New constructs a session with a target drawn from DefaultRange.
func New(rng *mrand.Rand) *Session {
	return NewInRange(rng, DefaultRange())
}

// NewInRange constructs a session with a target drawn uniformly from r.
// r must be valid (see Range.Validate).
func NewInRange(rng *mrand.Rand, r Range) *Session {
	return NewWithTarget(r, r.Min+rng.IntN(r.Size()))
}

// NewWithTarget constructs a session with a fixed target.
// Used for derived targets (daily mode) and tests.
func NewWithTarget(r Range, target int) *Session {
	return &Session{
		ID:     randomID(),
		Range:  r,
		target: target,
	}
}

// Target returns the secret value.
func (s *Session) Target() int { return s.target }

// Attempts returns the number of parse-successful comparisons so far.
func (s *Session) Attempts() int { return s.attempts }

// Finished reports whether the target has been guessed.
func (s *Session) Finished() bool { return s.won }

// Guess parses text and compares it against the target.
//
// Errors:
//   - ErrSessionFinished once the session has been won.
//   - ErrInvalidNumber (wrapped) when text is not an integer; attempts are unchanged.
func (s *Session) Guess(text string) (Outcome, error) {
	if s.won {
		return OutcomeEqual, ErrSessionFinished
	}
	n, err := ParseGuess(text)
	if err != nil {
		return "", err
	}
	s.attempts++
	o := Compare(n, s.target)
	if o == OutcomeEqual {
		s.won = true
	}
	return o, nil
}

// ParseGuess trims surrounding whitespace and parses a base-10 signed integer.
func ParseGuess(text string) (int, error) {
	t := strings.TrimSpace(text)
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, t)
	}
	return n, nil
}

// Compare is the three-way comparison of guess against target.
func Compare(guess, target int) Outcome {
	switch {
	case guess < target:
		return OutcomeLess
	case guess > target:
		return OutcomeGreater
	default:
		return OutcomeEqual
	}
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
