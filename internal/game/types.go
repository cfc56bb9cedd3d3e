// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Outcome: result of comparing one guess against the target.
//   - Termination: why a play loop stopped.
//   - Range: the closed interval a target is drawn from.
//   - Session: state for a single guessing session.

package game

import "fmt"

// Outcome is the three-way comparison of a guess against the target.
type Outcome string

const (
	OutcomeLess    Outcome = "less"
	OutcomeGreater Outcome = "greater"
	OutcomeEqual   Outcome = "equal"
)

// Termination classifies why a play loop stopped normally.
// Running out of input is not a Termination; it is reported as ErrInputExhausted.
type Termination string

const (
	Won Termination = "won"
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// DefaultRange is 1..100 inclusive.
func DefaultRange() Range { return Range{Min: DefaultMin, Max: DefaultMax} }

// Size is the number of integers in the range.
func (r Range) Size() int { return r.Max - r.Min + 1 }

// Contains reports whether n lies in [Min, Max].
func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// Validate rejects empty ranges and ranges whose size overflows int.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("range: min %d greater than max %d", r.Min, r.Max)
	}
	if r.Size() <= 0 {
		return fmt.Errorf("range: %d..%d is too wide", r.Min, r.Max)
	}
	return nil
}

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Min, r.Max) }

// Session holds the state of a single guessing session.
// The target is fixed at construction and never exposed for mutation.
type Session struct {
	ID    string // Unique session identifier (random hex string).
	Range Range  // Interval the target was drawn from.

	target   int
	attempts int
	won      bool
}
