// internal/console/console.go
//
// Line-based play loop for a guessing session.
// Responsibilities:
//   - Prompt, read one line, parse, compare, report; repeat until a match (Run).
//   - Single-guess variant that reports one comparison and stops (RunOnce).
//   - Optional sink capabilities: Clearer (reset the visible output after each
//     parsed guess) and Styler (decorate result lines).
//
// Notes:
//   - Malformed input is reported and re-prompted in Run; it is fatal in RunOnce.
//   - End of input is fatal and surfaces as game.ErrInputExhausted.
//   - Diagnostics go to the global zerolog logger, never to the sink.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessgame/internal/game"
)

// Messages is the user-visible wording of a play loop.
type Messages struct {
	Banner  string // printed before every prompt; empty to skip
	Prompt  string
	Invalid string
	Smaller string
	Greater string
	Right   string
}

// LoopMessages is the wording used by Run.
var LoopMessages = Messages{
	Banner:  "welcome to guessing game",
	Prompt:  "please enter a number : ",
	Invalid: "please enter a valid number",
	Smaller: "your guessed number is smaller",
	Greater: "your guessed number is greater",
	Right:   "you are right",
}

// OnceMessages is the wording used by RunOnce for a target drawn from r.
func OnceMessages(r game.Range) Messages {
	return Messages{
		Banner:  "guessing game",
		Prompt:  fmt.Sprintf("Guess a number from %d to %d :", r.Min, r.Max),
		Invalid: "please type a number",
		Smaller: "Too small!",
		Greater: "Too big!",
		Right:   "You win!",
	}
}

// Clearer is implemented by sinks that can reset the visible output.
type Clearer interface {
	Clear() error
}

// Styler is implemented by sinks that decorate lines by tone.
type Styler interface {
	Style(t Tone, line string) string
}

// Player drives one session over a line source and a text sink.
type Player struct {
	Session  *game.Session
	Messages Messages
}

// NewPlayer returns a Player using LoopMessages.
func NewPlayer(s *game.Session) *Player {
	return &Player{Session: s, Messages: LoopMessages}
}

// Run plays until the target is guessed and returns game.Won.
// It fails with game.ErrInputExhausted when src ends first.
func (p *Player) Run(src io.Reader, sink io.Writer) (game.Termination, error) {
	in := bufio.NewReader(src)
	s := p.Session
	for {
		if err := p.prompt(sink); err != nil {
			return "", err
		}
		line, err := readLine(in)
		if err != nil {
			return "", err
		}

		outcome, err := s.Guess(line)
		if errors.Is(err, game.ErrInvalidNumber) {
			log.Debug().Str("session", s.ID).Err(err).Msg("rejected input")
			if err := p.say(sink, ToneInvalid, p.Messages.Invalid); err != nil {
				return "", err
			}
			continue
		}
		if err != nil {
			return "", err
		}
		log.Debug().
			Str("session", s.ID).
			Str("guess", strings.TrimSpace(line)).
			Str("outcome", string(outcome)).
			Int("attempts", s.Attempts()).
			Msg("guess")

		if c, ok := sink.(Clearer); ok {
			if err := c.Clear(); err != nil {
				return "", fmt.Errorf("clear screen: %w", err)
			}
		}
		if err := p.report(sink, outcome); err != nil {
			return "", err
		}
		if outcome == game.OutcomeEqual {
			log.Info().Str("session", s.ID).Int("attempts", s.Attempts()).Msg("session won")
			return game.Won, nil
		}
	}
}

// RunOnce prompts for a single guess and reports the comparison.
// Malformed input is reported and then returned as a game.ErrInvalidNumber error.
func (p *Player) RunOnce(src io.Reader, sink io.Writer) (game.Outcome, error) {
	if err := p.prompt(sink); err != nil {
		return "", err
	}
	line, err := readLine(bufio.NewReader(src))
	if err != nil {
		return "", err
	}
	outcome, err := p.Session.Guess(line)
	if errors.Is(err, game.ErrInvalidNumber) {
		if werr := p.say(sink, ToneInvalid, p.Messages.Invalid); werr != nil {
			return "", werr
		}
		return "", err
	}
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("session", p.Session.ID).
		Str("guess", strings.TrimSpace(line)).
		Str("outcome", string(outcome)).
		Msg("single guess")
	if err := p.report(sink, outcome); err != nil {
		return "", err
	}
	return outcome, nil
}

func (p *Player) prompt(sink io.Writer) error {
	if p.Messages.Banner != "" {
		if err := p.say(sink, TonePlain, p.Messages.Banner); err != nil {
			return err
		}
	}
	return p.say(sink, TonePlain, p.Messages.Prompt)
}

func (p *Player) report(sink io.Writer, o game.Outcome) error {
	switch o {
	case game.OutcomeLess:
		return p.say(sink, ToneLow, p.Messages.Smaller)
	case game.OutcomeGreater:
		return p.say(sink, ToneHigh, p.Messages.Greater)
	default:
		return p.say(sink, ToneWin, p.Messages.Right)
	}
}

func (p *Player) say(sink io.Writer, t Tone, msg string) error {
	if st, ok := sink.(Styler); ok {
		msg = st.Style(t, msg)
	}
	if _, err := fmt.Fprintln(sink, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readLine returns the next line including its terminator.
// A final line without a newline is still returned; only an empty read at EOF
// is reported as game.ErrInputExhausted.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF):
		if line != "" {
			return line, nil
		}
		return "", game.ErrInputExhausted
	default:
		return "", fmt.Errorf("read input: %w", err)
	}
}
