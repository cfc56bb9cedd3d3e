package console

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"

	"github.com/robalobadob/guessgame/internal/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// results strips banner and prompt lines from a transcript.
func results(out string, m Messages) []string {
	var got []string
	for _, l := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if l == m.Banner || l == m.Prompt {
			continue
		}
		got = append(got, l)
	}
	return got
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// clearRecorder marks each Clear call in the transcript.
type clearRecorder struct {
	bytes.Buffer
	clears int
}

func (c *clearRecorder) Clear() error {
	c.clears++
	c.WriteString("<clear>\n")
	return nil
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_SmallerGreaterRight(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 42)
	var out bytes.Buffer

	term, err := NewPlayer(s).Run(strings.NewReader("10\n99\n42\n"), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term != game.Won {
		t.Errorf("expected Won, got %q", term)
	}
	if s.Attempts() != 3 {
		t.Errorf("expected 3 attempts, got %d", s.Attempts())
	}
	want := []string{
		"your guessed number is smaller",
		"your guessed number is greater",
		"you are right",
	}
	if got := results(out.String(), LoopMessages); !equal(got, want) {
		t.Errorf("results = %q, want %q", got, want)
	}
}

func TestRun_PromptsBeforeEachRead(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 2)
	var out bytes.Buffer

	if _, err := NewPlayer(s).Run(strings.NewReader("1\n2\n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "welcome to guessing game\n" +
		"please enter a number : \n" +
		"your guessed number is smaller\n" +
		"welcome to guessing game\n" +
		"please enter a number : \n" +
		"you are right\n"
	if out.String() != want {
		t.Errorf("transcript:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_MalformedInputReprompts(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	var out bytes.Buffer

	term, err := NewPlayer(s).Run(strings.NewReader("abc\n5\n"), &out)
	if err != nil || term != game.Won {
		t.Fatalf("Run = %q, %v", term, err)
	}
	want := []string{"please enter a valid number", "you are right"}
	if got := results(out.String(), LoopMessages); !equal(got, want) {
		t.Errorf("results = %q, want %q", got, want)
	}
	if s.Attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", s.Attempts())
	}
	if s.Target() != 5 {
		t.Errorf("target changed to %d", s.Target())
	}
}

func TestRun_WhitespaceTolerance(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	var out bytes.Buffer

	if _, err := NewPlayer(s).Run(strings.NewReader("  5  \n"), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := results(out.String(), LoopMessages); !equal(got, []string{"you are right"}) {
		t.Errorf("results = %q", got)
	}
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 7)
	var out bytes.Buffer

	if term, err := NewPlayer(s).Run(strings.NewReader("3\n7"), &out); err != nil || term != game.Won {
		t.Fatalf("Run = %q, %v", term, err)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	var out bytes.Buffer

	_, err := NewPlayer(s).Run(strings.NewReader(""), &out)
	if !errors.Is(err, game.ErrInputExhausted) {
		t.Fatalf("expected ErrInputExhausted, got %v", err)
	}
	if s.Attempts() != 0 {
		t.Errorf("expected no comparisons, got %d", s.Attempts())
	}
	if got := results(out.String(), LoopMessages); len(got) != 0 {
		t.Errorf("expected only banner and prompt, got %q", got)
	}
}

func TestRun_ExhaustedMidGame(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 50)
	var out bytes.Buffer

	_, err := NewPlayer(s).Run(strings.NewReader("10\nxyz\n"), &out)
	if !errors.Is(err, game.ErrInputExhausted) {
		t.Fatalf("expected ErrInputExhausted, got %v", err)
	}
	if s.Attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", s.Attempts())
	}
}

func TestRun_ReadError(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	boom := errors.New("boom")

	_, err := NewPlayer(s).Run(iotest.ErrReader(boom), &bytes.Buffer{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
	if errors.Is(err, game.ErrInputExhausted) {
		t.Error("read error must not look like exhausted input")
	}
}

func TestRun_WriteError(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	_, err := NewPlayer(s).Run(strings.NewReader("5\n"), failWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRun_ClearsAfterEachParsedGuess(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	rec := &clearRecorder{}

	if _, err := NewPlayer(s).Run(strings.NewReader("abc\n3\n5\n"), rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rec.clears != 2 {
		t.Errorf("expected 2 clears, got %d", rec.clears)
	}
	want := []string{
		"please enter a valid number",
		"<clear>",
		"your guessed number is smaller",
		"<clear>",
		"you are right",
	}
	if got := results(rec.String(), LoopMessages); !equal(got, want) {
		t.Errorf("results = %q, want %q", got, want)
	}
}

func TestRunOnce(t *testing.T) {
	tests := []struct {
		in   string
		want game.Outcome
		line string
	}{
		{"3\n", game.OutcomeLess, "Too small!"},
		{"9\n", game.OutcomeGreater, "Too big!"},
		{" 5 \n", game.OutcomeEqual, "You win!"},
	}
	for _, tt := range tests {
		s := game.NewWithTarget(game.DefaultRange(), 5)
		p := &Player{Session: s, Messages: OnceMessages(s.Range)}
		var out bytes.Buffer

		got, err := p.RunOnce(strings.NewReader(tt.in), &out)
		if err != nil {
			t.Fatalf("RunOnce(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("RunOnce(%q) = %s, want %s", tt.in, got, tt.want)
		}
		want := "guessing game\nGuess a number from 1 to 100 :\n" + tt.line + "\n"
		if out.String() != want {
			t.Errorf("transcript %q, want %q", out.String(), want)
		}
		if s.Attempts() != 1 {
			t.Errorf("expected 1 attempt, got %d", s.Attempts())
		}
	}
}

func TestRunOnce_MalformedIsFatal(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	p := &Player{Session: s, Messages: OnceMessages(s.Range)}
	var out bytes.Buffer

	_, err := p.RunOnce(strings.NewReader("five\n5\n"), &out)
	if !errors.Is(err, game.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if !strings.HasSuffix(out.String(), "please type a number\n") {
		t.Errorf("expected validation message, got %q", out.String())
	}
	if s.Attempts() != 0 {
		t.Errorf("expected 0 attempts, got %d", s.Attempts())
	}
}

func TestRunOnce_EmptyInput(t *testing.T) {
	s := game.NewWithTarget(game.DefaultRange(), 5)
	p := &Player{Session: s, Messages: OnceMessages(s.Range)}

	if _, err := p.RunOnce(strings.NewReader(""), &bytes.Buffer{}); !errors.Is(err, game.ErrInputExhausted) {
		t.Fatalf("expected ErrInputExhausted, got %v", err)
	}
}
