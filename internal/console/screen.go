package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Tone classifies a line for styling.
type Tone int

const (
	TonePlain Tone = iota
	ToneInvalid
	ToneLow
	ToneHigh
	ToneWin
)

// One Dark palette
var (
	colorRed    = lipgloss.Color("#E06C75")
	colorGreen  = lipgloss.Color("#98C379")
	colorYellow = lipgloss.Color("#E5C07B")
	colorBlue   = lipgloss.Color("#61AFEF")
)

// Screen is a terminal sink. It implements Clearer and Styler.
type Screen struct {
	w      io.Writer
	clear  bool
	styles map[Tone]lipgloss.Style // nil when colour is off
}

// NewScreen wraps w. clear enables erasing the screen on Clear;
// color enables ANSI styling of result lines.
func NewScreen(w io.Writer, clear, color bool) *Screen {
	s := &Screen{w: w, clear: clear}
	if color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		s.styles = map[Tone]lipgloss.Style{
			ToneInvalid: r.NewStyle().Foreground(colorYellow),
			ToneLow:     r.NewStyle().Foreground(colorBlue),
			ToneHigh:    r.NewStyle().Foreground(colorRed),
			ToneWin:     r.NewStyle().Foreground(colorGreen).Bold(true),
		}
	}
	return s
}

func (s *Screen) Write(p []byte) (int, error) { return s.w.Write(p) }

// Clear erases the screen and homes the cursor. It is a no-op when disabled.
func (s *Screen) Clear() error {
	if !s.clear {
		return nil
	}
	_, err := io.WriteString(s.w, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

// Style renders line in the tone's style, or returns it unchanged.
func (s *Screen) Style(t Tone, line string) string {
	st, ok := s.styles[t]
	if !ok {
		return line
	}
	return st.Render(line)
}
