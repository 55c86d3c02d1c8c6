// Package notice writes parrot's user-facing status lines and trace output.
package notice

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls ANSI color output.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode maps a config value to a ColorMode. Unknown values are auto.
func ParseColorMode(v string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "always":
		return ColorOn
	case "0", "false", "no", "off", "never":
		return ColorOff
	default:
		return ColorAuto
	}
}

// Resolve determines whether w should receive ANSI color codes.
// Priority: explicit mode > NO_COLOR env > auto-detect TTY.
func (m ColorMode) Resolve(w io.Writer) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// forceANSI makes lipgloss emit escape codes even when stdout is not a
// terminal, so an explicit "always" also applies to redirected output.
func forceANSI() {
	lipgloss.SetColorProfile(termenv.ANSI)
}

// Style renders s with st when color is enabled and returns s unchanged otherwise.
func Style(s string, st lipgloss.Style, color bool) string {
	if !color {
		return s
	}
	return st.Render(s)
}

// Bold is a shorthand for Style with a bold style.
func Bold(s string, color bool) string {
	return Style(s, boldStyle, color)
}

// Faint is a shorthand for Style with a faint style.
func Faint(s string, color bool) string {
	return Style(s, faintStyle, color)
}
