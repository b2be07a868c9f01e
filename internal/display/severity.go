package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Success:
		return "SUCCESS"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) color() lipgloss.Color {
	switch s {
	case Success:
		return lipgloss.Color("2")
	case Warning:
		return lipgloss.Color("3")
	case Error:
		return lipgloss.Color("1")
	default:
		return lipgloss.Color("4")
	}
}

// Formatter prefixes messages with their severity. It holds no mutable
// state, so a single value can be shared freely.
type Formatter struct {
	renderer *lipgloss.Renderer
	color    bool
}

// NewFormatter returns a Formatter writing for w. With color disabled the
// output is plain "[LEVEL] message".
func NewFormatter(w io.Writer, color bool) Formatter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return Formatter{renderer: r, color: color}
}

func (f Formatter) Format(sev Severity, msg string) string {
	prefix := "[" + sev.String() + "]"
	if f.color && f.renderer != nil {
		prefix = f.renderer.NewStyle().Bold(true).Foreground(sev.color()).Render(prefix)
	}
	return prefix + " " + msg
}

// Bold is used for section headings.
func (f Formatter) Bold(s string) string {
	if !f.color || f.renderer == nil {
		return s
	}
	return f.renderer.NewStyle().Bold(true).Render(s)
}
