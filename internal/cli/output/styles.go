package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
	Code     lipgloss.Style
}

// NewStyles creates styles bound to w. With color disabled, or when NO_COLOR
// is set, every style renders plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if color && !termenv.EnvNoColor() {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header2:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("244")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("214")),
		Info:     r.NewStyle().Foreground(lipgloss.Color("81")),
		FilePath: r.NewStyle().Underline(true).Foreground(lipgloss.Color("252")),
		Code:     r.NewStyle().Foreground(lipgloss.Color("180")),
	}
}
