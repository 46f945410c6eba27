package grid

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette styles the renderer output. Each field wraps a string in
// presentation markers; none of them may alter the text they wrap.
type Palette struct {
	Accent    func(string) string
	Highlight func(string) string
	Info      func(string) string
	Success   func(string) string
	Error     func(string) string
}

func identity(s string) string { return s }

// PlainPalette returns a palette that emits no markers.
func PlainPalette() Palette {
	return Palette{
		Accent:    identity,
		Highlight: identity,
		Info:      identity,
		Success:   identity,
		Error:     identity,
	}
}

var (
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	infoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// DefaultPalette returns the ANSI palette: grey labels, black-on-cyan
// highlights, cyan info, bright green success and red errors. lipgloss
// drops the codes when the output is not a terminal.
func DefaultPalette() Palette {
	return Palette{
		Accent:    render(accentStyle),
		Highlight: render(highlightStyle),
		Info:      render(infoStyle),
		Success:   render(successStyle),
		Error:     render(errorStyle),
	}
}

// PaletteFor picks DefaultPalette unless color is disabled by the caller or
// by the NO_COLOR / HEXKIT_NO_COLOR environment variables.
func PaletteFor(noColor bool) Palette {
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("HEXKIT_NO_COLOR") != "" {
		return PlainPalette()
	}
	return DefaultPalette()
}

func (p Palette) fill() Palette {
	for _, f := range []*func(string) string{&p.Accent, &p.Highlight, &p.Info, &p.Success, &p.Error} {
		if *f == nil {
			*f = identity
		}
	}
	return p
}
