package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted   = lipgloss.Color("#6C757D") // Gray
)

// styles are bound to the menu's writer so color is only emitted to terminals
type styles struct {
	title     lipgloss.Style
	separator lipgloss.Style
	prompt    lipgloss.Style
	err       lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		separator: r.NewStyle().
			Foreground(colorMuted),
		prompt: r.NewStyle().
			Bold(true),
		err: r.NewStyle().
			Foreground(colorDanger),
	}
}
