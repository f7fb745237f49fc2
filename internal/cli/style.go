package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders status markers. Colors are dropped automatically when w
// is not a terminal.
type styles struct {
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		ok:    r.NewStyle().Foreground(lipgloss.Color("46")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
