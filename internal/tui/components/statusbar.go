package components

import (
	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusLevel selects how a status message is emphasised.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarn
	StatusError
)

// StatusBar renders a one-line message between the content and footer.
func StatusBar(width int, message string, level StatusLevel) string {
	if message == "" {
		return ""
	}

	style := styles.MutedText
	switch level {
	case StatusWarn:
		style = styles.WarningText
	case StatusError:
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(ansi.Truncate(message, max(width-4, 1), "…")))
}
