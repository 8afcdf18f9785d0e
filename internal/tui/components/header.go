// Package components renders the pieces of the bwdash dashboard. They are
// plain render functions, not tea.Models; the dashboard model owns state.
package components

import (
	"strings"

	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────────────┐
//	│  bwdash > bandwidth         ● settled  localhost │
//	└──────────────────────────────────────────────────┘
func Header(width int, breadcrumb, state, backend string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("bwdash")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	var rightParts []string
	if state != "" {
		rightParts = append(rightParts, styles.StateIndicator(state))
	}
	if backend != "" {
		rightParts = append(rightParts, styles.Subtitle.Render(backend))
	}
	right := strings.Join(rightParts, "  ")

	innerWidth := width - 4
	leftLen := lipgloss.Width(left)
	if room := innerWidth - leftLen - 1; lipgloss.Width(right) > room {
		right = ansi.Truncate(right, max(room, 0), "…")
	}
	gap := max(innerWidth-leftLen-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
