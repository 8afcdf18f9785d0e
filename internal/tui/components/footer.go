package components

import (
	"strings"

	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding is one hint in the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// DashboardBindings lists the dashboard's keys in display order.
var DashboardBindings = []KeyBinding{
	{Key: "←/→", Desc: "inspect"},
	{Key: "h/l", Desc: "pan"},
	{Key: "+/-", Desc: "zoom"},
	{Key: "[/]", Desc: "from"},
	{Key: "{/}", Desc: "to"},
	{Key: "r", Desc: "refetch"},
	{Key: "q", Desc: "quit"},
}

// Footer renders the key hints at the bottom of the screen, cut with an
// ellipsis when the terminal is too narrow to fit them all.
func Footer(width int, bindings []KeyBinding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.FormatKeyBinding(b.Key, b.Desc)
	}
	content := strings.Join(parts, styles.KeySepStyle.Render("  "))
	content = ansi.Truncate(content, width-4, "…")

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(content)
}
