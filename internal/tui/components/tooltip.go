package components

import (
	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/tui/styles"
	"nathanbeddoewebdev/bwdash/internal/units"

	"github.com/charmbracelet/lipgloss"
)

// Tooltip renders the hovered point's breakdown as a small card.
func Tooltip(t series.Tooltip) string {
	row := func(label string, style lipgloss.Style, value string) string {
		return styles.Label.Width(17).Render(label) + style.Render(value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(t.Time),
		"",
		row("P2P", styles.P2PText, units.FormatRate(t.P2P)),
		row("CDN", styles.CDNText, units.FormatRate(t.CDN)),
		row("Total", styles.Value, units.FormatRate(t.Total)),
		row("Spike reduction", styles.AccentText, units.FormatPercent(t.SpikeReduction)),
	)
	return styles.Card.Render(body)
}
