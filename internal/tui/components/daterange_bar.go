package components

import (
	"time"

	"nathanbeddoewebdev/bwdash/internal/daterange"
	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "Mon 2006-01-02"

// DateRangeBar shows the selected window with the stepping keys for each
// endpoint. A key whose step would leave the advisory bounds is dimmed.
func DateRangeBar(width int, w domain.Window, limits daterange.Limits) string {
	from := endpoint("From", w.From,
		stepKey("[", limits.AllowsFrom(daterange.ShiftDate(w.From, -1))),
		stepKey("]", limits.AllowsFrom(daterange.ShiftDate(w.From, 1))),
	)
	to := endpoint("To", w.To,
		stepKey("{", limits.AllowsTo(daterange.ShiftDate(w.To, -1))),
		stepKey("}", limits.AllowsTo(daterange.ShiftDate(w.To, 1))),
	)

	content := from + "    " + to
	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(content)
}

func endpoint(name string, t time.Time, earlier, later string) string {
	value := styles.MutedText.Render("not set")
	if !t.IsZero() {
		value = styles.Value.Render(t.Local().Format(dateLayout))
	}
	return styles.Label.Render(name) + " " + earlier + " " + value + " " + later
}

func stepKey(key string, enabled bool) string {
	if !enabled {
		return styles.MutedText.Render(key)
	}
	return styles.KeyStyle.Render(key)
}
