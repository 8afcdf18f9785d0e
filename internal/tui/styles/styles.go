package styles

import "github.com/charmbracelet/lipgloss"

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints and disabled choices.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Series ---

var (
	CDNText = lipgloss.NewStyle().Foreground(CDNColor)
	P2PText = lipgloss.NewStyle().Foreground(P2PColor)

	MaxCDNLine = lipgloss.NewStyle().Foreground(MaxCDNColor)
	MaxP2PLine = lipgloss.NewStyle().Foreground(MaxP2PColor)
)

// --- Fetch state badges ---

// StateStyle returns the badge style for an orchestrator state name.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "settled":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "fetching":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "failed":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case "cached":
		return lipgloss.NewStyle().Foreground(DimBlue)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// StateIndicator returns a colored dot followed by the state name.
func StateIndicator(state string) string {
	style := StateStyle(state)
	return style.Render("●") + " " + style.Render(state)
}

// --- Layout components ---

var (
	Border = lipgloss.RoundedBorder()

	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(Border).
		BorderForeground(DimGray).
		Padding(0, 1)

	// CardActive is a card with an accent border for the focused element.
	CardActive = lipgloss.NewStyle().
			Border(Border).
			BorderForeground(Blue).
			Padding(0, 1)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer.
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}
