// Package styles holds the color palette and lipgloss styles shared by the
// bwdash dashboard.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent
	Blue    = lipgloss.Color("#5FAFFF")
	DimBlue = lipgloss.Color("#3A6FA0")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")

	// Series. CDN and P2P share a hue with their reference line so a
	// maximum reads as belonging to its path.
	CDNColor    = lipgloss.Color("#FF8787")
	P2PColor    = lipgloss.Color("#5FD787")
	MaxCDNColor = lipgloss.Color("#AF5F5F")
	MaxP2PColor = lipgloss.Color("#3A8F5A")
)
