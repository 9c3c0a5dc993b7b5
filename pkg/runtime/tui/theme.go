package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the semantic color palette for the entire TUI.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Default mirrors the FinHealth web palette.
var Default = Theme{
	Base:    lipgloss.Color("#0b0f19"),
	Surface: lipgloss.Color("#1E2330"),
	Border:  lipgloss.Color("#3A4154"),
	Muted:   lipgloss.Color("#64748b"),
	Text:    lipgloss.Color("#e2e8f0"),
	Primary: lipgloss.Color("#6366f1"),
	Accent:  lipgloss.Color("#8b5cf6"),
	Success: lipgloss.Color("#10b981"),
	Warning: lipgloss.Color("#f59e0b"),
	Error:   lipgloss.Color("#ef4444"),
}

// BandColor picks the palette color for a score band color hex. The
// domain already encodes the hex values; lipgloss takes them verbatim.
func BandColor(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}
