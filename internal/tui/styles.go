package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

var (
	// Colors — the oracle's baroque gold on black
	colorAccent = lipgloss.Color("#C5A059")
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
	colorWhite  = lipgloss.Color("#F9FAFB")
	colorUser   = lipgloss.Color("#D4B47A")

	// Title
	styleTitle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Section header inside an oracle reply
	styleSectionTitle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Accented box for panels
	styleAccentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Error line
	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	// Mode tag shown in the chat header
	styleModeTag = lipgloss.NewStyle().
			Foreground(colorAccent)
)
