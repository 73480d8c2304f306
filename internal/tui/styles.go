// Package tui provides the terminal dashboard for Droptrack.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for subtitles and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleMuted is used for muted text (alias for convenience).
	StyleMuted = StyleSubtitle

	// StyleEntity is used for entity titles.
	StyleEntity = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleCategory is used for category labels.
	StyleCategory = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StylePercent is used for progress percentages.
	StylePercent = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StylePinned is used for the pin marker.
	StylePinned = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	// StyleCompleted is used for completed entities.
	StyleCompleted = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for success messages.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	// StyleOverviewBox is used for the progress overview section.
	StyleOverviewBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(1, 2).
				MarginBottom(1)

	// StyleListBox is used for the entity list sections.
	StyleListBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleCompleteBox highlights a fully completed overview.
	StyleCompleteBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSuccess).
				Padding(1, 2).
				MarginBottom(1)
)

// ProgressBar creates a progress bar string.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	bar := ""
	for i := 0; i < filled; i++ {
		bar += filledStyle.Render("█") // Full block
	}
	for i := 0; i < empty; i++ {
		bar += emptyStyle.Render("░") // Light shade
	}

	return bar
}

// PinMarker renders the pin indicator.
func PinMarker(pinned bool) string {
	if pinned {
		return StylePinned.Render("★") + " "
	}
	return "  "
}
