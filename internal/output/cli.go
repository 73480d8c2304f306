package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cryptopilot/droptrack/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleCategory = lipgloss.NewStyle().
			Foreground(colorSecondary)

	stylePinned = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// Category formats a category label.
func (c *CLIFormatter) Category(name string) string {
	if c.IsColorEnabled() {
		return styleCategory.Render(name)
	}
	return name
}

// PinMarker renders the pin indicator for a list row.
func (c *CLIFormatter) PinMarker(pinned bool) string {
	if !pinned {
		return " "
	}
	if c.IsColorEnabled() {
		return stylePinned.Render("★")
	}
	return "★"
}

// CompletionMarker renders a completion checkbox.
func (c *CLIFormatter) CompletionMarker(done bool) string {
	if done {
		if c.IsColorEnabled() {
			return styleSuccess.Render("[x]")
		}
		return "[x]"
	}
	return "[ ]"
}

// PrintAirdropDetail prints one airdrop in full.
func (c *CLIFormatter) PrintAirdropDetail(a *model.Airdrop) {
	c.Title(a.Title)
	c.Printf("  ID:        %s\n", a.ID)
	c.Printf("  Category:  %s\n", c.Category(a.Category))
	c.Printf("  Completed: %s\n", c.CompletionMarker(a.IsCompleted))
	if a.FundingAmount != "" {
		c.Printf("  Funding:   %s\n", a.FundingAmount)
	}
	if a.Rewards != "" {
		c.Printf("  Rewards:   %s\n", a.Rewards)
	}
	if a.TimeCommitment != "" {
		c.Printf("  Time:      %s\n", a.TimeCommitment)
	}
	if a.WorkRequired != "" {
		c.Printf("  Work:      %s\n", a.WorkRequired)
	}
	if a.Description != "" {
		c.Printf("  %s\n", a.Description)
	}
	if len(a.Links) > 0 {
		c.Println("  Links:")
		for _, l := range a.Links {
			c.Printf("    %s — %s\n", l.Name, l.URL)
		}
	}
	c.Printf("  Created:   %s\n", FormatMillis(a.CreatedAt))
}

// PrintTestnetDetail prints one testnet with its task list.
func (c *CLIFormatter) PrintTestnetDetail(t *model.Testnet) {
	c.Title(t.Title)
	c.Printf("  ID:       %s\n", t.ID)
	c.Printf("  Category: %s\n", c.Category(t.Category))
	c.Printf("  Progress: %s %d%%\n", ProgressBar(float64(t.Progress), 20), t.Progress)
	if t.Rewards != "" {
		c.Printf("  Rewards:  %s\n", t.Rewards)
	}
	if t.Description != "" {
		c.Printf("  %s\n", t.Description)
	}
	if len(t.Tasks) > 0 {
		c.Printf("  Tasks (%d/%d done):\n", t.CompletedTasks(), len(t.Tasks))
		for _, task := range t.Tasks {
			line := fmt.Sprintf("    %s %s", c.CompletionMarker(task.IsCompleted), task.Name)
			if task.URL != "" {
				line += "  " + task.URL
			}
			c.Println(line)
			c.Printf("        id: %s\n", task.ID)
		}
	}
	c.Printf("  Created:  %s\n", FormatMillis(t.CreatedAt))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return bar
}

// Table helpers for CLI output.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(styleBold.Render(headerLine.String()))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
