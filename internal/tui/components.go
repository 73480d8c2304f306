package tui

import (
	"fmt"
	"strings"

	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/store"
)

// OverviewComponent displays the progress overview: counts and the overall
// completion bar across airdrops and testnets.
type OverviewComponent struct {
	Stats store.Stats
	Width int
}

// NewOverviewComponent creates a new overview component.
func NewOverviewComponent(stats store.Stats, width int) *OverviewComponent {
	return &OverviewComponent{Stats: stats, Width: width}
}

// View renders the overview component.
func (oc *OverviewComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Your Progress"))
	content.WriteString("\n")

	barWidth := oc.Width - 16
	if barWidth < 10 {
		barWidth = 10
	}
	content.WriteString(ProgressBar(float64(oc.Stats.OverallProgress), barWidth))
	content.WriteString(" ")
	content.WriteString(StylePercent.Render(fmt.Sprintf("%d%%", oc.Stats.OverallProgress)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s airdrops completed of %s tracked",
		StyleCompleted.Render(fmt.Sprintf("%d", oc.Stats.CompletedAirdrops)),
		StyleEntity.Render(fmt.Sprintf("%d", oc.Stats.TotalAirdrops))))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("%s active testnets, %s with daily tasks",
		StyleEntity.Render(fmt.Sprintf("%d", oc.Stats.ActiveTestnets)),
		StyleEntity.Render(fmt.Sprintf("%d", oc.Stats.DailyTasks))))

	box := StyleOverviewBox
	if oc.Stats.OverallProgress == 100 {
		box = StyleCompleteBox
	}
	return box.Width(oc.Width - 4).Render(content.String())
}

// TestnetsComponent displays testnet progress bars.
type TestnetsComponent struct {
	Testnets []model.Testnet
	Width    int
	Limit    int
}

// NewTestnetsComponent creates a new testnets component.
func NewTestnetsComponent(testnets []model.Testnet, width, limit int) *TestnetsComponent {
	if limit > 0 && len(testnets) > limit {
		testnets = testnets[:limit]
	}
	return &TestnetsComponent{Testnets: testnets, Width: width, Limit: limit}
}

// View renders the testnets component.
func (tc *TestnetsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Testnet Progress"))
	content.WriteString("\n")

	if len(tc.Testnets) == 0 {
		content.WriteString(StyleMuted.Render("No testnets yet"))
	} else {
		barWidth := tc.Width - 24
		if barWidth < 10 {
			barWidth = 10
		}
		for i, tn := range tc.Testnets {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(PinMarker(tn.IsPinned))
			content.WriteString(StyleEntity.Render(tn.Title))
			content.WriteString("  ")
			content.WriteString(StyleCategory.Render(tn.Category))
			content.WriteString("\n  ")
			content.WriteString(ProgressBar(float64(tn.Progress), barWidth))
			content.WriteString(" ")
			content.WriteString(StylePercent.Render(fmt.Sprintf("%d%%", tn.Progress)))
			content.WriteString(StyleSubtitle.Render(
				fmt.Sprintf("  %d/%d tasks", tn.CompletedTasks(), len(tn.Tasks))))
		}
	}

	return StyleListBox.Width(tc.Width - 4).Render(content.String())
}

// AirdropsComponent displays the airdrop list.
type AirdropsComponent struct {
	Airdrops []model.Airdrop
	Width    int
	Limit    int
}

// NewAirdropsComponent creates a new airdrops component.
func NewAirdropsComponent(airdrops []model.Airdrop, width, limit int) *AirdropsComponent {
	if limit > 0 && len(airdrops) > limit {
		airdrops = airdrops[:limit]
	}
	return &AirdropsComponent{Airdrops: airdrops, Width: width, Limit: limit}
}

// View renders the airdrops component.
func (ac *AirdropsComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Airdrops"))
	content.WriteString("\n")

	if len(ac.Airdrops) == 0 {
		content.WriteString(StyleMuted.Render("No airdrops yet"))
	} else {
		for i, a := range ac.Airdrops {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(PinMarker(a.IsPinned))
			if a.IsCompleted {
				content.WriteString(StyleCompleted.Render("✓ "))
			} else {
				content.WriteString("  ")
			}
			content.WriteString(StyleEntity.Render(a.Title))
			content.WriteString("  ")
			content.WriteString(StyleCategory.Render(a.Category))
			if a.Rewards != "" {
				content.WriteString("\n    ")
				content.WriteString(StyleSubtitle.Render(a.Rewards))
			}
		}
	}

	return StyleListBox.Width(ac.Width - 4).Render(content.String())
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"r", "refresh now"},
		{"tab", "cycle view"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
