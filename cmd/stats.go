package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/output"
)

// statsCmd shows the progress overview.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"overview"},
	Short:   "Show your progress overview",
	Long: `Show aggregate counts over your own records plus the built-in demo
records: airdrops completed, active testnets, daily tasks and the overall
completion percentage.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	stats := ctx.Store.Stats()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(stats)
	}

	cli := ctx.CLIFormatter()
	if ctx.Store.Degraded() {
		cli.Warning("Stored data was unreadable; showing default data.")
	}

	cli.Title("Your Progress")
	cli.Printf("  %s %d%%\n", output.ProgressBar(float64(stats.OverallProgress), 30), stats.OverallProgress)
	cli.Println("")
	cli.Printf("  Airdrops:  %d tracked, %d completed\n", stats.TotalAirdrops, stats.CompletedAirdrops)
	cli.Printf("  Testnets:  %d tracked, %d active\n", stats.TotalTestnets, stats.ActiveTestnets)
	cli.Printf("  Daily tasks pending on %d testnet(s)\n", stats.DailyTasks)
	cli.Printf("  Tools: %d   Videos: %d\n", stats.TotalTools, stats.TotalVideos)

	if user := ctx.Auth.CurrentUser(); user != nil {
		cli.Println("")
		cli.Muted(fmt.Sprintf("Logged in as %s (level %d, %d achievements)",
			user.Username, user.Level, len(user.Achievements)))
	}

	return nil
}
