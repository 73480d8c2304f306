package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/tui"
)

// dashboardCmd launches the interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch the interactive dashboard",
	Long: `Launch a full-screen terminal dashboard showing your progress
overview, testnet progress bars and the airdrop list. Press 'r' to force a
refresh pass, 'tab' to cycle panels, 'q' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ctx.IsJSON() {
			return errors.NewUserError("The dashboard is interactive",
				"Drop the --format json flag")
		}
		return tui.Run(tui.DashboardConfig{Store: ctx.Store})
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
