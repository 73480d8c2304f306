package cmd

import (
	"github.com/spf13/cobra"
)

var refreshFlagForce bool

// refreshCmd runs the periodic refresh simulation on demand.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run the daily refresh simulation",
	Long: `Run a refresh pass: sufficiently old airdrops may complete and
in-progress testnets may advance. Without --force the pass only runs when
the configured threshold has elapsed since the last one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := ctx.Store.MaybeRefresh()
		if refreshFlagForce && !res.Ran {
			res = ctx.Store.RefreshNow()
		}

		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintRefresh(res)
		}

		cli := ctx.CLIFormatter()
		if !res.Ran {
			cli.Muted("Refresh skipped: last pass is still fresh. Use --force to run anyway.")
			return nil
		}
		cli.Success("Refresh pass complete")
		cli.Printf("  Airdrops completed: %d\n", res.AirdropsCompleted)
		cli.Printf("  Testnets advanced:  %d\n", res.TestnetsAdvanced)
		return nil
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshFlagForce, "force", false,
		"Run even if the threshold has not elapsed")
	rootCmd.AddCommand(refreshCmd)
}
