package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/daemon"
)

var daemonStartFlagForeground bool

// daemonCmd manages the background refresh daemon.
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the background refresh daemon",
	Long: `The daemon keeps the refresh simulation ticking while no command
is running: once per interval it checks whether a refresh pass is due and
runs it.`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the refresh daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := daemon.NewDaemon(ctx.Store, ctx.Config.Refresh.TickInterval)
		d.SetDebug(flagDebug)

		if daemonStartFlagForeground {
			return d.Start(context.Background())
		}

		pid, err := d.StartBackground()
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]interface{}{"status": "started", "pid": pid})
		}
		ctx.CLIFormatter().Success("Daemon started")
		ctx.CLIFormatter().Printf("  PID: %d\n", pid)
		return nil
	},
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the refresh daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := daemon.NewDaemon(ctx.Store, ctx.Config.Refresh.TickInterval)
		if err := d.Stop(); err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"status": "stopped"})
		}
		ctx.CLIFormatter().Success("Daemon stopped")
		return nil
	},
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := daemon.NewDaemon(ctx.Store, ctx.Config.Refresh.TickInterval)
		status := d.GetStatus()

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(status)
		}

		cli := ctx.CLIFormatter()
		if !status.Running {
			cli.Muted("Daemon is not running.")
			cli.Muted("Use 'droptrack daemon start' to start it.")
			return nil
		}
		cli.Title("Daemon")
		cli.Printf("  PID:    %d\n", status.PID)
		if status.Uptime != "" {
			cli.Printf("  Uptime: %s\n", status.Uptime)
		}
		return nil
	},
}

func init() {
	daemonStartCmd.Flags().BoolVar(&daemonStartFlagForeground, "foreground", false,
		"Run in the foreground instead of detaching")

	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
	rootCmd.AddCommand(daemonCmd)
}
