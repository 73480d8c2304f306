// Package cmd provides the CLI commands for Droptrack.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/notify"
	"github.com/cryptopilot/droptrack/internal/output"
	"github.com/cryptopilot/droptrack/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "droptrack",
	Short: "Track crypto airdrops, testnets, tools and videos",
	Long: `Droptrack is a command-line tracker for crypto airdrop farming:
airdrop opportunities, testnet participation with per-task progress,
curated tools, instructional videos and an admin-run leaderboard.

Examples:
  droptrack airdrop add "Arbitrum Season 2" --category "Layer 1 & Testnet Mainnet"
  droptrack testnet task done <testnet-id> <task-id>
  droptrack refresh --force
  droptrack dashboard`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow
		// __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		// In JSON mode notifications would interleave with the payload on
		// stdout, so they are dropped and each command prints a structured
		// result instead.
		if format == output.FormatJSON {
			opts.Notifier = notify.Discard
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the progress overview
		return runStats(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("droptrack %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// requireAuth fails the command early when nobody is logged in.
func requireAuth() error {
	if ctx.Auth.CurrentUser() == nil {
		return errors.NewUserError("You are not logged in",
			"Use 'droptrack login' or 'droptrack register' first")
	}
	return nil
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.JSONFormatter().PrintError("error", err.Error(), suggestionFor(err))
	} else {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if s := suggestionFor(err); s != "" {
			os.Stderr.WriteString("  " + s + "\n")
		}
	}
	os.Exit(1)
}

// suggestionFor extracts the actionable hint from a user error, if any.
func suggestionFor(err error) string {
	if ue, ok := errors.AsUserError(err); ok {
		return ue.Suggestion
	}
	return ""
}
