package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/output"
)

// airdropCmd represents the airdrop command.
var airdropCmd = &cobra.Command{
	Use:     "airdrop [ID]",
	Aliases: []string{"airdrops", "drop"},
	Short:   "Manage tracked airdrops",
	Long: `List all airdrops, show details for one, or manage airdrops.

Examples:
  droptrack airdrop
  droptrack airdrop add "Arbitrum Season 2" --category "Layer 1 & Testnet Mainnet"
  droptrack airdrop edit <id> --completed
  droptrack airdrop link <id> "Official site" https://arbitrum.io`,
	RunE: runAirdropList,
}

// Airdrop subcommand flags.
var (
	airdropAddFlagCategory    string
	airdropAddFlagDescription string
	airdropAddFlagFunding     string
	airdropAddFlagRewards     string
	airdropAddFlagTime        string
	airdropAddFlagWork        string
	airdropAddFlagPinned      bool
	airdropAddFlagCompleted   bool

	airdropEditFlagTitle       string
	airdropEditFlagCategory    string
	airdropEditFlagDescription string
	airdropEditFlagFunding     string
	airdropEditFlagRewards     string
	airdropEditFlagTime        string
	airdropEditFlagWork        string
	airdropEditFlagPinned      bool
	airdropEditFlagCompleted   bool
)

var airdropAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Track a new airdrop",
	Args:  cobra.ExactArgs(1),
	RunE:  runAirdropAdd,
}

var airdropEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an airdrop",
	Args:  cobra.ExactArgs(1),
	RunE:  runAirdropEdit,
}

var airdropDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an airdrop",
	Args:    cobra.ExactArgs(1),
	RunE:    runAirdropDelete,
}

var airdropPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle the pinned flag on an airdrop",
	Args:  cobra.ExactArgs(1),
	RunE:  runAirdropPin,
}

var airdropLinkCmd = &cobra.Command{
	Use:   "link ID NAME URL",
	Short: "Attach a link to an airdrop",
	Args:  cobra.ExactArgs(3),
	RunE:  runAirdropLink,
}

func init() {
	airdropAddCmd.Flags().StringVarP(&airdropAddFlagCategory, "category", "c", "", "Category label (required)")
	airdropAddCmd.Flags().StringVarP(&airdropAddFlagDescription, "description", "d", "", "Description")
	airdropAddCmd.Flags().StringVar(&airdropAddFlagFunding, "funding", "", "Project funding amount")
	airdropAddCmd.Flags().StringVar(&airdropAddFlagRewards, "rewards", "", "Expected rewards")
	airdropAddCmd.Flags().StringVar(&airdropAddFlagTime, "time", "", "Time commitment")
	airdropAddCmd.Flags().StringVar(&airdropAddFlagWork, "work", "", "Work required")
	airdropAddCmd.Flags().BoolVar(&airdropAddFlagPinned, "pinned", false, "Pin to the top of the list")
	airdropAddCmd.Flags().BoolVar(&airdropAddFlagCompleted, "completed", false, "Mark as already completed")
	_ = airdropAddCmd.MarkFlagRequired("category")

	airdropEditCmd.Flags().StringVar(&airdropEditFlagTitle, "title", "", "Update title")
	airdropEditCmd.Flags().StringVarP(&airdropEditFlagCategory, "category", "c", "", "Update category")
	airdropEditCmd.Flags().StringVarP(&airdropEditFlagDescription, "description", "d", "", "Update description")
	airdropEditCmd.Flags().StringVar(&airdropEditFlagFunding, "funding", "", "Update funding amount")
	airdropEditCmd.Flags().StringVar(&airdropEditFlagRewards, "rewards", "", "Update rewards")
	airdropEditCmd.Flags().StringVar(&airdropEditFlagTime, "time", "", "Update time commitment")
	airdropEditCmd.Flags().StringVar(&airdropEditFlagWork, "work", "", "Update work required")
	airdropEditCmd.Flags().BoolVar(&airdropEditFlagPinned, "pinned", false, "Set the pinned flag")
	airdropEditCmd.Flags().BoolVar(&airdropEditFlagCompleted, "completed", false, "Set the completed flag")

	airdropCmd.AddCommand(airdropAddCmd)
	airdropCmd.AddCommand(airdropEditCmd)
	airdropCmd.AddCommand(airdropDeleteCmd)
	airdropCmd.AddCommand(airdropPinCmd)
	airdropCmd.AddCommand(airdropLinkCmd)
	rootCmd.AddCommand(airdropCmd)
}

func runAirdropList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showAirdrop(args[0])
	}

	airdrops := ctx.Store.Airdrops()

	if ctx.IsJSON() {
		return output.PrintList(ctx.JSONFormatter(), airdrops)
	}

	cli := ctx.CLIFormatter()
	if len(airdrops) == 0 {
		cli.Muted("No airdrops tracked.")
		cli.Muted("Use 'droptrack airdrop add <title> --category <category>' to add one.")
		return nil
	}

	cli.Title(fmt.Sprintf("Airdrops (%d)", len(airdrops)))
	rows := make([]output.TableRow, len(airdrops))
	for i, a := range airdrops {
		rows[i] = output.TableRow{Columns: []string{
			cli.PinMarker(a.IsPinned),
			cli.CompletionMarker(a.IsCompleted),
			a.Title,
			cli.Category(a.Category),
			a.Rewards,
			a.ID,
		}}
	}
	cli.PrintTable([]string{"", "", "Title", "Category", "Rewards", "ID"}, rows)
	return nil
}

func showAirdrop(id string) error {
	airdrop, ok := ctx.Store.Airdrop(id)
	if !ok {
		return errors.NewUserErrorWithField("id", id, "Airdrop not found",
			"Use 'droptrack airdrop' to list IDs")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(airdrop)
	}

	ctx.CLIFormatter().PrintAirdropDetail(&airdrop)
	return nil
}

func runAirdropAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	if err := ctx.Categories.Validate(category.TypeAirdrop, airdropAddFlagCategory); err != nil {
		return err
	}

	airdrop := ctx.Store.AddAirdrop(model.AirdropDraft{
		Title:          args[0],
		Category:       airdropAddFlagCategory,
		Description:    airdropAddFlagDescription,
		FundingAmount:  airdropAddFlagFunding,
		Rewards:        airdropAddFlagRewards,
		TimeCommitment: airdropAddFlagTime,
		WorkRequired:   airdropAddFlagWork,
		IsPinned:       airdropAddFlagPinned,
		IsCompleted:    airdropAddFlagCompleted,
	})
	if airdrop == nil {
		return errors.NewUserError("Airdrop was not added", "Check the rejection message above")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(airdrop)
	}
	ctx.CLIFormatter().Printf("  ID: %s\n", airdrop.ID)
	return nil
}

func runAirdropEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Airdrop(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Airdrop not found",
			"Use 'droptrack airdrop' to list IDs")
	}

	var patch model.AirdropPatch
	changed := false
	flags := cmd.Flags()

	if flags.Changed("title") {
		patch.Title = &airdropEditFlagTitle
		changed = true
	}
	if flags.Changed("category") {
		if err := ctx.Categories.Validate(category.TypeAirdrop, airdropEditFlagCategory); err != nil {
			return err
		}
		patch.Category = &airdropEditFlagCategory
		changed = true
	}
	if flags.Changed("description") {
		patch.Description = &airdropEditFlagDescription
		changed = true
	}
	if flags.Changed("funding") {
		patch.FundingAmount = &airdropEditFlagFunding
		changed = true
	}
	if flags.Changed("rewards") {
		patch.Rewards = &airdropEditFlagRewards
		changed = true
	}
	if flags.Changed("time") {
		patch.TimeCommitment = &airdropEditFlagTime
		changed = true
	}
	if flags.Changed("work") {
		patch.WorkRequired = &airdropEditFlagWork
		changed = true
	}
	if flags.Changed("pinned") {
		patch.IsPinned = &airdropEditFlagPinned
		changed = true
	}
	if flags.Changed("completed") {
		patch.IsCompleted = &airdropEditFlagCompleted
		changed = true
	}

	if !changed {
		return errors.NewUserError("No updates specified",
			"Pass at least one flag, e.g. --title or --completed")
	}

	ctx.Store.UpdateAirdrop(id, patch)
	return afterMutation("airdrop", id)
}

func runAirdropDelete(cmd *cobra.Command, args []string) error {
	ctx.Store.DeleteAirdrop(args[0])
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}
	return nil
}

func runAirdropPin(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Airdrop(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Airdrop not found",
			"Use 'droptrack airdrop' to list IDs")
	}
	ctx.Store.ToggleAirdropPin(id)
	return afterMutation("airdrop", id)
}

func runAirdropLink(cmd *cobra.Command, args []string) error {
	ctx.Store.AddAirdropLink(args[0], args[1], args[2])
	return afterMutation("airdrop", args[0])
}

// afterMutation emits the post-mutation result. In JSON mode the fresh entity
// is printed; in CLI mode the notification sink already reported the outcome.
func afterMutation(kind, id string) error {
	if !ctx.IsJSON() {
		return nil
	}
	switch kind {
	case "airdrop":
		if a, ok := ctx.Store.Airdrop(id); ok {
			return ctx.Formatter.JSON(a)
		}
	case "testnet":
		if t, ok := ctx.Store.Testnet(id); ok {
			return ctx.Formatter.JSON(t)
		}
	case "tool":
		if t, ok := ctx.Store.Tool(id); ok {
			return ctx.Formatter.JSON(t)
		}
	case "video":
		if v, ok := ctx.Store.Video(id); ok {
			return ctx.Formatter.JSON(v)
		}
	case "ranking":
		if r, ok := ctx.Store.Ranking(id); ok {
			return ctx.Formatter.JSON(r)
		}
	}
	return ctx.JSONFormatter().PrintError("error", kind+" not found", "")
}
