package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/output"
)

// testnetCmd represents the testnet command.
var testnetCmd = &cobra.Command{
	Use:     "testnet [ID]",
	Aliases: []string{"testnets", "tn"},
	Short:   "Manage testnet participation",
	Long: `List all testnets, show one with its task list, or manage testnets.
Progress is derived from the task list and cannot be set directly.

Examples:
  droptrack testnet
  droptrack testnet add "Taiko Testnet" --category "Galxe Testnet" --task "Bridge ETH"
  droptrack testnet task done <testnet-id> <task-id>`,
	RunE: runTestnetList,
}

// Testnet subcommand flags.
var (
	testnetAddFlagCategory    string
	testnetAddFlagDescription string
	testnetAddFlagRewards     string
	testnetAddFlagTasks       []string
	testnetAddFlagPinned      bool

	testnetEditFlagTitle       string
	testnetEditFlagCategory    string
	testnetEditFlagDescription string
	testnetEditFlagRewards     string
	testnetEditFlagPinned      bool
)

var testnetAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Track a new testnet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestnetAdd,
}

var testnetEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a testnet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestnetEdit,
}

var testnetDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a testnet",
	Args:    cobra.ExactArgs(1),
	RunE:    runTestnetDelete,
}

var testnetPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle the pinned flag on a testnet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestnetPin,
}

var testnetTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage testnet tasks",
}

var testnetTaskAddCmd = &cobra.Command{
	Use:   "add TESTNET_ID NAME [URL]",
	Short: "Append a task to a testnet",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runTestnetTaskAdd,
}

var testnetTaskDoneCmd = &cobra.Command{
	Use:   "done TESTNET_ID TASK_ID",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTestnetTask(args[0], args[1], true)
	},
}

var testnetTaskUndoCmd = &cobra.Command{
	Use:   "undo TESTNET_ID TASK_ID",
	Short: "Mark a task as not completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTestnetTask(args[0], args[1], false)
	},
}

func init() {
	testnetAddCmd.Flags().StringVarP(&testnetAddFlagCategory, "category", "c", "", "Category label (required)")
	testnetAddCmd.Flags().StringVarP(&testnetAddFlagDescription, "description", "d", "", "Description")
	testnetAddCmd.Flags().StringVar(&testnetAddFlagRewards, "rewards", "", "Expected rewards")
	testnetAddCmd.Flags().StringArrayVar(&testnetAddFlagTasks, "task", nil, "Task name (repeatable)")
	testnetAddCmd.Flags().BoolVar(&testnetAddFlagPinned, "pinned", false, "Pin to the top of the list")
	_ = testnetAddCmd.MarkFlagRequired("category")

	testnetEditCmd.Flags().StringVar(&testnetEditFlagTitle, "title", "", "Update title")
	testnetEditCmd.Flags().StringVarP(&testnetEditFlagCategory, "category", "c", "", "Update category")
	testnetEditCmd.Flags().StringVarP(&testnetEditFlagDescription, "description", "d", "", "Update description")
	testnetEditCmd.Flags().StringVar(&testnetEditFlagRewards, "rewards", "", "Update rewards")
	testnetEditCmd.Flags().BoolVar(&testnetEditFlagPinned, "pinned", false, "Set the pinned flag")

	testnetTaskCmd.AddCommand(testnetTaskAddCmd)
	testnetTaskCmd.AddCommand(testnetTaskDoneCmd)
	testnetTaskCmd.AddCommand(testnetTaskUndoCmd)

	testnetCmd.AddCommand(testnetAddCmd)
	testnetCmd.AddCommand(testnetEditCmd)
	testnetCmd.AddCommand(testnetDeleteCmd)
	testnetCmd.AddCommand(testnetPinCmd)
	testnetCmd.AddCommand(testnetTaskCmd)
	rootCmd.AddCommand(testnetCmd)
}

func runTestnetList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showTestnet(args[0])
	}

	testnets := ctx.Store.Testnets()

	if ctx.IsJSON() {
		return output.PrintList(ctx.JSONFormatter(), testnets)
	}

	cli := ctx.CLIFormatter()
	if len(testnets) == 0 {
		cli.Muted("No testnets tracked.")
		cli.Muted("Use 'droptrack testnet add <title> --category <category>' to add one.")
		return nil
	}

	cli.Title(fmt.Sprintf("Testnets (%d)", len(testnets)))
	rows := make([]output.TableRow, len(testnets))
	for i, t := range testnets {
		rows[i] = output.TableRow{Columns: []string{
			cli.PinMarker(t.IsPinned),
			t.Title,
			cli.Category(t.Category),
			fmt.Sprintf("%d%%", t.Progress),
			fmt.Sprintf("%d/%d", t.CompletedTasks(), len(t.Tasks)),
			t.ID,
		}}
	}
	cli.PrintTable([]string{"", "Title", "Category", "Progress", "Tasks", "ID"}, rows)
	return nil
}

func showTestnet(id string) error {
	testnet, ok := ctx.Store.Testnet(id)
	if !ok {
		return errors.NewUserErrorWithField("id", id, "Testnet not found",
			"Use 'droptrack testnet' to list IDs")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(testnet)
	}

	ctx.CLIFormatter().PrintTestnetDetail(&testnet)
	return nil
}

func runTestnetAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	if err := ctx.Categories.Validate(category.TypeTestnet, testnetAddFlagCategory); err != nil {
		return err
	}

	tasks := make([]model.TestnetTask, 0, len(testnetAddFlagTasks))
	for _, name := range testnetAddFlagTasks {
		tasks = append(tasks, model.TestnetTask{Name: name})
	}

	testnet := ctx.Store.AddTestnet(model.TestnetDraft{
		Title:       args[0],
		Category:    testnetAddFlagCategory,
		Description: testnetAddFlagDescription,
		Rewards:     testnetAddFlagRewards,
		Tasks:       tasks,
		IsPinned:    testnetAddFlagPinned,
	})
	if testnet == nil {
		return errors.NewUserError("Testnet was not added", "Check the rejection message above")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(testnet)
	}
	ctx.CLIFormatter().Printf("  ID: %s\n", testnet.ID)
	return nil
}

func runTestnetEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Testnet(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Testnet not found",
			"Use 'droptrack testnet' to list IDs")
	}

	var patch model.TestnetPatch
	changed := false
	flags := cmd.Flags()

	if flags.Changed("title") {
		patch.Title = &testnetEditFlagTitle
		changed = true
	}
	if flags.Changed("category") {
		if err := ctx.Categories.Validate(category.TypeTestnet, testnetEditFlagCategory); err != nil {
			return err
		}
		patch.Category = &testnetEditFlagCategory
		changed = true
	}
	if flags.Changed("description") {
		patch.Description = &testnetEditFlagDescription
		changed = true
	}
	if flags.Changed("rewards") {
		patch.Rewards = &testnetEditFlagRewards
		changed = true
	}
	if flags.Changed("pinned") {
		patch.IsPinned = &testnetEditFlagPinned
		changed = true
	}

	if !changed {
		return errors.NewUserError("No updates specified",
			"Pass at least one flag, e.g. --title or --rewards")
	}

	ctx.Store.UpdateTestnet(id, patch)
	return afterMutation("testnet", id)
}

func runTestnetDelete(cmd *cobra.Command, args []string) error {
	ctx.Store.DeleteTestnet(args[0])
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}
	return nil
}

func runTestnetPin(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Testnet(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Testnet not found",
			"Use 'droptrack testnet' to list IDs")
	}
	ctx.Store.ToggleTestnetPin(id)
	return afterMutation("testnet", id)
}

func runTestnetTaskAdd(cmd *cobra.Command, args []string) error {
	url := ""
	if len(args) == 3 {
		url = args[2]
	}
	ctx.Store.AddTestnetTask(args[0], args[1], url)
	return afterMutation("testnet", args[0])
}

func setTestnetTask(testnetID, taskID string, done bool) error {
	testnet, ok := ctx.Store.Testnet(testnetID)
	if !ok {
		return errors.NewUserErrorWithField("id", testnetID, "Testnet not found",
			"Use 'droptrack testnet' to list IDs")
	}
	found := false
	for _, task := range testnet.Tasks {
		if task.ID == taskID {
			found = true
			break
		}
	}
	if !found {
		return errors.NewUserErrorWithField("task", taskID, "Task not found",
			"Use 'droptrack testnet <id>' to list task IDs")
	}

	ctx.Store.UpdateTestnetTask(testnetID, taskID, done)
	return afterMutation("testnet", testnetID)
}
