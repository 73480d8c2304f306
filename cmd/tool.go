package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/output"
)

// toolCmd represents the tool command.
var toolCmd = &cobra.Command{
	Use:     "tool [ID]",
	Aliases: []string{"tools"},
	Short:   "Manage curated tools",
	Long: `List curated tools (explorers, faucets, checkers), show one, or
manage the collection.

Examples:
  droptrack tool
  droptrack tool add "DeBank" --category "Wallet Connect" --url https://debank.com`,
	RunE: runToolList,
}

// Tool subcommand flags.
var (
	toolAddFlagCategory    string
	toolAddFlagDescription string
	toolAddFlagURL         string
	toolAddFlagDifficulty  string
	toolAddFlagLogo        string
	toolAddFlagPaid        bool
	toolAddFlagPinned      bool

	toolEditFlagTitle       string
	toolEditFlagCategory    string
	toolEditFlagDescription string
	toolEditFlagURL         string
	toolEditFlagDifficulty  string
	toolEditFlagLogo        string
	toolEditFlagPaid        bool
	toolEditFlagPinned      bool
)

var toolAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolAdd,
}

var toolEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolEdit,
}

var toolDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a tool",
	Args:    cobra.ExactArgs(1),
	RunE:    runToolDelete,
}

var toolPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle the pinned flag on a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolPin,
}

func init() {
	toolAddCmd.Flags().StringVarP(&toolAddFlagCategory, "category", "c", "", "Category label (required)")
	toolAddCmd.Flags().StringVarP(&toolAddFlagDescription, "description", "d", "", "Description")
	toolAddCmd.Flags().StringVarP(&toolAddFlagURL, "url", "u", "", "Tool URL (required)")
	toolAddCmd.Flags().StringVar(&toolAddFlagDifficulty, "difficulty", "", "Difficulty label")
	toolAddCmd.Flags().StringVar(&toolAddFlagLogo, "logo", "", "Logo URL")
	toolAddCmd.Flags().BoolVar(&toolAddFlagPaid, "paid", false, "Mark as a paid tool")
	toolAddCmd.Flags().BoolVar(&toolAddFlagPinned, "pinned", false, "Pin to the top of the list")
	_ = toolAddCmd.MarkFlagRequired("category")
	_ = toolAddCmd.MarkFlagRequired("url")

	toolEditCmd.Flags().StringVar(&toolEditFlagTitle, "title", "", "Update title")
	toolEditCmd.Flags().StringVarP(&toolEditFlagCategory, "category", "c", "", "Update category")
	toolEditCmd.Flags().StringVarP(&toolEditFlagDescription, "description", "d", "", "Update description")
	toolEditCmd.Flags().StringVarP(&toolEditFlagURL, "url", "u", "", "Update URL")
	toolEditCmd.Flags().StringVar(&toolEditFlagDifficulty, "difficulty", "", "Update difficulty")
	toolEditCmd.Flags().StringVar(&toolEditFlagLogo, "logo", "", "Update logo URL")
	toolEditCmd.Flags().BoolVar(&toolEditFlagPaid, "paid", false, "Set the paid flag")
	toolEditCmd.Flags().BoolVar(&toolEditFlagPinned, "pinned", false, "Set the pinned flag")

	toolCmd.AddCommand(toolAddCmd)
	toolCmd.AddCommand(toolEditCmd)
	toolCmd.AddCommand(toolDeleteCmd)
	toolCmd.AddCommand(toolPinCmd)
	rootCmd.AddCommand(toolCmd)
}

func runToolList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showTool(args[0])
	}

	tools := ctx.Store.Tools()

	if ctx.IsJSON() {
		return output.PrintList(ctx.JSONFormatter(), tools)
	}

	cli := ctx.CLIFormatter()
	if len(tools) == 0 {
		cli.Muted("No tools saved.")
		return nil
	}

	cli.Title(fmt.Sprintf("Tools (%d)", len(tools)))
	rows := make([]output.TableRow, len(tools))
	for i, t := range tools {
		rows[i] = output.TableRow{Columns: []string{
			cli.PinMarker(t.IsPinned),
			t.Title,
			cli.Category(t.Category),
			t.URL,
			t.ID,
		}}
	}
	cli.PrintTable([]string{"", "Title", "Category", "URL", "ID"}, rows)
	return nil
}

func showTool(id string) error {
	tool, ok := ctx.Store.Tool(id)
	if !ok {
		return errors.NewUserErrorWithField("id", id, "Tool not found",
			"Use 'droptrack tool' to list IDs")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(tool)
	}

	cli := ctx.CLIFormatter()
	cli.Title(tool.Title)
	cli.Printf("  ID:       %s\n", tool.ID)
	cli.Printf("  Category: %s\n", cli.Category(tool.Category))
	cli.Printf("  URL:      %s\n", tool.URL)
	if tool.Difficulty != "" {
		cli.Printf("  Difficulty: %s\n", tool.Difficulty)
	}
	if tool.IsPaid {
		cli.Println("  Paid tool")
	}
	if tool.Description != "" {
		cli.Printf("  %s\n", tool.Description)
	}
	cli.Printf("  Created:  %s\n", output.FormatMillis(tool.CreatedAt))
	return nil
}

func runToolAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	if err := ctx.Categories.Validate(category.TypeTool, toolAddFlagCategory); err != nil {
		return err
	}

	tool := ctx.Store.AddTool(model.ToolDraft{
		Title:       args[0],
		Category:    toolAddFlagCategory,
		Description: toolAddFlagDescription,
		URL:         toolAddFlagURL,
		Difficulty:  toolAddFlagDifficulty,
		LogoURL:     toolAddFlagLogo,
		IsPaid:      toolAddFlagPaid,
		IsPinned:    toolAddFlagPinned,
	})
	if tool == nil {
		return errors.NewUserError("Tool was not added", "Check the rejection message above")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(tool)
	}
	ctx.CLIFormatter().Printf("  ID: %s\n", tool.ID)
	return nil
}

func runToolEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Tool(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Tool not found",
			"Use 'droptrack tool' to list IDs")
	}

	var patch model.ToolPatch
	changed := false
	flags := cmd.Flags()

	if flags.Changed("title") {
		patch.Title = &toolEditFlagTitle
		changed = true
	}
	if flags.Changed("category") {
		if err := ctx.Categories.Validate(category.TypeTool, toolEditFlagCategory); err != nil {
			return err
		}
		patch.Category = &toolEditFlagCategory
		changed = true
	}
	if flags.Changed("description") {
		patch.Description = &toolEditFlagDescription
		changed = true
	}
	if flags.Changed("url") {
		patch.URL = &toolEditFlagURL
		changed = true
	}
	if flags.Changed("difficulty") {
		patch.Difficulty = &toolEditFlagDifficulty
		changed = true
	}
	if flags.Changed("logo") {
		patch.LogoURL = &toolEditFlagLogo
		changed = true
	}
	if flags.Changed("paid") {
		patch.IsPaid = &toolEditFlagPaid
		changed = true
	}
	if flags.Changed("pinned") {
		patch.IsPinned = &toolEditFlagPinned
		changed = true
	}

	if !changed {
		return errors.NewUserError("No updates specified",
			"Pass at least one flag, e.g. --title or --url")
	}

	ctx.Store.UpdateTool(id, patch)
	return afterMutation("tool", id)
}

func runToolDelete(cmd *cobra.Command, args []string) error {
	ctx.Store.DeleteTool(args[0])
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}
	return nil
}

func runToolPin(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Tool(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Tool not found",
			"Use 'droptrack tool' to list IDs")
	}
	ctx.Store.ToggleToolPin(id)
	return afterMutation("tool", id)
}
