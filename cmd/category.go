package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/output"
)

// categoriesCmd represents the categories command.
var categoriesCmd = &cobra.Command{
	Use:     "categories [TYPE]",
	Aliases: []string{"category", "cat"},
	Short:   "List or extend the category labels",
	Long: `List the allowed category labels per entity type, or append a new
label (admin only). Types: airdrop, testnet, tool, video.

Examples:
  droptrack categories
  droptrack categories airdrop
  droptrack categories add tool "Portfolio Trackers"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add TYPE NAME",
	Short: "Append a category label (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoriesAdd,
}

// entityTypes maps CLI type names to registry entity types.
var entityTypes = map[string]category.EntityType{
	"airdrop": category.TypeAirdrop,
	"testnet": category.TypeTestnet,
	"tool":    category.TypeTool,
	"video":   category.TypeVideo,
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func parseEntityType(name string) (category.EntityType, error) {
	if et, ok := entityTypes[name]; ok {
		return et, nil
	}
	return "", errors.NewUserErrorWithField("type", name, "Unknown entity type",
		"Use one of: airdrop, testnet, tool, video")
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	types := []string{"airdrop", "testnet", "tool", "video"}
	if len(args) > 0 {
		if _, err := parseEntityType(args[0]); err != nil {
			return err
		}
		types = args[:1]
	}

	if ctx.IsJSON() {
		lists := make(map[string][]string, len(types))
		for _, name := range types {
			lists[name] = ctx.Categories.Load(entityTypes[name])
		}
		return ctx.Formatter.JSON(lists)
	}

	cli := ctx.CLIFormatter()
	for _, name := range types {
		list := ctx.Categories.Load(entityTypes[name])
		cli.Title(fmt.Sprintf("%s categories (%d)", name, len(list)))
		for _, label := range list {
			cli.Printf("  • %s\n", cli.Category(label))
		}
		cli.Println("")
	}
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	entityType, err := parseEntityType(args[0])
	if err != nil {
		return err
	}
	if err := requireAuth(); err != nil {
		return err
	}

	name := args[1]
	if !ctx.Categories.Add(entityType, name, ctx.Auth.CurrentActor()) {
		return errors.NewUserErrorWithField("category", name, "Category was not added",
			"Admin privilege is required and the label must be new and non-empty")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ListResponse[string]{
			Items: ctx.Categories.Load(entityType),
			Count: len(ctx.Categories.Load(entityType)),
		})
	}

	ctx.CLIFormatter().Success("Added category: " + name)
	return nil
}
