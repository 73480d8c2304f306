package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/output"
)

// rankingCmd represents the ranking command.
var rankingCmd = &cobra.Command{
	Use:     "ranking [ID]",
	Aliases: []string{"rankings", "leaderboard"},
	Short:   "Manage the airdrop leaderboard",
	Long: `List the admin-curated airdrop leaderboard or manage its entries.
Everyone can read the leaderboard; only admins can change it.

Examples:
  droptrack ranking
  droptrack ranking add "LayerZero" --rank 1 --rating 4.5`,
	RunE: runRankingList,
}

// Ranking subcommand flags.
var (
	rankingAddFlagRank        int
	rankingAddFlagRating      float64
	rankingAddFlagDescription string
	rankingAddFlagFunding     string
	rankingAddFlagRewards     string
	rankingAddFlagLink        string
	rankingAddFlagPinned      bool

	rankingEditFlagRank        int
	rankingEditFlagTitle       string
	rankingEditFlagRating      float64
	rankingEditFlagDescription string
	rankingEditFlagFunding     string
	rankingEditFlagRewards     string
	rankingEditFlagLink        string
	rankingEditFlagPinned      bool
)

var rankingAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a leaderboard entry (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankingAdd,
}

var rankingEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a leaderboard entry (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankingEdit,
}

var rankingDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a leaderboard entry (admin only)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRankingDelete,
}

var rankingPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle the pinned flag on an entry (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRankingPin,
}

func init() {
	rankingAddCmd.Flags().IntVar(&rankingAddFlagRank, "rank", 0, "Position on the board (required, 1-based)")
	rankingAddCmd.Flags().Float64Var(&rankingAddFlagRating, "rating", 0, "Star rating, 1.0-5.0 in half steps")
	rankingAddCmd.Flags().StringVarP(&rankingAddFlagDescription, "description", "d", "", "Description")
	rankingAddCmd.Flags().StringVar(&rankingAddFlagFunding, "funding", "", "Project funding amount")
	rankingAddCmd.Flags().StringVar(&rankingAddFlagRewards, "rewards", "", "Expected rewards")
	rankingAddCmd.Flags().StringVar(&rankingAddFlagLink, "link", "", "Details URL")
	rankingAddCmd.Flags().BoolVar(&rankingAddFlagPinned, "pinned", false, "Pin to the top of the board")
	_ = rankingAddCmd.MarkFlagRequired("rank")
	_ = rankingAddCmd.MarkFlagRequired("rating")

	rankingEditCmd.Flags().IntVar(&rankingEditFlagRank, "rank", 0, "Update position")
	rankingEditCmd.Flags().StringVar(&rankingEditFlagTitle, "title", "", "Update title")
	rankingEditCmd.Flags().Float64Var(&rankingEditFlagRating, "rating", 0, "Update rating")
	rankingEditCmd.Flags().StringVarP(&rankingEditFlagDescription, "description", "d", "", "Update description")
	rankingEditCmd.Flags().StringVar(&rankingEditFlagFunding, "funding", "", "Update funding amount")
	rankingEditCmd.Flags().StringVar(&rankingEditFlagRewards, "rewards", "", "Update rewards")
	rankingEditCmd.Flags().StringVar(&rankingEditFlagLink, "link", "", "Update details URL")
	rankingEditCmd.Flags().BoolVar(&rankingEditFlagPinned, "pinned", false, "Set the pinned flag")

	rankingCmd.AddCommand(rankingAddCmd)
	rankingCmd.AddCommand(rankingEditCmd)
	rankingCmd.AddCommand(rankingDeleteCmd)
	rankingCmd.AddCommand(rankingPinCmd)
	rootCmd.AddCommand(rankingCmd)
}

func runRankingList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showRanking(args[0])
	}

	rankings := ctx.Store.Rankings()

	if ctx.IsJSON() {
		return output.PrintList(ctx.JSONFormatter(), rankings)
	}

	cli := ctx.CLIFormatter()
	if len(rankings) == 0 {
		cli.Muted("The leaderboard is empty.")
		return nil
	}

	cli.Title(fmt.Sprintf("Airdrop Leaderboard (%d)", len(rankings)))
	rows := make([]output.TableRow, len(rankings))
	for i, r := range rankings {
		rows[i] = output.TableRow{Columns: []string{
			cli.PinMarker(r.IsPinned),
			strconv.Itoa(r.Rank),
			r.Title,
			fmt.Sprintf("%.1f★", r.Rating),
			r.Rewards,
			r.ID,
		}}
	}
	cli.PrintTable([]string{"", "#", "Title", "Rating", "Rewards", "ID"}, rows)
	return nil
}

func showRanking(id string) error {
	ranking, ok := ctx.Store.Ranking(id)
	if !ok {
		return errors.NewUserErrorWithField("id", id, "Leaderboard entry not found",
			"Use 'droptrack ranking' to list IDs")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ranking)
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("#%d %s", ranking.Rank, ranking.Title))
	cli.Printf("  ID:     %s\n", ranking.ID)
	cli.Printf("  Rating: %.1f★\n", ranking.Rating)
	if ranking.FundingAmount != "" {
		cli.Printf("  Funding: %s\n", ranking.FundingAmount)
	}
	if ranking.Rewards != "" {
		cli.Printf("  Rewards: %s\n", ranking.Rewards)
	}
	if ranking.DetailsLink != "" {
		cli.Printf("  Details: %s\n", ranking.DetailsLink)
	}
	if ranking.Description != "" {
		cli.Printf("  %s\n", ranking.Description)
	}
	return nil
}

func runRankingAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	ranking := ctx.Store.AddRanking(model.RankingDraft{
		Rank:          rankingAddFlagRank,
		Title:         args[0],
		Description:   rankingAddFlagDescription,
		FundingAmount: rankingAddFlagFunding,
		Rewards:       rankingAddFlagRewards,
		Rating:        rankingAddFlagRating,
		DetailsLink:   rankingAddFlagLink,
		IsPinned:      rankingAddFlagPinned,
	})
	if ranking == nil {
		return errors.NewUserError("Leaderboard entry was not added",
			"Only admins can manage the leaderboard")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ranking)
	}
	ctx.CLIFormatter().Printf("  ID: %s\n", ranking.ID)
	return nil
}

func runRankingEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Ranking(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Leaderboard entry not found",
			"Use 'droptrack ranking' to list IDs")
	}

	var patch model.RankingPatch
	changed := false
	flags := cmd.Flags()

	if flags.Changed("rank") {
		patch.Rank = &rankingEditFlagRank
		changed = true
	}
	if flags.Changed("title") {
		patch.Title = &rankingEditFlagTitle
		changed = true
	}
	if flags.Changed("rating") {
		patch.Rating = &rankingEditFlagRating
		changed = true
	}
	if flags.Changed("description") {
		patch.Description = &rankingEditFlagDescription
		changed = true
	}
	if flags.Changed("funding") {
		patch.FundingAmount = &rankingEditFlagFunding
		changed = true
	}
	if flags.Changed("rewards") {
		patch.Rewards = &rankingEditFlagRewards
		changed = true
	}
	if flags.Changed("link") {
		patch.DetailsLink = &rankingEditFlagLink
		changed = true
	}
	if flags.Changed("pinned") {
		patch.IsPinned = &rankingEditFlagPinned
		changed = true
	}

	if !changed {
		return errors.NewUserError("No updates specified",
			"Pass at least one flag, e.g. --rank or --rating")
	}

	ctx.Store.UpdateRanking(id, patch)
	return afterMutation("ranking", id)
}

func runRankingDelete(cmd *cobra.Command, args []string) error {
	ctx.Store.DeleteRanking(args[0])
	if ctx.IsJSON() {
		if _, stillThere := ctx.Store.Ranking(args[0]); stillThere {
			return ctx.JSONFormatter().PrintError("error", "entry not deleted",
				"Only admins can manage the leaderboard")
		}
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}
	return nil
}

func runRankingPin(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Ranking(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Leaderboard entry not found",
			"Use 'droptrack ranking' to list IDs")
	}
	ctx.Store.ToggleRankingPin(id)
	return afterMutation("ranking", id)
}
