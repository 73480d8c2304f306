package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/category"
	"github.com/cryptopilot/droptrack/internal/errors"
	"github.com/cryptopilot/droptrack/internal/model"
	"github.com/cryptopilot/droptrack/internal/output"
)

// videoCmd represents the video command.
var videoCmd = &cobra.Command{
	Use:     "video [ID]",
	Aliases: []string{"videos"},
	Short:   "Manage instructional videos",
	Long: `List videos, show one, or manage the video library. Uploading
requires creator privilege; editing and deleting require ownership or admin.

Examples:
  droptrack video
  droptrack video add "Testnet walkthrough" --category "Top Testnets" --url https://youtu.be/xyz`,
	RunE: runVideoList,
}

// Video subcommand flags.
var (
	videoAddFlagCategory    string
	videoAddFlagDescription string
	videoAddFlagURL         string
	videoAddFlagThumbnail   string
	videoAddFlagPaid        bool
	videoAddFlagPinned      bool

	videoEditFlagTitle       string
	videoEditFlagCategory    string
	videoEditFlagDescription string
	videoEditFlagURL         string
	videoEditFlagThumbnail   string
	videoEditFlagPaid        bool
	videoEditFlagPinned      bool
)

var videoAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Upload a video (creator or admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoAdd,
}

var videoEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a video (owner or admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoEdit,
}

var videoDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a video (owner or admin only)",
	Args:    cobra.ExactArgs(1),
	RunE:    runVideoDelete,
}

var videoPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle the pinned flag on a video (owner or admin only)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideoPin,
}

func init() {
	videoAddCmd.Flags().StringVarP(&videoAddFlagCategory, "category", "c", "", "Category label (required)")
	videoAddCmd.Flags().StringVarP(&videoAddFlagDescription, "description", "d", "", "Description")
	videoAddCmd.Flags().StringVarP(&videoAddFlagURL, "url", "u", "", "Video URL (required)")
	videoAddCmd.Flags().StringVar(&videoAddFlagThumbnail, "thumbnail", "", "Thumbnail URL")
	videoAddCmd.Flags().BoolVar(&videoAddFlagPaid, "paid", false, "Mark as paid content")
	videoAddCmd.Flags().BoolVar(&videoAddFlagPinned, "pinned", false, "Pin to the top of the list")
	_ = videoAddCmd.MarkFlagRequired("category")
	_ = videoAddCmd.MarkFlagRequired("url")

	videoEditCmd.Flags().StringVar(&videoEditFlagTitle, "title", "", "Update title")
	videoEditCmd.Flags().StringVarP(&videoEditFlagCategory, "category", "c", "", "Update category")
	videoEditCmd.Flags().StringVarP(&videoEditFlagDescription, "description", "d", "", "Update description")
	videoEditCmd.Flags().StringVarP(&videoEditFlagURL, "url", "u", "", "Update video URL")
	videoEditCmd.Flags().StringVar(&videoEditFlagThumbnail, "thumbnail", "", "Update thumbnail URL")
	videoEditCmd.Flags().BoolVar(&videoEditFlagPaid, "paid", false, "Set the paid flag")
	videoEditCmd.Flags().BoolVar(&videoEditFlagPinned, "pinned", false, "Set the pinned flag")

	videoCmd.AddCommand(videoAddCmd)
	videoCmd.AddCommand(videoEditCmd)
	videoCmd.AddCommand(videoDeleteCmd)
	videoCmd.AddCommand(videoPinCmd)
	rootCmd.AddCommand(videoCmd)
}

func runVideoList(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return showVideo(args[0])
	}

	videos := ctx.Store.Videos()

	if ctx.IsJSON() {
		return output.PrintList(ctx.JSONFormatter(), videos)
	}

	cli := ctx.CLIFormatter()
	if len(videos) == 0 {
		cli.Muted("No videos in the library.")
		return nil
	}

	cli.Title(fmt.Sprintf("Videos (%d)", len(videos)))
	rows := make([]output.TableRow, len(videos))
	for i, v := range videos {
		paid := ""
		if v.IsPaid {
			paid = "paid"
		}
		rows[i] = output.TableRow{Columns: []string{
			cli.PinMarker(v.IsPinned),
			v.Title,
			cli.Category(v.Category),
			paid,
			v.ID,
		}}
	}
	cli.PrintTable([]string{"", "Title", "Category", "", "ID"}, rows)
	return nil
}

func showVideo(id string) error {
	video, ok := ctx.Store.Video(id)
	if !ok {
		return errors.NewUserErrorWithField("id", id, "Video not found",
			"Use 'droptrack video' to list IDs")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(video)
	}

	cli := ctx.CLIFormatter()
	cli.Title(video.Title)
	cli.Printf("  ID:       %s\n", video.ID)
	cli.Printf("  Category: %s\n", cli.Category(video.Category))
	cli.Printf("  URL:      %s\n", video.VideoURL)
	if video.ThumbnailURL != "" {
		cli.Printf("  Thumb:    %s\n", video.ThumbnailURL)
	}
	if video.IsPaid {
		cli.Println("  Paid content")
	}
	if video.Description != "" {
		cli.Printf("  %s\n", video.Description)
	}
	cli.Printf("  Created:  %s\n", output.FormatMillis(video.CreatedAt))
	return nil
}

func runVideoAdd(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}
	if err := ctx.Categories.Validate(category.TypeVideo, videoAddFlagCategory); err != nil {
		return err
	}

	video := ctx.Store.AddVideo(model.VideoDraft{
		Title:        args[0],
		Category:     videoAddFlagCategory,
		Description:  videoAddFlagDescription,
		VideoURL:     videoAddFlagURL,
		ThumbnailURL: videoAddFlagThumbnail,
		IsPaid:       videoAddFlagPaid,
		IsPinned:     videoAddFlagPinned,
	})
	if video == nil {
		return errors.NewUserError("Video was not added",
			"Uploading requires creator privilege")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(video)
	}
	ctx.CLIFormatter().Printf("  ID: %s\n", video.ID)
	return nil
}

func runVideoEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Video(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Video not found",
			"Use 'droptrack video' to list IDs")
	}

	var patch model.VideoPatch
	changed := false
	flags := cmd.Flags()

	if flags.Changed("title") {
		patch.Title = &videoEditFlagTitle
		changed = true
	}
	if flags.Changed("category") {
		if err := ctx.Categories.Validate(category.TypeVideo, videoEditFlagCategory); err != nil {
			return err
		}
		patch.Category = &videoEditFlagCategory
		changed = true
	}
	if flags.Changed("description") {
		patch.Description = &videoEditFlagDescription
		changed = true
	}
	if flags.Changed("url") {
		patch.VideoURL = &videoEditFlagURL
		changed = true
	}
	if flags.Changed("thumbnail") {
		patch.ThumbnailURL = &videoEditFlagThumbnail
		changed = true
	}
	if flags.Changed("paid") {
		patch.IsPaid = &videoEditFlagPaid
		changed = true
	}
	if flags.Changed("pinned") {
		patch.IsPinned = &videoEditFlagPinned
		changed = true
	}

	if !changed {
		return errors.NewUserError("No updates specified",
			"Pass at least one flag, e.g. --title or --url")
	}

	ctx.Store.UpdateVideo(id, patch)
	return afterMutation("video", id)
}

func runVideoDelete(cmd *cobra.Command, args []string) error {
	ctx.Store.DeleteVideo(args[0])
	if ctx.IsJSON() {
		if _, stillThere := ctx.Store.Video(args[0]); stillThere {
			return ctx.JSONFormatter().PrintError("error", "video not deleted",
				"Deleting requires ownership or admin privilege")
		}
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": args[0]})
	}
	return nil
}

func runVideoPin(cmd *cobra.Command, args []string) error {
	id := args[0]
	if _, ok := ctx.Store.Video(id); !ok {
		return errors.NewUserErrorWithField("id", id, "Video not found",
			"Use 'droptrack video' to list IDs")
	}
	ctx.Store.ToggleVideoPin(id)
	return afterMutation("video", id)
}
