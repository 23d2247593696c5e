package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var videoPayload api.VideoPayload

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Manage the training-video library",
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos in rank order",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.Videos.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.VideoViews(page.Results) {
			rows = append(rows, []string{strconv.Itoa(v.Rank), strconv.Itoa(v.ID), v.Title, v.Code})
		}
		fmt.Print(ui.Table([]string{"RANK", "ID", "TITLE", "VIDEO"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var videosAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a video to the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := apiClient.Videos.Create(cmd.Context(), videoPayload)
		if err != nil {
			return err
		}
		fmt.Printf("added %q at rank %d\n", v.Title, v.Rank)
		return nil
	},
}

var videosRankCmd = &cobra.Command{
	Use:   "rank <id> <rank>",
	Short: "Move a video to a new rank",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid video id %q", args[0])
		}
		rank, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rank %q", args[1])
		}
		v, err := apiClient.Videos.Reorder(cmd.Context(), id, rank)
		if err != nil {
			return err
		}
		fmt.Printf("%q moved to rank %d\n", v.Title, v.Rank)
		return nil
	},
}

var videosRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid video id %q", args[0])
		}
		if err := apiClient.Videos.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("removed video %d\n", id)
		return nil
	},
}

func init() {
	listFlags(videosListCmd)
	videosAddCmd.Flags().StringVar(&videoPayload.Title, "title", "", "video title (required)")
	videosAddCmd.Flags().StringVar(&videoPayload.YouTubeURL, "url", "", "YouTube URL (required)")
	videosAddCmd.Flags().IntVar(&videoPayload.Rank, "rank", 0, "position in the library (0 sorts first)")
	_ = videosAddCmd.MarkFlagRequired("title")
	_ = videosAddCmd.MarkFlagRequired("url")

	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosAddCmd)
	videosCmd.AddCommand(videosRankCmd)
	videosCmd.AddCommand(videosRmCmd)
}
