package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
)

var unreadOnly bool

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "Review backend notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications (--unread for outstanding only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParams()
		var (
			page *api.Page[api.Notification]
			err  error
		)
		if unreadOnly {
			page, err = apiClient.Notifications.ListUnread(cmd.Context(), params)
		} else {
			page, err = apiClient.Notifications.List(cmd.Context(), params)
		}
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, n := range page.Results {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			rows = append(rows, []string{marker, strconv.Itoa(n.ID), n.Title, n.Message, n.CreatedAt})
		}
		fmt.Print(ui.Table([]string{"", "ID", "TITLE", "MESSAGE", "WHEN"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Acknowledge one notification, or all with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all {
			if err := apiClient.Notifications.MarkAllRead(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("all notifications acknowledged")
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("a notification id or --all is required")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid notification id %q", args[0])
		}
		if err := apiClient.Notifications.MarkRead(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("notification %d acknowledged\n", id)
		return nil
	},
}

func init() {
	listFlags(notificationsListCmd)
	notificationsListCmd.Flags().BoolVar(&unreadOnly, "unread", false, "only unread notifications")
	notificationsReadCmd.Flags().Bool("all", false, "acknowledge everything")

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
}
