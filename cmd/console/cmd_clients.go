package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var clientPayload api.ClientPayload

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage client records",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.Clients.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.ClientViews(page.Results) {
			rows = append(rows, []string{
				strconv.Itoa(v.ID), v.Name, v.Contact, v.Phone, v.Location, v.GST, ui.Status(v.Status),
			})
		}
		fmt.Print(ui.Table([]string{"ID", "NAME", "CONTACT", "PHONE", "LOCATION", "GST", "STATUS"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid client id %q", args[0])
		}
		rec, err := apiClient.Clients.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Print(ui.Detail([][2]string{
			{"Name", rec.Name},
			{"Contact", rec.ContactPerson},
			{"Phone", rec.Phone},
			{"Email", rec.Email},
			{"Address", rec.Address},
			{"City", rec.City},
			{"State", rec.State},
			{"GST", rec.GSTNumber},
			{"Status", ui.Status(rec.Status)},
			{"Created", rec.CreatedAt},
		}))
		return nil
	},
}

var clientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := apiClient.Clients.Create(cmd.Context(), clientPayload)
		if err != nil {
			return err
		}
		fmt.Printf("created client %d (%s)\n", rec.ID, rec.Name)
		return nil
	},
}

var clientsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid client id %q", args[0])
		}
		if err := apiClient.Clients.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("deleted client %d\n", id)
		return nil
	},
}

func init() {
	listFlags(clientsListCmd)
	clientsAddCmd.Flags().StringVar(&clientPayload.Name, "name", "", "client name (required)")
	clientsAddCmd.Flags().StringVar(&clientPayload.ContactPerson, "contact", "", "contact person")
	clientsAddCmd.Flags().StringVar(&clientPayload.Phone, "phone", "", "phone number")
	clientsAddCmd.Flags().StringVar(&clientPayload.Email, "email", "", "email address")
	clientsAddCmd.Flags().StringVar(&clientPayload.City, "city", "", "city")
	clientsAddCmd.Flags().StringVar(&clientPayload.State, "state", "", "state")
	clientsAddCmd.Flags().StringVar(&clientPayload.GSTNumber, "gst", "", "GST number")
	_ = clientsAddCmd.MarkFlagRequired("name")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsRmCmd)
}
