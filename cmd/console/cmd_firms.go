package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
)

var firmsCmd = &cobra.Command{
	Use:   "firms",
	Short: "List the operating firms",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.Firms.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, f := range page.Results {
			name := f.Name
			if f.IsDefault {
				name += " (default)"
			}
			rows = append(rows, []string{strconv.Itoa(f.ID), name, f.GSTNumber, f.Address})
		}
		fmt.Print(ui.Table([]string{"ID", "NAME", "GST", "ADDRESS"}, rows))
		return nil
	},
}

func init() {
	listFlags(firmsCmd)
}
