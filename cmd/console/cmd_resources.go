package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var (
	lowStockOnly bool
	adjustDelta  int
	adjustReason string
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Manage stock and inventory",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stock items (--low for items at or below minimum)",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParams()
		var (
			page *api.Page[api.Resource]
			err  error
		)
		if lowStockOnly {
			page, err = apiClient.Resources.ListLowStock(cmd.Context(), params)
		} else {
			page, err = apiClient.Resources.List(cmd.Context(), params)
		}
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.ResourceViews(page.Results) {
			stock := v.Stock
			if v.Low {
				stock = ui.Alert(stock + " (low)")
			}
			rows = append(rows, []string{strconv.Itoa(v.ID), v.Name, v.Category, stock, v.Location})
		}
		fmt.Print(ui.Table([]string{"ID", "NAME", "CATEGORY", "STOCK", "LOCATION"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var resourcesAdjustCmd = &cobra.Command{
	Use:   "adjust <id>",
	Short: "Adjust stock by a signed delta with a reason",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid resource id %q", args[0])
		}
		r, err := apiClient.Resources.Adjust(cmd.Context(), id, api.StockAdjustment{
			Delta:  adjustDelta,
			Reason: adjustReason,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s now at %d %s\n", r.Name, r.Quantity, r.Unit)
		return nil
	},
}

func init() {
	listFlags(resourcesListCmd)
	resourcesListCmd.Flags().BoolVar(&lowStockOnly, "low", false, "only low-stock items")
	resourcesAdjustCmd.Flags().IntVar(&adjustDelta, "delta", 0, "signed quantity change")
	resourcesAdjustCmd.Flags().StringVar(&adjustReason, "reason", "", "audit reason")
	_ = resourcesAdjustCmd.MarkFlagRequired("delta")
	_ = resourcesAdjustCmd.MarkFlagRequired("reason")

	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesAdjustCmd)
}
