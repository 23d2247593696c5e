package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var (
	renewStart  string
	renewEnd    string
	renewAmount string
)

var amcCmd = &cobra.Command{
	Use:   "amc",
	Short: "Track maintenance contracts",
}

var amcListCmd = &cobra.Command{
	Use:   "list",
	Short: "List AMCs (--status active|expiring|expired)",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.AMCs.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.AMCViews(page.Results) {
			rows = append(rows, []string{
				strconv.Itoa(v.ID), v.Client, v.Period, v.Amount, v.Visits, ui.Status(v.Status),
			})
		}
		fmt.Print(ui.Table([]string{"ID", "CLIENT", "PERIOD", "AMOUNT", "VISITS", "STATUS"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var amcRenewCmd = &cobra.Command{
	Use:   "renew <id>",
	Short: "Renew a contract for a new period",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid AMC id %q", args[0])
		}
		amount, err := decimal.NewFromString(renewAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", renewAmount)
		}
		amc, err := apiClient.AMCs.Renew(cmd.Context(), id, api.AMCRenewal{
			StartDate: renewStart,
			EndDate:   renewEnd,
			Amount:    amount,
		})
		if err != nil {
			return err
		}
		fmt.Printf("renewed AMC %d for %s through %s\n", amc.ID, amc.ClientName, amc.EndDate)
		return nil
	},
}

func init() {
	listFlags(amcListCmd)
	amcRenewCmd.Flags().StringVar(&renewStart, "start", "", "new period start (YYYY-MM-DD)")
	amcRenewCmd.Flags().StringVar(&renewEnd, "end", "", "new period end (YYYY-MM-DD)")
	amcRenewCmd.Flags().StringVar(&renewAmount, "amount", "0", "contract amount")
	_ = amcRenewCmd.MarkFlagRequired("start")
	_ = amcRenewCmd.MarkFlagRequired("end")

	amcCmd.AddCommand(amcListCmd)
	amcCmd.AddCommand(amcRenewCmd)
}
