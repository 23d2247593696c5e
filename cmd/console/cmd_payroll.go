package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var (
	payrollYear  int
	payrollMonth int
	paidOnDate   string
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Review monthly payroll",
}

var payrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payroll records for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParams()
		var (
			page *api.Page[api.PayrollRecord]
			err  error
		)
		if payrollYear > 0 && payrollMonth > 0 {
			page, err = apiClient.Payroll.ListMonth(cmd.Context(), payrollYear, payrollMonth, params)
		} else {
			page, err = apiClient.Payroll.List(cmd.Context(), params)
		}
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.PayrollViews(page.Results) {
			rows = append(rows, []string{strconv.Itoa(v.ID), v.Employee, v.Period, v.Net, ui.Status(v.Status)})
		}
		fmt.Print(ui.Table([]string{"ID", "EMPLOYEE", "PERIOD", "NET PAY", "STATUS"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var payrollPaidCmd = &cobra.Command{
	Use:   "paid <id>",
	Short: "Mark a payroll record as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid payroll id %q", args[0])
		}
		date := paidOnDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		rec, err := apiClient.Payroll.MarkPaid(cmd.Context(), id, date)
		if err != nil {
			return err
		}
		fmt.Printf("marked %s paid (%s)\n", rec.EmployeeName, view.Money(rec.NetPay))
		return nil
	},
}

func init() {
	listFlags(payrollListCmd)
	payrollListCmd.Flags().IntVar(&payrollYear, "year", 0, "payroll year")
	payrollListCmd.Flags().IntVar(&payrollMonth, "month", 0, "payroll month (1-12)")
	payrollPaidCmd.Flags().StringVar(&paidOnDate, "date", "", "payment date (YYYY-MM-DD, default today)")

	payrollCmd.AddCommand(payrollListCmd)
	payrollCmd.AddCommand(payrollPaidCmd)
}
