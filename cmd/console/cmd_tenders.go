package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var tendersCmd = &cobra.Command{
	Use:   "tenders",
	Short: "Track tender submissions",
}

var tendersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenders",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.Tenders.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.TenderViews(page.Results) {
			rows = append(rows, []string{
				strconv.Itoa(v.ID), v.TenderNo, v.Name, v.Authority, v.EMD, v.Deposits, ui.Status(v.Status),
			})
		}
		fmt.Print(ui.Table([]string{"ID", "TENDER NO", "NAME", "AUTHORITY", "EMD", "DEPOSITS", "STATUS"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var tendersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one tender with deposit details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tender id %q", args[0])
		}
		t, err := apiClient.Tenders.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		pairs := [][2]string{
			{"Tender No", t.TenderNo},
			{"Name", t.Name},
			{"Authority", t.Authority},
			{"Submission", t.SubmissionDate},
			{"Opening", t.OpeningDate},
			{"EMD", view.Money(t.EMDAmount)},
			{"Status", ui.Status(t.Status)},
			{"Result", t.Result},
		}
		if t.SecurityDeposit1 != nil {
			pairs = append(pairs, [2]string{"Deposit 1", view.Money(*t.SecurityDeposit1)})
			if t.SecurityDeposit1DDNumber != nil && t.SecurityDeposit1DDDate != nil {
				pairs = append(pairs, [2]string{"Deposit 1 DD", fmt.Sprintf("%s dated %s", *t.SecurityDeposit1DDNumber, *t.SecurityDeposit1DDDate)})
			}
		}
		if t.SecurityDeposit2 != nil {
			pairs = append(pairs, [2]string{"Deposit 2", view.Money(*t.SecurityDeposit2)})
			if t.SecurityDeposit2DDNumber != nil && t.SecurityDeposit2DDDate != nil {
				pairs = append(pairs, [2]string{"Deposit 2 DD", fmt.Sprintf("%s dated %s", *t.SecurityDeposit2DDNumber, *t.SecurityDeposit2DDDate)})
			}
		}
		fmt.Print(ui.Detail(pairs))
		return nil
	},
}

func init() {
	listFlags(tendersListCmd)
	tendersCmd.AddCommand(tendersListCmd)
	tendersCmd.AddCommand(tendersShowCmd)
}
