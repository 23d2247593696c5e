package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/view"
)

var projectStage string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Track projects across kanban stages",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects (--stage for one kanban column)",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := listParams()
		var (
			page *api.Page[api.Project]
			err  error
		)
		if projectStage != "" {
			page, err = apiClient.Projects.ListByStage(cmd.Context(), projectStage, params)
		} else {
			page, err = apiClient.Projects.List(cmd.Context(), params)
		}
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, v := range view.ProjectViews(page.Results) {
			rows = append(rows, []string{
				strconv.Itoa(v.ID), v.Name, v.Client, ui.Status(v.Stage), v.Deadline, v.Value,
			})
		}
		fmt.Print(ui.Table([]string{"ID", "NAME", "CLIENT", "STAGE", "DEADLINE", "VALUE"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var projectsMoveCmd = &cobra.Command{
	Use:   "move <id> <stage>",
	Short: "Move a project to another stage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}
		p, err := apiClient.Projects.Move(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("moved %q to %s\n", p.Name, p.Stage)
		return nil
	},
}

func init() {
	listFlags(projectsListCmd)
	projectsListCmd.Flags().StringVar(&projectStage, "stage", "", "kanban stage filter")
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsMoveCmd)
}
