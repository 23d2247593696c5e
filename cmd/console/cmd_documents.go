package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Electrocom-Solutions/erp-console/cmd/console/ui"
)

var (
	downloadDir string
	exportIDs   []int
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Manage document templates and their versions",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := apiClient.Documents.List(cmd.Context(), listParams())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Results))
		for _, t := range page.Results {
			rows = append(rows, []string{
				strconv.Itoa(t.ID), t.Name, t.Category, "v" + strconv.Itoa(t.CurrentVersion), t.UpdatedAt,
			})
		}
		fmt.Print(ui.Table([]string{"ID", "NAME", "CATEGORY", "VERSION", "UPDATED"}, rows))
		fmt.Println(ui.PageFooter(flagPage, page.TotalPages(), page.Count))
		return nil
	},
}

var documentsVersionsCmd = &cobra.Command{
	Use:   "versions <template-id>",
	Short: "List a template's upload history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid template id %q", args[0])
		}
		versions, err := apiClient.Documents.Versions(cmd.Context(), id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(versions))
		for _, v := range versions {
			rows = append(rows, []string{
				"v" + strconv.Itoa(v.Version), strconv.Itoa(v.ID), v.FileName,
				strconv.FormatInt(v.FileSize, 10), v.UploadedAt,
			})
		}
		fmt.Print(ui.Table([]string{"VERSION", "ID", "FILE", "BYTES", "UPLOADED"}, rows))
		return nil
	},
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload <template-id> <file>",
	Short: "Upload a new version of a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid template id %q", args[0])
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}
		version, err := apiClient.Documents.UploadVersion(cmd.Context(), id, filepath.Base(args[1]), content)
		if err != nil {
			return err
		}
		fmt.Printf("uploaded %s as v%d\n", version.FileName, version.Version)
		return nil
	},
}

var documentsDownloadCmd = &cobra.Command{
	Use:   "download <version-id>",
	Short: "Download one stored version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version id %q", args[0])
		}
		dl, err := apiClient.Documents.DownloadVersion(cmd.Context(), id)
		if err != nil {
			return err
		}
		name := dl.FileName
		if name == "" {
			name = fmt.Sprintf("template-version-%d", id)
		}
		dest := filepath.Join(downloadDir, name)
		if err := os.WriteFile(dest, dl.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		fmt.Printf("saved %s (%d bytes)\n", dest, len(dl.Data))
		return nil
	},
}

var documentsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the latest version of templates as an archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		dl, err := apiClient.Documents.BulkExport(cmd.Context(), exportIDs)
		if err != nil {
			return err
		}
		name := dl.FileName
		if name == "" {
			name = "templates-export.zip"
		}
		dest := filepath.Join(downloadDir, name)
		if err := os.WriteFile(dest, dl.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		fmt.Printf("saved %s (%d bytes)\n", dest, len(dl.Data))
		return nil
	},
}

func init() {
	listFlags(documentsListCmd)
	documentsDownloadCmd.Flags().StringVarP(&downloadDir, "dir", "d", ".", "destination directory")
	documentsExportCmd.Flags().StringVarP(&downloadDir, "dir", "d", ".", "destination directory")
	documentsExportCmd.Flags().IntSliceVar(&exportIDs, "ids", nil, "template ids (empty = all)")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsVersionsCmd)
	documentsCmd.AddCommand(documentsUploadCmd)
	documentsCmd.AddCommand(documentsDownloadCmd)
	documentsCmd.AddCommand(documentsExportCmd)
}
