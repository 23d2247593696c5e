// Command console is the terminal front end of the Electrocom ERP: the
// same thin presentational layer as the web console, with every command
// reducing to one or two API calls and a rendered table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Electrocom-Solutions/erp-console/internal/api"
	"github.com/Electrocom-Solutions/erp-console/internal/infrastructure/config"
	"github.com/Electrocom-Solutions/erp-console/internal/infrastructure/logger"
)

var (
	verbose bool

	cfg       *config.Config
	log       *zap.Logger
	apiClient *api.Client

	// Shared list flags.
	flagPage   int
	flagSearch string
	flagStatus string
)

var rootCmd = &cobra.Command{
	Use:   "erp-console",
	Short: "Terminal console for the Electrocom ERP backend",
	Long: `erp-console talks to the Electrocom ERP REST backend: client records,
AMC tracking, tenders, projects, stock, payroll, notifications, the
training-video library, and document templates.

Configure the backend with ERP_CONSOLE_API_BASE_URL or config.toml,
then authenticate with "erp-console auth login".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		log = logger.New(cfg.Log)

		cookies, err := api.OpenCookieStore(cfg.Session.CookieFile)
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		apiClient, err = api.New(api.Config{
			BaseURL:   cfg.API.BaseURL,
			CSRFPath:  cfg.API.CSRFPath,
			UserAgent: cfg.API.UserAgent,
			Cookies:   cookies,
			Logger:    log,
		})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// listFlags attaches the shared pagination/filter flags to a list command.
func listFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	cmd.Flags().StringVar(&flagSearch, "search", "", "search text")
	cmd.Flags().StringVar(&flagStatus, "status", "", "status filter")
}

func listParams() api.ListParams {
	return api.ListParams{Page: flagPage, Search: flagSearch, Status: flagStatus}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (per-request trace)")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(amcCmd)
	rootCmd.AddCommand(tendersCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(firmsCmd)

	if err := rootCmd.Execute(); err != nil {
		// API errors are already descriptive; network errors carry their
		// own diagnostic hint.
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
