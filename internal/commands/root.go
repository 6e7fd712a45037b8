package commands

import (
	"github.com/spf13/cobra"

	"github.com/dashfolio-dev/dashfolio/internal/buildinfo"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	dir        string
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dashfolio",
		Short:   "Portfolio, watchlist and transaction dashboard",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", ".", "workspace directory")
	flags.StringVar(&opts.configPath, "config", "", "config file (default <dir>/dashfolio.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(opts),
		newRestoreCommand(opts),
		newClearCommand(opts),
		newDashboardCommand(opts),
		newSimulateCommand(opts),
		newCashFlowCommand(opts),
		newDividendsCommand(opts),
		newWatchlistCommand(opts),
		newLogCommand(opts),
	)

	return rootCmd
}
