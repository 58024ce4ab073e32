package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/buildinfo"
)

type globalFlags struct {
	dir      string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "expense-tracker",
		Short:   "Track expenses and filter them by category or amount",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(&flags),
		newRemoveCommand(&flags),
		newListCommand(&flags),
		newFilterCommand(&flags),
		newImportCommand(&flags),
	)

	return rootCmd
}
