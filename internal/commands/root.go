package commands

import (
	"github.com/spf13/cobra"

	"github.com/subtally/subtally-api/internal/version"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "subtally",
		Short:   "Analyze bank statements for recurring subscription spending",
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProcessCommand())

	return rootCmd
}
