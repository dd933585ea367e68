package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fieldops-cli",
	Short: "FieldOps AI landing site tool",
	Long: `fieldops-cli is a command-line companion for the FieldOps AI landing site.

Available commands:
  export    Render the landing page to a static HTML file
  version   Print the CLI version

Use "fieldops-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
