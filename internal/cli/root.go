package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tagex",
	Short: "Tagex - extract tagged code locations from source files",
	Long: `Tagex scans Python source files for a literal marker (TODO:, FIXME:,
AGENT-TODO:, ...) and reports every occurrence together with the enclosing
function or class and its exact line number.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
