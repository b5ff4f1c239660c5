// Command securipass serves the password generator web page and JSON API, and
// offers the same generator and strength evaluator on the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "securipass",
		Short:         "Strong password generator and strength checker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newServeCmd(), newGenerateCmd(), newEvaluateCmd())
	return rootCmd
}
