package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lang-engine",
	Short: "Language identification engine for editor buffers",
	Long: `lang-engine decides which programming or markup language a document is,
the same way the editor does it live: filename extensions are authoritative
when unambiguous, weighted content signatures break the remaining ties, and a
hysteresis policy keeps the answer stable as content changes.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
