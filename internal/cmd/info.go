package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Inspect the language catalog",
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
