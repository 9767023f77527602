package main

import (
	"fmt"

	"github.com/n2code/docwriter/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docwriter %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
