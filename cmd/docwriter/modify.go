package main

import (
	"github.com/n2code/docwriter"
	"github.com/n2code/docwriter/cmd/docwriter/flags"
	"github.com/spf13/cobra"
)

var purgeWithoutConfirmation bool

var updateCmd = &cobra.Command{
	Use:   "update NAV_PATH DOCUMENT",
	Short: "Point an existing nav entry to another document",
	Long:  `Replace the document path of the entry at NAV_PATH. DOCUMENT is stored as given, relative to the documentation root.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		_, err = api.Update(args[0], args[1])
		return err
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename NAV_PATH NEW_NAME",
	Short: "Rename a nav entry and move its directory along",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		_, err = api.Rename(args[0], args[1])
		return err
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge NAV_PATH",
	Short: "Remove a section from the nav and delete its directory with all contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		var choice docwriter.RequestChoice
		if purgeWithoutConfirmation {
			choice = AutoChooseDefaultOption(quiet)
		} else {
			choice = PromptUser(fancyTerminal())
		}
		_, err = api.PurgeSection(args[0], choice)
		return err
	},
}

var tidyCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Move the index entry of every section to the top",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		return api.Tidy()
	},
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeWithoutConfirmation, flags.PurgeWithoutConfirmation, false, "do not ask before deleting non-empty sections")

	rootCmd.AddCommand(updateCmd, renameCmd, purgeCmd, tidyCmd)
}
