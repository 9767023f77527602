package main

import (
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index NAV_PATH FILE",
	Short: "Add a document to the nav and copy it into the documentation root",
	Long: `Add the FILE to the nav at NAV_PATH and copy it into the directory mirroring the path.
Missing sections are created on the way, each with a directory and a stub index document.
If the last two segments are equal the document is stored in the parent's directory,
e.g. Apps.Apps + readme.md is stored as Apps/readme.md.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		_, err = api.Index(args[0], args[1])
		return err
	},
}

var unindexCmd = &cobra.Command{
	Use:   "unindex NAV_PATH [FILE]",
	Short: "Remove an entry from the nav",
	Long: `Remove the entry at NAV_PATH from the nav. Sections left empty disappear as well.
If FILE is given its copy is removed from the mirrored directory, which is deleted if nothing is left in it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		var sourceFile string
		if len(args) == 2 {
			sourceFile = args[1]
		}
		_, err = api.Unindex(args[0], sourceFile)
		return err
	},
}

var indexFolderCmd = &cobra.Command{
	Use:   "index-folder NAV_PATH",
	Short: "Make a section directory's index document the landing page of the section",
	Long: `Register the index document of the existing directory mirroring NAV_PATH as the first entry of the section.
A stub index document is written if the directory has none.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		return api.IndexFolder(args[0])
	},
}

func init() {
	rootCmd.AddCommand(indexCmd, unindexCmd, indexFolderCmd)
}
