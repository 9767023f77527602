package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/n2code/docwriter/cmd/docwriter/flags"
	"github.com/n2code/docwriter/internal/navtree"
	"github.com/spf13/cobra"
)

var treeWithIndexMarks bool
var treeWatching bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the nav as a tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		if !treeWatching {
			return api.PrintTree(treeWithIndexMarks)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		clearScreen := fancyTerminal()
		return api.WatchTree(ctx, func() {
			if clearScreen {
				fmt.Fprint(cmd.OutOrStdout(), "\033[H\033[2J")
			}
			if err := api.PrintTree(treeWithIndexMarks); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get NAV_PATH",
	Short: "Print the document path or the entries found at a navigation path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := open(cmd)
		if err != nil {
			return err
		}
		value, exists, err := api.Lookup(args[0])
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s is not indexed", args[0])
		}
		out := cmd.OutOrStdout()
		switch v := value.(type) {
		case navtree.Leaf:
			fmt.Fprintln(out, v)
		case *navtree.Section:
			for _, entry := range v.Children {
				if entry.IsBare() {
					fmt.Fprintf(out, "- %v\n", entry.Value)
				} else if entry.IsSection() {
					fmt.Fprintf(out, "%s/\n", entry.Name)
				} else {
					fmt.Fprintf(out, "%s: %v\n", entry.Name, entry.Value)
				}
			}
		}
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeWithIndexMarks, flags.TreeWithIndexMarks, false, "mark the index entry of each section")
	treeCmd.Flags().BoolVar(&treeWatching, flags.TreeWatching, false, "redraw whenever mkdocs.yml changes, until interrupted")

	rootCmd.AddCommand(treeCmd, getCmd)
}
