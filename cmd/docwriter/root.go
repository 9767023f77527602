package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/n2code/docwriter"
	"github.com/n2code/docwriter/cmd/docwriter/flags"
	"github.com/n2code/docwriter/internal/config"
	"github.com/n2code/docwriter/internal/output"
	"github.com/n2code/docwriter/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose bool
	quiet   bool
	plain   bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "docwriter",
	Short: "Maintain the nav of an MkDocs site together with its documentation directory",
	Long: `docwriter edits the nav section of mkdocs.yml and keeps one directory per nav section
in the documentation root. Documents are addressed by dotted navigation paths, e.g. "Apps.Demo".

Settings are read from a .env file, the environment (MKDOCS_CONFIG_PATH, MKDOCS_DOC_ROOT_PATH,
DEFAULT_TEXT_FOR_NEW_SECTIONS, ...) and flags, in increasing order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return errors.New("quiet mode and verbose mode are mutually exclusive")
		}
		return nil
	},
}

func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&verbose, flags.Verbose, flags.VerboseShort, false, "output more details on what is done, including the changes to mkdocs.yml")
	persistent.BoolVarP(&quiet, flags.Quiet, flags.QuietShort, false, "output as little as possible, i.e. only requested information")
	persistent.BoolVar(&plain, flags.Plain, false, "do not use colors or other escape sequences")
	persistent.StringVar(&envFile, flags.EnvFile, config.DefaultEnvFile, "file with settings in KEY=value form (missing is fine)")
	config.RegisterFlags(persistent)

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docwriter %s\n", version.String()))
}

func fancyTerminal() bool {
	return !plain && term.IsTerminal(int(os.Stdout.Fd()))
}

// open loads the settings and the nav for a command.
func open(cmd *cobra.Command) (docwriter.Docwriter, error) {
	settings, err := config.Load(envFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	options := docwriter.CreateConfig{
		FancyTerminal: fancyTerminal(),
		Out:           cmd.OutOrStdout(),
		ErrOut:        cmd.ErrOrStderr(),
	}
	if verbose {
		options.Verbosity = docwriter.VerboseMode
	}
	if quiet {
		options.Verbosity = docwriter.QuietMode
	}
	return docwriter.Open(settings, options)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		style := output.Styler(!plain && term.IsTerminal(int(os.Stderr.Fd())))
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		if errors.Is(err, docwriter.ErrWriteFailure) && !quiet {
			fmt.Fprintln(os.Stderr, "(the change may be applied partially, see the backups of mkdocs.yml)")
		}
		os.Exit(1)
	}
}
