package cli

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/desks/internal/version"
	"github.com/arthur-debert/desks/pkg/cobrax/topics"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRoot()
	return rootCmd
}

func newRoot() (*cobra.Command, *app) {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "desks",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if _, err := output.ParseFormat(a.opts.format); err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&a.opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&a.opts.anchor, "anchor", "", MsgFlagAnchor)
	flags.StringVarP(&a.opts.format, "format", "o", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newSetCmd(a))
	rootCmd.AddCommand(newUsualCmd(a))
	rootCmd.AddCommand(newOriginalCmd(a))
	rootCmd.AddCommand(newResetCmd(a))
	rootCmd.AddCommand(newStateCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Topic-based help from the embedded markdown files
	source, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	tm, err := topics.InitializeWithOptions(rootCmd, source, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err != nil {
		panic(err)
	}
	rootCmd.AddCommand(newTopicsCmd(tm))

	return rootCmd, a
}

// Execute runs the CLI with os.Args and returns the process exit code
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd, a := newRoot()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	log.Error().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	reportError(a, err, stdout, stderr)
	return 1
}

// reportError renders err for the user. Structured formats get an error
// document on stdout so scripts always receive one.
func reportError(a *app, err error, stdout, stderr io.Writer) {
	w := stderr
	f := a.format(stdout)
	if f.Structured() {
		w = stdout
	} else {
		f = a.format(stderr)
	}

	r, rErr := output.NewRenderer(w, f)
	if rErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}
	_ = r.RenderError(err)

	if f.Structured() {
		return
	}
	switch {
	case errors.IsErrorCode(err, errors.ErrRollback):
		_ = r.RenderMessage(fmt.Sprintf(MsgRollbackHint, logging.LogFilePath()))
	case errors.IsErrorCode(err, errors.ErrStateSave):
		_ = r.RenderMessage(MsgStateSaveHint)
	}
}
