package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/desks/internal/version"
	"github.com/arthur-debert/desks/pkg/cobrax/topics"
	"github.com/arthur-debert/desks/pkg/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := cmd.OutOrStdout().Write([]byte(config.DefaultsContent()))
				return err
			}

			cfg, err := a.config()
			if err != nil {
				return err
			}
			if cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", cfg.Source)
			}
			enc := toml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndentTables(true)
			return enc.Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tm.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man [dir]",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManDir, err)
			}
			header := &doc.GenManHeader{
				Title:   "DESKS",
				Section: "1",
				Source:  "desks " + version.Version,
				Manual:  "desks manual",
			}
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
}
