package cli

import (
	"github.com/arthur-debert/desks/pkg/commands"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/state"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			result, err := commands.Init(commands.InitOptions{
				Env:        env,
				TempSuffix: a.cfg.Anchor.TempSuffix,
				DryRun:     a.opts.dryRun,
			})
			if err != nil {
				return err
			}
			return a.renderResult(cmd, result)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	var (
		makeDir bool
		usual   string
	)

	cmd := &cobra.Command{
		Use:     "set <target>",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			result, err := commands.Set(commands.SetOptions{
				Env:           env,
				Target:        args[0],
				MakeDir:       makeDir,
				Usual:         usual,
				ParkingSuffix: a.cfg.Anchor.ParkingSuffix,
				DryRun:        a.opts.dryRun,
			})
			if err != nil {
				return err
			}
			return a.renderResult(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&makeDir, "make-dir", "p", false, MsgFlagMakeDir)
	cmd.Flags().StringVarP(&usual, "usual", "u", "", MsgFlagUsual)
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var keepShortcuts bool

	cmd := &cobra.Command{
		Use:     "reset",
		Short:   MsgResetShort,
		Long:    MsgResetLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			result, err := commands.Reset(commands.ResetOptions{
				Env:           env,
				KeepShortcuts: keepShortcuts,
				DryRun:        a.opts.dryRun,
			})
			if err != nil {
				return err
			}
			return a.renderResult(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&keepShortcuts, "keep-shortcuts", "k", false, MsgFlagKeepShortcuts)
	return cmd
}

func newOriginalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "original",
		Aliases: []string{"o", "ori"},
		Short:   MsgOriginalShort,
		Long:    MsgOriginalLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			result, err := commands.Original(commands.OriginalOptions{
				Env:           env,
				ParkingSuffix: a.cfg.Anchor.ParkingSuffix,
				DryRun:        a.opts.dryRun,
			})
			if err != nil {
				return err
			}
			return a.renderResult(cmd, result)
		},
	}
}

func newStateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "state",
		Aliases: []string{"status"},
		Short:   MsgStateShort,
		Long:    MsgStateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := a.env()
			if err != nil {
				return err
			}
			view, err := commands.ShowState(commands.ShowStateOptions{
				Env:       env,
				StateFile: a.cfg.State.File,
			})
			if err != nil {
				return err
			}
			return a.renderState(cmd, view)
		},
	}
}

func newUsualCmd(a *app) *cobra.Command {
	var (
		remove bool
		add    string
	)

	cmd := &cobra.Command{
		Use:     "usual [name]",
		Aliases: []string{"u", "switch"},
		Short:   MsgUsualShort,
		Long:    MsgUsualLong,
		Example: MsgUsualExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return shortcutNames(a), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if remove && add != "" {
				return errors.New(errors.ErrInvalidInput, MsgErrUsualArgs)
			}

			env, err := a.env()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if remove || add != "" {
					return errors.New(errors.ErrInvalidInput, MsgErrUsualName)
				}
				view, err := commands.ShowState(commands.ShowStateOptions{Env: env})
				if err != nil {
					return err
				}
				return a.renderState(cmd, view)
			}

			opts := commands.UsualOptions{
				Env:           env,
				Name:          args[0],
				Target:        add,
				ParkingSuffix: a.cfg.Anchor.ParkingSuffix,
				DryRun:        a.opts.dryRun,
			}

			var result *commands.Result
			switch {
			case remove:
				result, err = commands.UsualRemove(opts)
			case add != "":
				result, err = commands.UsualAdd(opts)
			default:
				result, err = commands.UsualSwitch(opts)
			}
			if err != nil {
				return err
			}
			return a.renderResult(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, MsgFlagRemove)
	cmd.Flags().StringVar(&add, "add", "", MsgFlagAdd)
	return cmd
}

// shortcutNames lists saved shortcut names for shell completion
func shortcutNames(a *app) []string {
	cfg, err := a.config()
	if err != nil {
		return nil
	}
	b, err := state.NewStore(cfg.State.File).Load()
	if err != nil {
		log := logging.GetLogger("cli")
		log.Debug().Err(err).Msg("No shortcuts for completion")
		return nil
	}
	return b.ShortcutNames()
}
