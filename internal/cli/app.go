package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/desks/pkg/commands/stateview"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/config"
	"github.com/arthur-debert/desks/pkg/filesystem"
	"github.com/arthur-debert/desks/pkg/output"
	"github.com/arthur-debert/desks/pkg/platform"
	"github.com/arthur-debert/desks/pkg/state"
	"github.com/arthur-debert/desks/pkg/types"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	anchor     string
	format     string
}

// app resolves configuration and collaborators once per invocation
type app struct {
	opts globalOptions
	cfg  *config.Config
}

// config loads the configuration on first use, applying flag overrides
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := map[string]interface{}{}
	if a.opts.anchor != "" {
		overrides["anchor.path"] = a.opts.anchor
	}
	if a.opts.format != "" {
		overrides["output.format"] = a.opts.format
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.opts.configFile, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// env wires the OS-backed collaborators the workflows need
func (a *app) env() (types.Env, error) {
	cfg, err := a.config()
	if err != nil {
		return types.Env{}, err
	}
	return types.Env{
		FS:       filesystem.NewOS(),
		Store:    state.NewStore(cfg.State.File),
		Locator:  platform.NewLocator(cfg.Anchor.Path),
		Notifier: platform.NewNotifier(cfg.Refresh.Enabled),
	}, nil
}

// format resolves the output format from the flag, then the configuration.
// It never fails so errors can always be rendered.
func (a *app) format(w io.Writer) output.Format {
	name := a.opts.format
	if name == "" && a.cfg != nil {
		name = a.cfg.Output.Format
	}
	f, err := output.ParseFormat(name)
	if err != nil {
		f = output.FormatAuto
	}
	if f != output.FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return output.DetectFormat(file)
	}
	return output.FormatText
}

func (a *app) renderer(w io.Writer) (output.Renderer, error) {
	return output.NewRenderer(w, a.format(w))
}

func (a *app) renderResult(cmd *cobra.Command, result *workflow.Result) error {
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

func (a *app) renderState(cmd *cobra.Command, view *stateview.View) error {
	r, err := a.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderState(view)
}
