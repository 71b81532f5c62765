package stateview

import (
	"fmt"

	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/types"
)

// ShowOptions defines the options for the Show command.
type ShowOptions struct {
	Env types.Env
	// StateFile is reported as-is so users know where the binding lives
	StateFile string
}

// PathInfo is the live classification of one path
type PathInfo struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Status string `json:"status" yaml:"status" toml:"status"`
	// LinkTarget is set when Path is a symlink
	LinkTarget string `json:"linkTarget,omitempty" yaml:"linkTarget,omitempty" toml:"link_target,omitempty"`
}

// Shortcut is a named shortcut and whether its directory is still there
type Shortcut struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Path   string `json:"path" yaml:"path" toml:"path"`
	Status string `json:"status" yaml:"status" toml:"status"`
}

// View is a read-only snapshot of the saved binding next to what is on disk
type View struct {
	Initialized   bool       `json:"initialized" yaml:"initialized" toml:"initialized"`
	StateFile     string     `json:"stateFile,omitempty" yaml:"stateFile,omitempty" toml:"state_file,omitempty"`
	Anchor        *PathInfo  `json:"anchor,omitempty" yaml:"anchor,omitempty" toml:"anchor,omitempty"`
	Temporary     *PathInfo  `json:"temporary,omitempty" yaml:"temporary,omitempty" toml:"temporary,omitempty"`
	CurrentTarget *PathInfo  `json:"currentTarget,omitempty" yaml:"currentTarget,omitempty" toml:"current_target,omitempty"`
	Shortcuts     []Shortcut `json:"shortcuts,omitempty" yaml:"shortcuts,omitempty" toml:"shortcuts,omitempty"`
	// Problems lists disagreements between the binding and the filesystem
	Problems []string `json:"problems,omitempty" yaml:"problems,omitempty" toml:"problems,omitempty"`
}

// Healthy reports whether no problems were found
func (v *View) Healthy() bool {
	return len(v.Problems) == 0
}

// Show builds the state view. It never mutates anything.
func Show(opts ShowOptions) (*View, error) {
	log := logging.GetLogger("commands.state")

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	fsys := opts.Env.FS

	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}

	view := &View{Initialized: binding.Initialized(), StateFile: opts.StateFile}

	inspect := func(path string) (*PathInfo, error) {
		if path == "" {
			return nil, nil
		}
		res, err := status.CheckLink(fsys, path)
		if err != nil {
			return nil, err
		}
		return &PathInfo{Path: path, Status: res.Status.String(), LinkTarget: res.Target}, nil
	}

	if view.Anchor, err = inspect(binding.Anchor); err != nil {
		return nil, err
	}
	if view.Temporary, err = inspect(binding.Temporary); err != nil {
		return nil, err
	}
	if view.CurrentTarget, err = inspect(binding.CurrentTarget); err != nil {
		return nil, err
	}

	for _, name := range binding.ShortcutNames() {
		path := binding.Shortcuts[name]
		st, err := status.Classify(fsys, path)
		if err != nil {
			return nil, err
		}
		view.Shortcuts = append(view.Shortcuts, Shortcut{Name: name, Path: path, Status: st.String()})
		if !st.Exists() || st == types.PathLinkBroken {
			view.Problems = append(view.Problems, fmt.Sprintf("shortcut %q points at missing %s", name, path))
		}
	}

	if binding.Initialized() {
		view.Problems = append(view.Problems, diagnose(binding, view)...)
	}

	log.Debug().Bool("initialized", view.Initialized).Int("problems", len(view.Problems)).Msg("State inspected")
	return view, nil
}

func diagnose(b types.Binding, v *View) []string {
	var problems []string

	switch v.Anchor.Status {
	case types.PathLinkValid.String():
		if b.CurrentTarget != "" && !status.SamePath(v.Anchor.LinkTarget, b.CurrentTarget) {
			problems = append(problems, fmt.Sprintf(
				"desktop link points at %s but the saved target is %s; 'desks init' repairs this",
				v.Anchor.LinkTarget, b.CurrentTarget))
		}
	case types.PathLinkBroken.String():
		problems = append(problems, fmt.Sprintf("desktop link %s is broken", b.Anchor))
	case types.PathAbsent.String():
		problems = append(problems, fmt.Sprintf("desktop %s is missing; 'desks reset' can move the original back", b.Anchor))
	default:
		problems = append(problems, fmt.Sprintf("desktop %s is a real folder, not a link", b.Anchor))
	}

	if v.Temporary.Status == types.PathAbsent.String() {
		problems = append(problems, fmt.Sprintf("original folder %s is missing", b.Temporary))
	}
	if b.CurrentTarget == "" {
		problems = append(problems, "no current target saved")
	}
	return problems
}
