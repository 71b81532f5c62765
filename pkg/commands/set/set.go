package set

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/paths"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/arthur-debert/desks/pkg/types"
)

// SetOptions defines the options for the Set command.
type SetOptions struct {
	Env types.Env
	// Target is the directory the desktop should show
	Target string
	// MakeDir creates Target (and its parents) when missing
	MakeDir bool
	// Usual registers Target under this shortcut name after switching
	Usual string
	// ParkingSuffix names the slot the current link is parked in
	ParkingSuffix string
	// DryRun checks preconditions and returns the plan without executing it
	DryRun bool
	// Command overrides the result's command name for wrapping workflows
	Command string
}

// Set points the desktop link at a new target.
//
// The live link is first renamed to a parking slot, then the new link is
// created and only then is the parked link deleted. A failure before the
// last step never leaves the anchor without a link.
func Set(opts SetOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.set")
	defer logging.LogOperationStart(log, "set")()

	command := opts.Command
	if command == "" {
		command = "set"
	}

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	fsys := opts.Env.FS

	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}
	if !binding.Initialized() {
		return nil, errors.New(errors.ErrNotInitialized, "desks is not initialized, run 'desks init' first")
	}

	target, err := paths.NormalizePath(opts.Target)
	if err != nil {
		return nil, err
	}

	if opts.Usual != "" {
		if err := workflow.ValidateShortcutName(opts.Usual); err != nil {
			return nil, err
		}
		if existing, ok := binding.Shortcuts[opts.Usual]; ok {
			return nil, errors.Newf(errors.ErrShortcutExists,
				"shortcut %q already exists (%s -> %s)", opts.Usual, opts.Usual, existing).
				WithDetail("name", opts.Usual)
		}
	}

	if status.SamePath(target, binding.CurrentTarget) {
		log.Info().Str("target", target).Msg("Already the current target")
		return workflow.Skip(command, "already the current target", binding), nil
	}

	if err := checkNotInsideAnchor(target, binding.Anchor); err != nil {
		return nil, err
	}

	created, err := prepareTarget(opts, target)
	if err != nil {
		return nil, err
	}

	anchor, err := status.CheckLink(fsys, binding.Anchor)
	if err != nil {
		return nil, err
	}
	if anchor.Status != types.PathLinkValid {
		tempStatus, err := status.Classify(fsys, binding.Temporary)
		if err != nil {
			return nil, err
		}
		removeCreated(fsys, created)
		return nil, workflow.UnexpectedState("cannot switch target",
			binding.Anchor, anchor.Status, binding.Temporary, tempStatus)
	}

	current := anchor.Target
	if binding.CurrentTarget != "" && !status.SamePath(current, binding.CurrentTarget) {
		log.Warn().
			Str("saved", binding.CurrentTarget).
			Str("live", current).
			Msg("Desktop link points somewhere other than the saved target")
	}
	if status.SamePath(target, current) {
		// The link already points there, only the saved state lags behind
		saved, err := record(opts, target)
		if err != nil {
			return nil, err
		}
		return workflow.Skip(command, "link already points at the target, state updated", saved), nil
	}

	slot, err := paths.ParkingSlot(fsys, binding.Anchor, opts.ParkingSuffix)
	if err != nil {
		removeCreated(fsys, created)
		return nil, err
	}

	plan := []transaction.Operation{
		transaction.RenameDir(binding.Anchor, slot).WithLabel("park the current desktop link"),
		transaction.CreateLink(target, binding.Anchor).WithLabel("link the desktop to " + target),
		transaction.DeleteLink(current, slot).WithLabel("discard the parked link"),
	}

	if opts.DryRun {
		next := binding.Clone()
		next.CurrentTarget = target
		if opts.Usual != "" {
			if next.Shortcuts == nil {
				next.Shortcuts = make(map[string]string)
			}
			next.Shortcuts[opts.Usual] = target
		}
		return &workflow.Result{Command: command, DryRun: true, Plan: plan, Binding: next}, nil
	}

	if err := workflow.Execute(fsys, plan); err != nil {
		removeCreated(fsys, created)
		return nil, err
	}

	saved, err := record(opts, target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateSave,
			"desktop now points at %s but the state could not be saved; run 'desks init' to repair it", target)
	}

	workflow.Notify(opts.Env)
	log.Info().Str("target", target).Msg("Desktop switched")
	return &workflow.Result{Command: command, Plan: plan, Binding: saved}, nil
}

// record saves target as current and registers the shortcut, if any
func record(opts SetOptions, target string) (types.Binding, error) {
	return opts.Env.Store.Update(func(b *types.Binding) error {
		b.CurrentTarget = target
		if opts.Usual == "" {
			return nil
		}
		if _, ok := b.Shortcuts[opts.Usual]; ok {
			return errors.Newf(errors.ErrShortcutExists, "shortcut %q already exists", opts.Usual)
		}
		if b.Shortcuts == nil {
			b.Shortcuts = make(map[string]string)
		}
		b.Shortcuts[opts.Usual] = target
		return nil
	})
}

// checkNotInsideAnchor rejects targets reached through the anchor link: they
// would dangle as soon as the link is moved
func checkNotInsideAnchor(target, anchor string) error {
	anchor = filepath.Clean(anchor)
	if target == anchor || strings.HasPrefix(target, anchor+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput,
			"target %s is inside the desktop link %s, use the real path instead", target, anchor).
			WithDetail("target", target)
	}
	return nil
}

// prepareTarget checks that target is a directory or a link to one,
// creating it when MakeDir is set. It returns the directories it created,
// deepest first.
func prepareTarget(opts SetOptions, target string) ([]string, error) {
	log := logging.GetLogger("commands.set")
	fsys := opts.Env.FS

	st, err := status.Classify(fsys, target)
	if err != nil {
		return nil, err
	}

	switch st {
	case types.PathOccupied, types.PathLinkValid:
		isDir, err := status.ResolvesToDir(fsys, target)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, errors.Newf(errors.ErrInvalidInput, "target %s is not a directory", target).
				WithDetail("target", target)
		}
		return nil, nil

	case types.PathLinkBroken:
		return nil, errors.Newf(errors.ErrInvalidInput, "target %s is a broken link", target).
			WithDetail("target", target)
	}

	if opts.MakeDir {
		if opts.DryRun {
			log.Info().Str("target", target).Msg("Would create target directory")
			return nil, nil
		}
		missing, err := missingDirs(fsys, target)
		if err != nil {
			return nil, err
		}
		if err := fsys.MkdirAll(target, 0755); err != nil {
			removeCreated(fsys, missing)
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to create %s", target)
		}
		log.Info().Str("target", target).Msg("Created target directory")
		return missing, nil
	}

	parentExists, err := status.ResolvesToDir(fsys, filepath.Dir(target))
	if err != nil {
		return nil, err
	}
	if !parentExists {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"parent of %s does not exist, use --make-dir to create it", target).
			WithDetail("target", target)
	}
	return nil, errors.Newf(errors.ErrInvalidInput,
		"target %s does not exist, use --make-dir to create it", target).
		WithDetail("target", target)
}

// missingDirs lists path and each ancestor up to the first one that exists,
// deepest first
func missingDirs(fsys types.FS, path string) ([]string, error) {
	var missing []string
	for p := path; ; p = filepath.Dir(p) {
		st, err := status.Classify(fsys, p)
		if err != nil {
			return nil, err
		}
		if st.Exists() {
			return missing, nil
		}
		missing = append(missing, p)
		if filepath.Dir(p) == p {
			return missing, nil
		}
	}
}

// removeCreated deletes directories made by --make-dir after the switch
// failed. It stops at the first directory that cannot be removed, which
// leaves every ancestor of it in place too.
func removeCreated(fsys types.FS, dirs []string) {
	log := logging.GetLogger("commands.set")
	for _, dir := range dirs {
		if err := fsys.Remove(dir); err != nil {
			log.Warn().Err(err).Str("path", dir).Msg("Could not remove directory created for the target")
			return
		}
		log.Debug().Str("path", dir).Msg("Removed directory created for the target")
	}
}
