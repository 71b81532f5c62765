package initialize

import (
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/paths"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/arthur-debert/desks/pkg/types"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	Env types.Env
	// TempSuffix names the sibling the original folder is moved to
	TempSuffix string
	// DryRun checks preconditions and returns the plan without executing it
	DryRun bool
}

// Init moves the desktop folder aside and puts a link to it in its place.
// Running it on an already initialized desktop is a no-op that repairs the
// persisted binding from the live link.
func Init(opts InitOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.init")
	defer logging.LogOperationStart(log, "init")()

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	if opts.Env.Locator == nil {
		return nil, errors.New(errors.ErrInternal, "init needs a folder locator")
	}
	fsys := opts.Env.FS

	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}

	anchor, err := opts.Env.Locator.DesktopPath()
	if err != nil {
		return nil, err
	}

	temp := paths.TemporaryPath(anchor, opts.TempSuffix)
	if binding.Initialized() {
		if !status.SamePath(binding.Anchor, anchor) {
			return nil, errors.Newf(errors.ErrUnexpectedState,
				"already initialized for %s, not %s; run 'desks reset' first", binding.Anchor, anchor).
				WithDetail("anchor", binding.Anchor)
		}
		temp = binding.Temporary
	}

	anchorStatus, err := status.Classify(fsys, anchor)
	if err != nil {
		return nil, err
	}
	tempStatus, err := status.Classify(fsys, temp)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("anchor", anchor).Str("anchorStatus", anchorStatus.String()).
		Str("temp", temp).Str("tempStatus", tempStatus.String()).
		Msg("Classified")

	switch {
	case anchorStatus == types.PathOccupied && tempStatus == types.PathAbsent:
		isDir, err := status.IsDir(fsys, anchor)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, errors.Newf(errors.ErrUnexpectedState, "%s is not a directory", anchor).
				WithDetail("anchor", anchor)
		}
		return initialize(opts, anchor, temp)

	case anchorStatus == types.PathLinkValid:
		tempIsDir, err := status.IsDir(fsys, temp)
		if err != nil {
			return nil, err
		}
		if tempIsDir {
			return repair(opts, binding, anchor, temp)
		}
	}

	return nil, workflow.UnexpectedState("cannot initialize", anchor, anchorStatus, temp, tempStatus)
}

func initialize(opts InitOptions, anchor, temp string) (*workflow.Result, error) {
	log := logging.GetLogger("commands.init")

	plan := []transaction.Operation{
		transaction.RenameDir(anchor, temp).WithLabel("move the desktop folder aside"),
		transaction.CreateLink(temp, anchor).WithLabel("link the desktop to the moved folder"),
	}
	result := &workflow.Result{
		Command: "init",
		Plan:    plan,
		Binding: types.Binding{Anchor: anchor, Temporary: temp, CurrentTarget: temp},
	}

	if opts.DryRun {
		result.DryRun = true
		return result, nil
	}

	if err := workflow.Execute(opts.Env.FS, plan); err != nil {
		return nil, err
	}

	saved, err := opts.Env.Store.Update(func(b *types.Binding) error {
		b.Anchor = anchor
		b.Temporary = temp
		b.CurrentTarget = temp
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStateSave,
			"desktop was initialized but the state could not be saved; run 'desks init' again to repair it")
	}
	result.Binding = saved

	log.Info().Str("anchor", anchor).Str("temp", temp).Msg("Initialized")
	return result, nil
}

// repair handles the already-initialized layout, refreshing the binding from
// the live link when it is missing or stale
func repair(opts InitOptions, binding types.Binding, anchor, temp string) (*workflow.Result, error) {
	log := logging.GetLogger("commands.init")

	link, err := status.CheckLink(opts.Env.FS, anchor)
	if err != nil {
		return nil, err
	}

	stale := !binding.Initialized() ||
		!status.SamePath(binding.Temporary, temp) ||
		!status.SamePath(binding.CurrentTarget, link.Target)
	if !stale {
		log.Info().Msg("Already initialized")
		return workflow.Skip("init", "already initialized", binding), nil
	}

	repaired := binding.Clone()
	repaired.Anchor = anchor
	repaired.Temporary = temp
	repaired.CurrentTarget = link.Target

	if opts.DryRun {
		r := workflow.Skip("init", "already initialized, state would be repaired", repaired)
		r.DryRun = true
		return r, nil
	}

	saved, err := opts.Env.Store.Update(func(b *types.Binding) error {
		b.Anchor = anchor
		b.Temporary = temp
		b.CurrentTarget = link.Target
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Warn().Str("anchor", anchor).Str("target", link.Target).Msg("Already initialized, repaired saved state from the live link")
	return workflow.Skip("init", "already initialized, state repaired", saved), nil
}
