package reset

import (
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/status"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/arthur-debert/desks/pkg/types"
)

// ResetOptions defines the options for the Reset command.
type ResetOptions struct {
	Env types.Env
	// KeepShortcuts preserves the named shortcuts when clearing the binding
	KeepShortcuts bool
	// DryRun checks preconditions and returns the plan without executing it
	DryRun bool
}

// Reset removes the desktop link and moves the original folder back.
func Reset(opts ResetOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.reset")
	defer logging.LogOperationStart(log, "reset")()

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	fsys := opts.Env.FS

	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}

	switch {
	case binding.Anchor == "" && binding.Temporary == "":
		log.Warn().Msg("Not initialized, nothing to reset")
		return workflow.Skip("reset", "not initialized", binding), nil
	case binding.Anchor == "" || binding.Temporary == "":
		return nil, errors.Newf(errors.ErrUnexpectedState,
			"saved state is inconsistent: anchor=%q temporary=%q; inspect it with 'desks state'",
			binding.Anchor, binding.Temporary).
			WithDetail("anchor", binding.Anchor).
			WithDetail("temporary", binding.Temporary)
	}

	anchor, err := status.CheckLink(fsys, binding.Anchor)
	if err != nil {
		return nil, err
	}
	tempStatus, err := status.Classify(fsys, binding.Temporary)
	if err != nil {
		return nil, err
	}

	var plan []transaction.Operation
	switch {
	case anchor.Status == types.PathLinkValid &&
		(tempStatus == types.PathOccupied || tempStatus == types.PathLinkValid):
		current := anchor.Target
		if binding.CurrentTarget != "" && !status.SamePath(current, binding.CurrentTarget) {
			log.Warn().
				Str("saved", binding.CurrentTarget).
				Str("live", current).
				Msg("Desktop link points somewhere other than the saved target")
		}
		plan = []transaction.Operation{
			transaction.DeleteLink(current, binding.Anchor).WithLabel("remove the desktop link"),
			transaction.RenameDir(binding.Temporary, binding.Anchor).WithLabel("move the original folder back"),
		}

	case anchor.Status == types.PathAbsent && tempStatus == types.PathOccupied:
		isDir, err := status.IsDir(fsys, binding.Temporary)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, workflow.UnexpectedState("cannot reset",
				binding.Anchor, anchor.Status, binding.Temporary, tempStatus)
		}
		log.Warn().Str("anchor", binding.Anchor).Msg("Desktop link is missing, only moving the original folder back")
		plan = []transaction.Operation{
			transaction.RenameDir(binding.Temporary, binding.Anchor).WithLabel("move the original folder back"),
		}

	default:
		return nil, workflow.UnexpectedState("cannot reset",
			binding.Anchor, anchor.Status, binding.Temporary, tempStatus)
	}

	cleared := binding.Clone()
	cleared.Clear(opts.KeepShortcuts)

	if opts.DryRun {
		return &workflow.Result{Command: "reset", DryRun: true, Plan: plan, Binding: cleared}, nil
	}

	if err := workflow.Execute(fsys, plan); err != nil {
		return nil, err
	}

	saved, err := opts.Env.Store.Update(func(b *types.Binding) error {
		b.Clear(opts.KeepShortcuts)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStateSave,
			"desktop was restored but the state could not be cleared")
	}

	workflow.Notify(opts.Env)
	log.Info().Str("anchor", binding.Anchor).Msg("Desktop restored")
	return &workflow.Result{Command: "reset", Plan: plan, Binding: saved}, nil
}
