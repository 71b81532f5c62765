package original

import (
	"github.com/arthur-debert/desks/pkg/commands/set"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/types"
)

// OriginalOptions defines the options for the Original command.
type OriginalOptions struct {
	Env           types.Env
	ParkingSuffix string
	DryRun        bool
}

// Original points the desktop back at the original folder's content
func Original(opts OriginalOptions) (*workflow.Result, error) {
	log := logging.GetLogger("commands.original")

	if err := workflow.CheckEnv(opts.Env); err != nil {
		return nil, err
	}
	binding, err := opts.Env.Store.Load()
	if err != nil {
		return nil, err
	}
	if !binding.Initialized() {
		log.Info().Msg("Not initialized, run 'desks init' first")
		return workflow.Skip("original", "not initialized", binding), nil
	}

	return set.Set(set.SetOptions{
		Env:           opts.Env,
		Target:        binding.Temporary,
		ParkingSuffix: opts.ParkingSuffix,
		DryRun:        opts.DryRun,
		Command:       "original",
	})
}
