// Package commands provides high-level command implementations for desks.
//
// This package contains the workflow layer that sits between the CLI and the
// transaction engine. Each workflow classifies the paths it needs, checks
// its preconditions, builds a fixed plan of operations and runs it as one
// transaction. Persisted state is only written after the transaction
// committed.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init: move the desktop aside and link to it
//   - set/        - Set: point the desktop link at a new target
//   - reset/      - Reset: restore the original layout
//   - original/   - Original: point the desktop back at its original content
//   - usual/      - SwitchTo, Add and Remove for named shortcuts
//   - stateview/  - Show: read-only view of the binding and the disk
//   - workflow/   - Result type and helpers shared by the above
//
// This file re-exports the command functions.
package commands

import (
	"github.com/arthur-debert/desks/pkg/commands/initialize"
	"github.com/arthur-debert/desks/pkg/commands/original"
	"github.com/arthur-debert/desks/pkg/commands/reset"
	"github.com/arthur-debert/desks/pkg/commands/set"
	"github.com/arthur-debert/desks/pkg/commands/stateview"
	"github.com/arthur-debert/desks/pkg/commands/usual"
	"github.com/arthur-debert/desks/pkg/commands/workflow"
)

// Result is returned by every mutating workflow.
type Result = workflow.Result

// Init moves the desktop folder aside and links to it.
type InitOptions = initialize.InitOptions

func Init(opts InitOptions) (*Result, error) {
	return initialize.Init(opts)
}

// Set points the desktop link at a new target directory.
type SetOptions = set.SetOptions

func Set(opts SetOptions) (*Result, error) {
	return set.Set(opts)
}

// Reset restores the original desktop folder.
type ResetOptions = reset.ResetOptions

func Reset(opts ResetOptions) (*Result, error) {
	return reset.Reset(opts)
}

// Original points the desktop back at the original folder's content.
type OriginalOptions = original.OriginalOptions

func Original(opts OriginalOptions) (*Result, error) {
	return original.Original(opts)
}

// UsualOptions selects a named shortcut.
type UsualOptions = usual.UsualOptions

// UsualSwitch points the desktop at a named shortcut.
func UsualSwitch(opts UsualOptions) (*Result, error) {
	return usual.SwitchTo(opts)
}

// UsualAdd registers a named shortcut.
func UsualAdd(opts UsualOptions) (*Result, error) {
	return usual.Add(opts)
}

// UsualRemove deletes a named shortcut.
func UsualRemove(opts UsualOptions) (*Result, error) {
	return usual.Remove(opts)
}

// ShowState inspects the binding against the filesystem.
type ShowStateOptions = stateview.ShowOptions

// StateView is the result of ShowState.
type StateView = stateview.View

func ShowState(opts ShowStateOptions) (*StateView, error) {
	return stateview.Show(opts)
}
