// Package workflow holds what the desks workflows share: the result type,
// plan execution and the precondition errors.
package workflow

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/arthur-debert/desks/pkg/types"
)

// MaxShortcutNameLength is the longest accepted shortcut name, in characters
const MaxShortcutNameLength = 15

// Result describes the outcome of a workflow
type Result struct {
	// Command is the workflow name (init, set, reset, ...)
	Command string `json:"command" yaml:"command" toml:"command"`
	// Skipped is set when nothing needed doing. It is not an error.
	Skipped bool `json:"skipped" yaml:"skipped" toml:"skipped"`
	// Reason explains a skip
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`
	// DryRun is set when Plan was computed but not executed
	DryRun bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty" toml:"dry_run,omitempty"`
	// Plan lists the operations executed, or that would be in a dry run
	Plan []transaction.Operation `json:"plan,omitempty" yaml:"plan,omitempty" toml:"plan,omitempty"`
	// Binding is the binding after the workflow
	Binding types.Binding `json:"binding" yaml:"binding" toml:"binding"`
}

// Skip returns a skipped result
func Skip(command, reason string, b types.Binding) *Result {
	return &Result{Command: command, Skipped: true, Reason: reason, Binding: b}
}

// Execute runs plan in a transaction and commits it. On failure the
// completed steps have been undone, or the returned error says which undo
// failed.
func Execute(fsys types.FS, plan []transaction.Operation) error {
	tx := transaction.New(fsys)
	defer tx.Close()

	if err := tx.Run(plan...); err != nil {
		return err
	}
	return tx.Commit()
}

// Notify fires the refresh notifier if there is one
func Notify(env types.Env) {
	if env.Notifier != nil {
		env.Notifier.Refresh()
	}
}

// CheckEnv reports missing collaborators
func CheckEnv(env types.Env) error {
	if env.FS == nil || env.Store == nil {
		return errors.New(errors.ErrInternal, "workflow environment is missing a filesystem or a store")
	}
	return nil
}

// UnexpectedState reports a filesystem layout no workflow step knows how to
// handle. Both paths and both statuses are included for diagnosis.
func UnexpectedState(what, pathA string, statusA types.PathStatus, pathB string, statusB types.PathStatus) error {
	return errors.Newf(errors.ErrUnexpectedState,
		"%s: %s is %s, %s is %s; inspect these paths manually",
		what, pathA, statusA, pathB, statusB).
		WithDetail("path", pathA).
		WithDetail("status", statusA.String()).
		WithDetail("otherPath", pathB).
		WithDetail("otherStatus", statusB.String())
}

// ValidateShortcutName checks a shortcut name
func ValidateShortcutName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrInvalidInput, "shortcut name cannot be empty")
	}
	if n := utf8.RuneCountInString(name); n > MaxShortcutNameLength {
		return errors.Newf(errors.ErrInvalidInput,
			"shortcut name %q is %d characters long, the limit is %d", name, n, MaxShortcutNameLength)
	}
	return nil
}
