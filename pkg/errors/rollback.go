package errors

import "fmt"

// RollbackError is returned when undoing a failed transaction itself fails.
// It keeps both the failure that triggered the rollback (Cause) and the
// failure of the inverse step (Err), so neither is lost.
type RollbackError struct {
	// Cause is the forward failure that triggered the rollback. It may be nil
	// when Rollback was called explicitly.
	Cause error
	// Step is the label of the operation whose inverse failed.
	Step string
	// Err is the error returned by the inverse action.
	Err error
}

func (e *RollbackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] failed to undo %q: %v (rollback was triggered by: %v)",
			ErrRollback, e.Step, e.Err, e.Cause)
	}
	return fmt.Sprintf("[%s] failed to undo %q: %v", ErrRollback, e.Step, e.Err)
}

// Unwrap exposes both the rollback failure and its cause to errors.Is/As.
func (e *RollbackError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Is matches a DesksError carrying ErrRollback.
func (e *RollbackError) Is(target error) bool {
	t, ok := target.(*DesksError)
	return ok && t.Code == ErrRollback
}

// WithCause returns a copy of the rollback error attributed to cause.
func (e *RollbackError) WithCause(cause error) *RollbackError {
	return &RollbackError{Cause: cause, Step: e.Step, Err: e.Err}
}
