package transaction

import (
	stderrors "errors"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/types"
)

// State is the lifecycle position of a Transaction
type State int

const (
	// StateEmpty means nothing has been executed yet
	StateEmpty State = iota
	// StateActive means at least one operation was executed and is undoable
	StateActive
	// StateCommitted is terminal: the log was discarded
	StateCommitted
	// StateRolledBack is terminal: every logged operation was undone
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

// Transaction is an undo log of executed operations. It is owned by a single
// workflow and is not safe for concurrent use.
type Transaction struct {
	fs     types.FS
	log    []Operation
	state  State
	logger zerolog.Logger
}

// New returns an empty transaction mutating fsys
func New(fsys types.FS) *Transaction {
	return &Transaction{
		fs:     fsys,
		logger: logging.GetLogger("transaction"),
	}
}

// State returns the current lifecycle state
func (t *Transaction) State() State {
	return t.state
}

// Entries returns a copy of the executed, not yet undone operations in
// execution order
func (t *Transaction) Entries() []Operation {
	out := make([]Operation, len(t.log))
	copy(out, t.log)
	return out
}

func (t *Transaction) closed() bool {
	return t.state == StateCommitted || t.state == StateRolledBack
}

// Add executes op immediately. On success op is appended to the log; on
// failure the log is left as it was and the error is returned.
func (t *Transaction) Add(op Operation) error {
	if t.closed() {
		return errors.Newf(errors.ErrTxClosed, "cannot add %q: transaction is %s", op, t.state)
	}

	t.logger.Debug().Str("kind", string(op.Kind)).Str("op", op.String()).Msg("Executing")
	if err := op.execute(t.fs, t.logger); err != nil {
		t.logger.Warn().Err(err).Str("op", op.String()).Msg("Operation failed")
		return err
	}

	t.log = append(t.log, op)
	t.state = StateActive
	return nil
}

// Run adds ops in order. If one fails, the ones already executed are rolled
// back and the failure is returned. If the rollback fails too, the returned
// *errors.RollbackError carries both.
func (t *Transaction) Run(ops ...Operation) error {
	for _, op := range ops {
		err := t.Add(op)
		if err == nil {
			continue
		}
		if errors.IsErrorCode(err, errors.ErrTxClosed) {
			return err
		}
		if rbErr := t.Rollback(); rbErr != nil {
			var re *errors.RollbackError
			if stderrors.As(rbErr, &re) {
				return re.WithCause(err)
			}
			return rbErr
		}
		return err
	}
	return nil
}

// Commit discards the log. It performs no I/O; committing twice is harmless,
// committing after a rollback is not allowed.
func (t *Transaction) Commit() error {
	if t.state == StateRolledBack {
		return errors.New(errors.ErrTxClosed, "cannot commit: transaction was rolled back")
	}
	if n := len(t.log); n > 0 {
		t.logger.Debug().Int("operations", n).Msg("Committed")
	}
	t.log = nil
	t.state = StateCommitted
	return nil
}

// Rollback undoes logged operations, newest first. On the first inverse
// that fails it stops and returns an *errors.RollbackError; the entries
// not yet undone stay in the log, including the one that failed.
func (t *Transaction) Rollback() error {
	switch t.state {
	case StateCommitted:
		return errors.New(errors.ErrTxClosed, "cannot roll back: transaction was committed")
	case StateRolledBack:
		return nil
	}

	for len(t.log) > 0 {
		last := len(t.log) - 1
		op := t.log[last]
		inv := op.Inverse()

		t.logger.Debug().Str("op", op.String()).Str("inverse", inv.String()).Msg("Undoing")
		if err := inv.execute(t.fs, t.logger); err != nil {
			t.logger.Warn().Err(err).Str("op", op.String()).Int("remaining", len(t.log)).
				Msg("Undo failed, rollback incomplete")
			return &errors.RollbackError{Step: op.String(), Err: err}
		}
		t.log = t.log[:last]
	}

	t.state = StateRolledBack
	return nil
}

// Close rolls back a transaction that was neither committed nor rolled
// back. A rollback failure is logged at error level and not returned.
func (t *Transaction) Close() {
	if t.state != StateActive {
		return
	}
	t.logger.Warn().Int("operations", len(t.log)).Msg("Transaction abandoned, rolling back")
	if err := t.Rollback(); err != nil {
		t.logger.Error().Err(err).
			Interface("remaining", t.Entries()).
			Msg("Automatic rollback failed, the filesystem needs manual inspection")
	}
}
