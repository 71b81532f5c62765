// pkg/transaction/transaction_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), FaultyFS
// PURPOSE: Test execution, commit, rollback and the abandonment safety net

package transaction_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/filesystem"
	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_RunAndCommit(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	anchor := testutil.CreateDir(t, root, "Desktop")
	testutil.CreateFile(t, anchor, "notes.txt", "hello")
	temp := filepath.Join(root, "Desktop_desks_temp")

	tx := transaction.New(filesystem.NewOS())
	defer tx.Close()
	assert.Equal(t, transaction.StateEmpty, tx.State())

	err := tx.Run(
		transaction.RenameDir(anchor, temp),
		transaction.CreateLink(temp, anchor),
	)
	require.NoError(t, err)
	assert.Equal(t, transaction.StateActive, tx.State())
	assert.Len(t, tx.Entries(), 2)

	require.NoError(t, tx.Commit())
	assert.Equal(t, transaction.StateCommitted, tx.State())
	assert.Empty(t, tx.Entries())

	testutil.AssertSymlink(t, anchor, temp)
	assert.Equal(t, "hello", testutil.ReadFile(t, filepath.Join(temp, "notes.txt")))
}

func TestTransaction_AtomicityUnderFailure(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	testutil.CreateFile(t, a, "f", "data")
	b := filepath.Join(root, "b")
	link := filepath.Join(root, "link")
	c := testutil.CreateDir(t, root, "c")
	d := filepath.Join(root, "d")
	before := testutil.Snapshot(t, root)

	ffs := testutil.NewFaultyFS(filesystem.NewOS()).FailOn(testutil.OpSymlink, link, syscall.EACCES)
	tx := transaction.New(ffs)
	defer tx.Close()

	err := tx.Run(
		transaction.RenameDir(a, b),
		transaction.CreateLink(b, link),
		transaction.RenameDir(c, d),
	)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.ErrorIs(t, err, syscall.EACCES)

	// op1 undone, op3 never attempted
	assert.Equal(t, before, testutil.Snapshot(t, root))
	assert.Equal(t, 2, ffs.Calls(testutil.OpRename), "forward rename of a and its undo only")
	assert.Equal(t, transaction.StateRolledBack, tx.State())
	assert.Empty(t, tx.Entries())
}

func TestTransaction_AddFailureLeavesLogUntouched(t *testing.T) {
	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	b := filepath.Join(root, "b")

	tx := transaction.New(filesystem.NewOS())
	defer tx.Close()

	require.NoError(t, tx.Add(transaction.RenameDir(a, b)))
	err := tx.Add(transaction.RenameDir(filepath.Join(root, "missing"), filepath.Join(root, "x")))
	require.Error(t, err)

	assert.Equal(t, []transaction.Operation{transaction.RenameDir(a, b)}, tx.Entries())
	assert.Equal(t, transaction.StateActive, tx.State())
}

func TestTransaction_CommitFinality(t *testing.T) {
	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	b := filepath.Join(root, "b")

	ffs := testutil.NewFaultyFS(filesystem.NewOS())
	tx := transaction.New(ffs)
	require.NoError(t, tx.Add(transaction.RenameDir(a, b)))
	require.NoError(t, tx.Commit())

	after := testutil.Snapshot(t, root)
	renames := ffs.Calls(testutil.OpRename)

	tx.Close()
	err := tx.Rollback()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTxClosed))

	assert.Equal(t, after, testutil.Snapshot(t, root))
	assert.Equal(t, renames, ffs.Calls(testutil.OpRename))

	err = tx.Add(transaction.RenameDir(b, a))
	assert.True(t, errors.IsErrorCode(err, errors.ErrTxClosed))
	assert.True(t, testutil.IsRealDir(t, b))
}

func TestTransaction_CommitAfterRollbackRejected(t *testing.T) {
	tx := transaction.New(filesystem.NewOS())
	require.NoError(t, tx.Rollback())
	assert.Equal(t, transaction.StateRolledBack, tx.State())

	err := tx.Commit()
	assert.True(t, errors.IsErrorCode(err, errors.ErrTxClosed))
	assert.True(t, errors.IsErrorCode(tx.Add(transaction.RenameDir("/x", "/y")), errors.ErrTxClosed))
}

func TestTransaction_PartialRollbackFailure(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	anchor := testutil.CreateDir(t, root, "Desktop")
	temp := filepath.Join(root, "temp")
	other := filepath.Join(root, "other")

	ffs := testutil.NewFaultyFS(filesystem.NewOS()).
		FailOn(testutil.OpSymlink, other, syscall.EIO).
		FailOn(testutil.OpRemove, anchor, syscall.EACCES)
	tx := transaction.New(ffs)

	err := tx.Run(
		transaction.RenameDir(anchor, temp),
		transaction.CreateLink(temp, anchor),
		transaction.CreateLink(temp, other),
	)
	require.Error(t, err)

	var rbErr *errors.RollbackError
	require.True(t, stderrors.As(err, &rbErr))
	assert.Equal(t, transaction.CreateLink(temp, anchor).String(), rbErr.Step)
	assert.ErrorIs(t, rbErr.Err, syscall.EACCES)
	assert.ErrorIs(t, rbErr.Cause, syscall.EIO)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRollback))
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Contains(t, err.Error(), "rollback was triggered by")

	// Nothing past the failed undo was touched
	assert.Len(t, tx.Entries(), 2)
	assert.Equal(t, transaction.StateActive, tx.State())
	testutil.AssertSymlink(t, anchor, temp)

	// Once the obstacle is gone a second rollback finishes the job
	ffs.Heal()
	require.NoError(t, tx.Rollback())
	assert.Equal(t, transaction.StateRolledBack, tx.State())
	testutil.AssertRealDir(t, anchor)
	testutil.AssertAbsent(t, temp)
}

func TestTransaction_CloseRollsBackAbandoned(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	anchor := testutil.CreateDir(t, root, "Desktop")
	testutil.CreateFile(t, anchor, "f", "x")
	temp := filepath.Join(root, "temp")
	before := testutil.Snapshot(t, root)

	func() {
		tx := transaction.New(filesystem.NewOS())
		defer tx.Close()
		require.NoError(t, tx.Add(transaction.RenameDir(anchor, temp)))
		require.NoError(t, tx.Add(transaction.CreateLink(temp, anchor)))
		// returns without Commit
	}()

	assert.Equal(t, before, testutil.Snapshot(t, root))
}

func TestTransaction_CloseSwallowsRollbackFailure(t *testing.T) {
	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	b := filepath.Join(root, "b")

	ffs := testutil.NewFaultyFS(filesystem.NewOS()).FailOn(testutil.OpRename, b, syscall.EBUSY)
	tx := transaction.New(ffs)
	require.NoError(t, tx.Add(transaction.RenameDir(a, b)))

	assert.NotPanics(t, tx.Close)
	assert.Len(t, tx.Entries(), 1)
	assert.True(t, testutil.IsRealDir(t, b))
}

func TestTransaction_RenameRefusesExistingDestination(t *testing.T) {
	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	b := testutil.CreateDir(t, root, "b")

	tx := transaction.New(filesystem.NewOS())
	err := tx.Add(transaction.RenameDir(a, b))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedState))
	assert.Equal(t, transaction.StateEmpty, tx.State())

	_, statErr := os.Stat(a)
	assert.NoError(t, statErr)
}
