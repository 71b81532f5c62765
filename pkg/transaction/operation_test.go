// pkg/transaction/operation_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test operation inverses, link deletion guards and the four-way
// rename recovery

package transaction_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/filesystem"
	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Inverse(t *testing.T) {
	rename := transaction.RenameDir("/a", "/b")
	inv := rename.Inverse()
	assert.Equal(t, transaction.KindRestoreDir, inv.Kind)
	assert.Equal(t, "/a", inv.From)
	assert.Equal(t, "/b", inv.To)
	assert.Equal(t, rename, inv.Inverse())

	create := transaction.CreateLink("/target", "/link")
	del := create.Inverse()
	assert.Equal(t, transaction.KindDeleteLink, del.Kind)
	assert.Equal(t, "/target", del.Target)
	assert.Equal(t, "/link", del.Link)

	assert.Equal(t, create, transaction.DeleteLink("/target", "/link").Inverse())
}

func TestOperation_Labels(t *testing.T) {
	op := transaction.RenameDir("/a", "/b")
	assert.Equal(t, "rename /a -> /b", op.String())
	assert.Equal(t, "park", op.WithLabel("park").String())
	assert.Equal(t, "rename_dir", transaction.Operation{Kind: transaction.KindRenameDir}.String())
}

// renameThen executes RenameDir(from, to), lets mutate rearrange the disk and
// then rolls back.
func renameThen(t *testing.T, from, to string, mutate func()) (*transaction.Transaction, error) {
	t.Helper()
	tx := transaction.New(filesystem.NewOS())
	require.NoError(t, tx.Add(transaction.RenameDir(from, to)))
	mutate()
	return tx, tx.Rollback()
}

func TestRestoreDir_FromAbsentToPresent(t *testing.T) {
	root := testutil.TempDir(t)
	from := testutil.CreateDir(t, root, "from")
	testutil.CreateFile(t, from, "file.txt", "content")
	to := filepath.Join(root, "to")

	_, err := renameThen(t, from, to, func() {})
	require.NoError(t, err)

	assert.Equal(t, "content", testutil.ReadFile(t, filepath.Join(from, "file.txt")))
	testutil.AssertAbsent(t, to)
}

func TestRestoreDir_BothAbsentIsDataLoss(t *testing.T) {
	root := testutil.TempDir(t)
	from := testutil.CreateDir(t, root, "from")
	to := filepath.Join(root, "to")

	var before map[string]string
	tx, err := renameThen(t, from, to, func() {
		require.NoError(t, os.RemoveAll(to))
		before = testutil.Snapshot(t, root)
	})
	require.Error(t, err)

	var rbErr *errors.RollbackError
	require.True(t, stderrors.As(err, &rbErr))
	assert.True(t, errors.IsErrorCode(rbErr.Err, errors.ErrDataLoss))
	assert.Equal(t, before, testutil.Snapshot(t, root))
	assert.Len(t, tx.Entries(), 1)
}

func TestRestoreDir_FromPresentToAbsentIsNoop(t *testing.T) {
	root := testutil.TempDir(t)
	from := testutil.CreateDir(t, root, "from")
	to := filepath.Join(root, "to")

	var before map[string]string
	tx, err := renameThen(t, from, to, func() {
		require.NoError(t, os.Rename(to, from))
		before = testutil.Snapshot(t, root)
	})
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, root))
	assert.Equal(t, transaction.StateRolledBack, tx.State())
}

func TestRestoreDir_BothPresentNonEmptyRefuses(t *testing.T) {
	root := testutil.TempDir(t)
	from := testutil.CreateDir(t, root, "from")
	testutil.CreateFile(t, from, "moved.txt", "moved")
	to := filepath.Join(root, "to")

	var before map[string]string
	_, err := renameThen(t, from, to, func() {
		testutil.CreateFile(t, root, "from/new.txt", "new")
		before = testutil.Snapshot(t, root)
	})
	require.Error(t, err)

	var rbErr *errors.RollbackError
	require.True(t, stderrors.As(err, &rbErr))
	assert.True(t, errors.IsErrorCode(rbErr.Err, errors.ErrDirNotEmpty))
	assert.Contains(t, err.Error(), "manual intervention required")
	assert.Equal(t, before, testutil.Snapshot(t, root))
}

func TestRestoreDir_BothPresentEmptyArtifactRemoved(t *testing.T) {
	root := testutil.TempDir(t)
	from := testutil.CreateDir(t, root, "from")
	to := filepath.Join(root, "to")

	_, err := renameThen(t, from, to, func() {
		testutil.CreateFile(t, root, "from/kept.txt", "kept")
	})
	require.NoError(t, err)

	assert.Equal(t, "kept", testutil.ReadFile(t, filepath.Join(from, "kept.txt")))
	testutil.AssertAbsent(t, to)
}

func TestDeleteLink_Guards(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	dir := testutil.CreateDir(t, root, "dir")
	fsys := filesystem.NewOS()

	t.Run("refuses a real directory", func(t *testing.T) {
		tx := transaction.New(fsys)
		err := tx.Add(transaction.DeleteLink(dir, dir))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedState))
		testutil.AssertRealDir(t, dir)
	})

	t.Run("refuses a missing link", func(t *testing.T) {
		tx := transaction.New(fsys)
		err := tx.Add(transaction.DeleteLink(dir, filepath.Join(root, "missing")))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedState))
	})

	t.Run("refuses a link pointing elsewhere", func(t *testing.T) {
		link := filepath.Join(root, "elsewhere")
		testutil.CreateSymlink(t, root, link)
		tx := transaction.New(fsys)
		err := tx.Add(transaction.DeleteLink(dir, link))
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedState))
		testutil.AssertSymlink(t, link, root)
		assert.Empty(t, tx.Entries())
	})

	t.Run("deletes a dangling link and recreates it on rollback", func(t *testing.T) {
		gone := filepath.Join(root, "gone")
		link := filepath.Join(root, "dangling")
		testutil.CreateSymlink(t, gone, link)
		tx := transaction.New(fsys)
		require.NoError(t, tx.Add(transaction.DeleteLink(gone, link)))
		testutil.AssertAbsent(t, link)
		require.NoError(t, tx.Rollback())
		testutil.AssertSymlink(t, link, gone)
	})
}

func TestCreateLink_UndoToleratesMissingLink(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	dir := testutil.CreateDir(t, root, "dir")
	link := filepath.Join(root, "link")

	tx := transaction.New(filesystem.NewOS())
	require.NoError(t, tx.Add(transaction.CreateLink(dir, link)))
	require.NoError(t, os.Remove(link))

	require.NoError(t, tx.Rollback())
	testutil.AssertAbsent(t, link)
	testutil.AssertRealDir(t, dir)
}
