// pkg/commands/workflow/workflow_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test the helpers shared by all workflows

package workflow

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/filesystem"
	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/arthur-debert/desks/pkg/transaction"
	"github.com/arthur-debert/desks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShortcutName(t *testing.T) {
	assert.NoError(t, ValidateShortcutName("work"))
	assert.NoError(t, ValidateShortcutName(strings.Repeat("x", MaxShortcutNameLength)))
	assert.NoError(t, ValidateShortcutName("桌面桌面桌面"))

	for _, bad := range []string{"", "   ", strings.Repeat("x", MaxShortcutNameLength+1)} {
		err := ValidateShortcutName(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "name %q", bad)
	}
}

func TestUnexpectedState(t *testing.T) {
	err := UnexpectedState("cannot init", "/a", types.PathLinkBroken, "/b", types.PathAbsent)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedState))
	assert.Contains(t, err.Error(), "/a is broken-link")
	assert.Contains(t, err.Error(), "/b is absent")
	assert.Equal(t, "broken-link", errors.GetErrorDetails(err)["status"])
}

func TestExecute(t *testing.T) {
	root := testutil.TempDir(t)
	a := testutil.CreateDir(t, root, "a")
	b := filepath.Join(root, "b")

	require.NoError(t, Execute(filesystem.NewOS(), []transaction.Operation{transaction.RenameDir(a, b)}))
	testutil.AssertAbsent(t, a)
	testutil.AssertRealDir(t, b)

	err := Execute(filesystem.NewOS(), []transaction.Operation{
		transaction.RenameDir(b, a),
		transaction.RenameDir(filepath.Join(root, "missing"), filepath.Join(root, "x")),
	})
	require.Error(t, err)
	testutil.AssertRealDir(t, b)
	testutil.AssertAbsent(t, a)
}

func TestCheckEnv(t *testing.T) {
	assert.Error(t, CheckEnv(types.Env{}))
	assert.NoError(t, CheckEnv(types.Env{FS: filesystem.NewOS(), Store: testutil.NewMemoryStore(types.Binding{})}))
}
