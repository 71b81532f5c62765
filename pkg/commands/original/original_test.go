// pkg/commands/original/original_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), MemoryStore
// PURPOSE: Test switching back to the original folder content

package original

import (
	"testing"

	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/arthur-debert/desks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginal(t *testing.T) {
	env := testutil.NewTestEnv(t)
	temp := env.Initialize(t)
	work := testutil.CreateDir(t, env.Root, "work")
	require.NoError(t, env.FS.Remove(env.Anchor))
	testutil.CreateSymlink(t, work, env.Anchor)
	require.NoError(t, env.Store.Save(types.Binding{Anchor: env.Anchor, Temporary: temp, CurrentTarget: work}))

	result, err := Original(OriginalOptions{Env: env.Env()})
	require.NoError(t, err)

	assert.Equal(t, "original", result.Command)
	testutil.AssertSymlink(t, env.Anchor, temp)
	assert.Equal(t, temp, env.Store.Binding().CurrentTarget)
}

func TestOriginal_AlreadyThere(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.Initialize(t)

	result, err := Original(OriginalOptions{Env: env.Env()})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, 0, env.FS.Calls(testutil.OpRename))
}

func TestOriginal_NotInitialized(t *testing.T) {
	env := testutil.NewTestEnv(t)

	result, err := Original(OriginalOptions{Env: env.Env()})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "not initialized", result.Reason)
}
