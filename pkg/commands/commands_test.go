// pkg/commands/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir), MemoryStore
// PURPOSE: Test full workflow sequences through the re-exported API

package commands

import (
	"testing"

	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitResetRoundTrip(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.CreateDir(t, env.Anchor, "sub")
	testutil.CreateFile(t, env.Anchor, "sub/deep.txt", "deep")
	before := testutil.Snapshot(t, env.Root)

	_, err := Init(InitOptions{Env: env.Env()})
	require.NoError(t, err)
	_, err = Reset(ResetOptions{Env: env.Env()})
	require.NoError(t, err)

	assert.Equal(t, before, testutil.Snapshot(t, env.Root))
	assert.False(t, env.Store.Binding().Initialized())
}

func TestFullSession(t *testing.T) {
	env := testutil.NewTestEnv(t)
	work := testutil.CreateDir(t, env.Root, "work")
	games := env.Path("games")
	before := testutil.Snapshot(t, env.Root)

	_, err := Init(InitOptions{Env: env.Env()})
	require.NoError(t, err)

	_, err = Set(SetOptions{Env: env.Env(), Target: work, Usual: "w"})
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.Anchor, work)

	_, err = Set(SetOptions{Env: env.Env(), Target: games, MakeDir: true})
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.Anchor, games)

	_, err = UsualSwitch(UsualOptions{Env: env.Env(), Name: "w"})
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.Anchor, work)

	_, err = Original(OriginalOptions{Env: env.Env()})
	require.NoError(t, err)
	testutil.AssertSymlink(t, env.Anchor, env.Anchor+"_desks_temp")

	view, err := ShowState(ShowStateOptions{Env: env.Env()})
	require.NoError(t, err)
	assert.True(t, view.Healthy(), view.Problems)

	_, err = Reset(ResetOptions{Env: env.Env(), KeepShortcuts: true})
	require.NoError(t, err)

	after := testutil.Snapshot(t, env.Root)
	delete(after, "games")
	assert.Equal(t, before, after)
	assert.Equal(t, work, env.Store.Binding().Shortcuts["w"])
	assert.Equal(t, 5, env.Notifier.Count())
}
