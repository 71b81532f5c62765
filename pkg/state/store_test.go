// pkg/state/store_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test binding persistence, atomic writes and corrupt-file recovery

package state

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/desks/pkg/testutil"
	"github.com/arthur-debert/desks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(testutil.TempDir(t), "nested", "state.toml"))

	b, err := store.Load()
	require.NoError(t, err)
	assert.False(t, b.Initialized())
	assert.Empty(t, b.Shortcuts)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(testutil.TempDir(t), "nested", "state.toml")
	store := NewStore(path)

	want := types.Binding{
		Anchor:        "/home/me/Desktop",
		Temporary:     "/home/me/Desktop_desks_temp",
		CurrentTarget: "/home/me/projects",
		Shortcuts:     map[string]string{"work": "/home/me/work"},
	}
	require.NoError(t, store.Save(want))

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	content := testutil.ReadFile(t, path)
	assert.Contains(t, content, "current_target")
	assert.Contains(t, content, "/home/me/projects")
	assert.Contains(t, content, "[shortcuts]")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestStore_CorruptFileMovedAside(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.CreateFile(t, dir, "state.toml", "anchor = [unterminated")

	store := NewStore(path)
	store.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	b, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, types.Binding{}, b)

	backup := filepath.Join(dir, "state-backup-20240301-123000.toml")
	assert.Equal(t, "anchor = [unterminated", testutil.ReadFile(t, backup))
	testutil.AssertAbsent(t, path)
}

func TestStore_Update(t *testing.T) {
	store := NewStore(filepath.Join(testutil.TempDir(t), "state.toml"))
	require.NoError(t, store.Save(types.Binding{Anchor: "/a", Temporary: "/t"}))

	b, err := store.Update(func(b *types.Binding) error {
		b.CurrentTarget = "/x"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "/x", b.CurrentTarget)

	_, err = store.Update(func(b *types.Binding) error {
		b.CurrentTarget = "/y"
		return stderrors.New("nope")
	})
	require.Error(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "/x", loaded.CurrentTarget)
}

func TestStore_ConcurrentUpdatesAreSerialised(t *testing.T) {
	store := NewStore(filepath.Join(testutil.TempDir(t), "state.toml"))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(func(b *types.Binding) error {
				if b.Shortcuts == nil {
					b.Shortcuts = map[string]string{}
				}
				b.Shortcuts[string(rune('a'+i))] = "/p"
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	b, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, b.Shortcuts, n)
}
