package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/desks/pkg/filesystem"
	"github.com/arthur-debert/desks/pkg/types"
)

// TestEnv is a throwaway desktop layout for workflow tests: a real
// directory named Desktop holding notes.txt inside a temp root.
type TestEnv struct {
	Root     string
	Anchor   string
	FS       *FaultyFS
	Store    *MemoryStore
	Notifier *RecordingNotifier
}

// NewTestEnv builds the layout and in-memory collaborators
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	SkipOnWindows(t)

	root := TempDir(t)
	anchor := CreateDir(t, root, "Desktop")
	CreateFile(t, anchor, "notes.txt", "hello")

	return &TestEnv{
		Root:     root,
		Anchor:   anchor,
		FS:       NewFaultyFS(filesystem.NewOS()),
		Store:    NewMemoryStore(types.Binding{}),
		Notifier: &RecordingNotifier{},
	}
}

// Env returns the collaborators as a types.Env
func (e *TestEnv) Env() types.Env {
	return types.Env{
		FS:       e.FS,
		Store:    e.Store,
		Locator:  StaticLocator{Path: e.Anchor},
		Notifier: e.Notifier,
	}
}

// Path joins elements onto the root
func (e *TestEnv) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}

// Initialize lays out an already initialized desktop without going through
// the init workflow: Desktop is moved to Desktop_desks_temp, a link takes its
// place and the store records the binding. It returns the temporary path.
func (e *TestEnv) Initialize(t *testing.T) string {
	t.Helper()

	temp := e.Anchor + "_desks_temp"
	if err := os.Rename(e.Anchor, temp); err != nil {
		t.Fatalf("Failed to move %s aside: %v", e.Anchor, err)
	}
	CreateSymlink(t, temp, e.Anchor)

	if err := e.Store.Save(types.Binding{Anchor: e.Anchor, Temporary: temp, CurrentTarget: temp}); err != nil {
		t.Fatalf("Failed to save binding: %v", err)
	}
	return temp
}
