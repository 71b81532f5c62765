package testutil

import (
	"sync"

	"github.com/arthur-debert/desks/pkg/types"
)

// MemoryStore is an in-memory types.BindingStore.
type MemoryStore struct {
	mu      sync.Mutex
	binding types.Binding

	// LoadErr and SaveErr, when set, are returned by the matching call
	LoadErr error
	SaveErr error

	saves int
}

// NewMemoryStore returns a store preloaded with b.
func NewMemoryStore(b types.Binding) *MemoryStore {
	return &MemoryStore{binding: b.Clone()}
}

func (m *MemoryStore) Load() (types.Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return types.Binding{}, m.LoadErr
	}
	return m.binding.Clone(), nil
}

func (m *MemoryStore) Save(b types.Binding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(b)
}

func (m *MemoryStore) Update(fn func(b *types.Binding) error) (types.Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return types.Binding{}, m.LoadErr
	}
	b := m.binding.Clone()
	if err := fn(&b); err != nil {
		return m.binding.Clone(), err
	}
	if err := m.saveLocked(b); err != nil {
		return m.binding.Clone(), err
	}
	return b.Clone(), nil
}

func (m *MemoryStore) saveLocked(b types.Binding) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.binding = b.Clone()
	m.saves++
	return nil
}

// Binding returns the currently stored binding.
func (m *MemoryStore) Binding() types.Binding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.binding.Clone()
}

// Saves returns the number of successful saves.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// StaticLocator is a types.FolderLocator returning a fixed answer.
type StaticLocator struct {
	Path string
	Err  error
}

func (l StaticLocator) DesktopPath() (string, error) {
	return l.Path, l.Err
}

// RecordingNotifier counts refresh requests.
type RecordingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *RecordingNotifier) Refresh() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.count++
}

// Count returns the number of Refresh calls.
func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.count
}
