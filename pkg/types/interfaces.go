package types

import (
	"io/fs"
)

// FS is the filesystem interface required for desks operations
type FS interface {
	// Metadata
	Stat(name string) (fs.FileInfo, error)
	// Lstat must not follow a final symlink; the classifier depends on it
	Lstat(name string) (fs.FileInfo, error)

	// File operations
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Rename(oldpath, newpath string) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a file, an empty directory or a symlink (never its target)
	Remove(name string) error
}

// BindingStore persists the link binding between runs.
type BindingStore interface {
	// Load returns the persisted binding, or an empty one if nothing was saved yet
	Load() (Binding, error)

	// Save replaces the persisted binding
	Save(b Binding) error

	// Update runs a read-modify-write cycle under the store's guard. The
	// binding is only saved when fn returns nil.
	Update(fn func(b *Binding) error) (Binding, error)
}

// FolderLocator discovers where the operating system expects the desktop
// folder to be.
type FolderLocator interface {
	DesktopPath() (string, error)
}

// RefreshNotifier tells the desktop shell that the folder changed. It is fire
// and forget: workflows never depend on its outcome.
type RefreshNotifier interface {
	Refresh()
}
