package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/desks/pkg/types"
)

// Op names a types.FS method for fault injection.
type Op string

const (
	OpStat      Op = "stat"
	OpLstat     Op = "lstat"
	OpReadFile  Op = "readfile"
	OpWriteFile Op = "writefile"
	OpMkdirAll  Op = "mkdirall"
	OpReadDir   Op = "readdir"
	OpRename    Op = "rename"
	OpSymlink   Op = "symlink"
	OpReadlink  Op = "readlink"
	OpRemove    Op = "remove"
)

type fault struct {
	op    Op
	path  string
	after int
	err   error
}

// FaultyFS wraps a types.FS and fails selected calls.
//
// A fault matches on the path the call acts upon: the source for Rename and
// the link name for Symlink. An empty path matches every call of that op.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults []fault
	calls  map[Op]int
}

// NewFaultyFS wraps inner.
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{FS: inner, calls: make(map[Op]int)}
}

// FailOn makes every call of op on path return err.
func (f *FaultyFS) FailOn(op Op, path string, err error) *FaultyFS {
	return f.FailAfter(op, path, 0, err)
}

// FailAfter lets the first n matching calls through and fails the rest.
func (f *FaultyFS) FailAfter(op Op, path string, n int, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = append(f.faults, fault{op: op, path: path, after: n, err: err})
	return f
}

// Heal removes all injected faults.
func (f *FaultyFS) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = nil
}

// Calls returns how many times op was invoked, failed calls included.
func (f *FaultyFS) Calls(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *FaultyFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	for i := range f.faults {
		ft := &f.faults[i]
		if ft.op != op || (ft.path != "" && ft.path != path) {
			continue
		}
		if ft.after > 0 {
			ft.after--
			continue
		}
		return &fs.PathError{Op: string(op), Path: path, Err: ft.err}
	}
	return nil
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.check(OpRename, oldpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
