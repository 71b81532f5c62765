package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TempDir creates a temporary directory for tests and returns its path.
// Symlinks inside t.TempDir() are resolved so that paths compare equal to
// what os.Readlink returns on platforms where the temp dir is itself a link.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	return dir
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// PathExists reports whether anything, including a dangling symlink, is at path.
func PathExists(t *testing.T, path string) bool {
	t.Helper()

	_, err := os.Lstat(path)
	return err == nil
}

// IsRealDir reports whether path is a directory and not a symlink to one.
func IsRealDir(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// SymlinkExists checks if a path is a symbolic link.
func SymlinkExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeSymlink != 0
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// ReadSymlink reads the target of a symbolic link.
// It fails the test if the link cannot be read.
func ReadSymlink(t *testing.T, path string) string {
	t.Helper()

	target, err := os.Readlink(path)
	if err != nil {
		t.Fatalf("Failed to read symlink %s: %v", path, err)
	}

	return target
}

// AssertSymlink checks that a symlink exists and points to the expected target.
func AssertSymlink(t *testing.T, link, expectedTarget string) {
	t.Helper()

	if !SymlinkExists(t, link) {
		t.Fatalf("Symlink %s does not exist", link)
	}

	actualTarget := ReadSymlink(t, link)
	if filepath.Clean(actualTarget) != filepath.Clean(expectedTarget) {
		t.Errorf("Symlink %s target mismatch\nExpected: %s\nActual: %s", link, expectedTarget, actualTarget)
	}
}

// AssertRealDir checks that path is a real directory, not a symlink.
func AssertRealDir(t *testing.T, path string) {
	t.Helper()

	if !IsRealDir(t, path) {
		t.Fatalf("%s is not a real directory", path)
	}
}

// AssertAbsent checks that nothing, not even a dangling link, exists at path.
func AssertAbsent(t *testing.T, path string) {
	t.Helper()

	if PathExists(t, path) {
		t.Errorf("%s exists but should not", path)
	}
}

// Snapshot walks root without following symlinks and returns a map of
// slash-separated relative paths to a description of each entry: file
// content, "<dir>", or "-> target" for links. Two snapshots are equal when
// the trees are byte-for-byte identical.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	out := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			out[rel] = "-> " + target
		case d.IsDir():
			out[rel] = "<dir>"
		default:
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out[rel] = string(content)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return out
}

// SkipOnWindows skips the test if running on Windows, where creating
// symlinks needs developer mode or elevation.
func SkipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Symlink tests not supported on Windows")
	}
}
