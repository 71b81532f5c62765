package status

import (
	"io/fs"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/types"
)

// Classify reports which PathStatus holds for path.
//
// The error return is reserved for genuine failures to read metadata
// (permissions, device errors). "Not found" is not an error, it is
// PathAbsent.
func Classify(fsys types.FS, path string) (types.PathStatus, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return types.PathAbsent, nil
		}
		return types.PathAbsent, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read metadata of %s", path).
			WithDetail("path", path)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return types.PathOccupied, nil
	}

	// Follow the link: any failure to reach the target means it is dangling
	if _, err := fsys.Stat(path); err != nil {
		return types.PathLinkBroken, nil
	}
	return types.PathLinkValid, nil
}

// Exists reports whether anything, a dangling link included, is at path.
func Exists(fsys types.FS, path string) (bool, error) {
	st, err := Classify(fsys, path)
	if err != nil {
		return false, err
	}
	return st.Exists(), nil
}

// IsDir reports whether path is a real directory (not a link to one).
func IsDir(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read metadata of %s", path)
	}
	return info.IsDir(), nil
}

// ResolvesToDir reports whether path is a directory or a symlink whose target
// is a directory.
func ResolvesToDir(fsys types.FS, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read metadata of %s", path)
	}
	return info.IsDir(), nil
}

// IsEmptyDir reports whether path is a real directory with no entries. A
// symlink, even to an empty directory, is never considered empty.
func IsEmptyDir(fsys types.FS, path string) (bool, error) {
	isDir, err := IsDir(fsys, path)
	if err != nil || !isDir {
		return false, err
	}
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to list %s", path)
	}
	return len(entries) == 0, nil
}
