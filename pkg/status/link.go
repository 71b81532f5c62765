package status

import (
	"path/filepath"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/types"
)

// LinkCheckResult contains the result of inspecting a path that is expected
// to be a symlink
type LinkCheckResult struct {
	Status types.PathStatus
	// Target is the raw link target, resolved against the link's directory
	// when relative. Empty unless Status is a link status.
	Target string
}

// CheckLink classifies path and, when it is a symlink, reads its target.
func CheckLink(fsys types.FS, path string) (*LinkCheckResult, error) {
	st, err := Classify(fsys, path)
	if err != nil {
		return nil, err
	}

	result := &LinkCheckResult{Status: st}
	if !st.IsLink() {
		return result, nil
	}

	target, err := fsys.Readlink(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read link %s", path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	result.Target = filepath.Clean(target)
	return result, nil
}

// SamePath compares two paths after cleaning them
func SamePath(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
