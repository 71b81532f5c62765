package platform

import (
	"path/filepath"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/paths"
	"github.com/arthur-debert/desks/pkg/types"
)

// Locator finds the desktop folder. A non-empty Override bypasses the OS
// lookup.
type Locator struct {
	Override string

	// lookup returns the raw, unexpanded OS answer
	lookup func() (string, error)
}

var _ types.FolderLocator = (*Locator)(nil)

// NewLocator returns a locator for the current OS
func NewLocator(override string) *Locator {
	return &Locator{Override: override, lookup: desktopPath}
}

// DesktopPath returns the absolute, expanded desktop folder path
func (l *Locator) DesktopPath() (string, error) {
	logger := logging.GetLogger("platform.locator")

	raw := l.Override
	if raw == "" {
		var err error
		raw, err = l.lookup()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPlatform, "failed to locate the desktop folder")
		}
		logger.Debug().Str("raw", raw).Msg("Desktop folder reported by the OS")
	}
	if raw == "" {
		return "", errors.New(errors.ErrPlatform, "the OS reported an empty desktop folder path")
	}

	path, err := paths.ExpandPath(raw)
	if err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}
