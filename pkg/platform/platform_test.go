// pkg/platform/platform_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Environment variables
// PURPOSE: Test desktop path resolution and the refresh notifier guards

package platform

import (
	stderrors "errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/desks/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Override(t *testing.T) {
	t.Setenv("DESKS_TEST_ROOT", "/srv")

	l := NewLocator("$DESKS_TEST_ROOT/desk/")
	l.lookup = func() (string, error) {
		t.Fatal("override must bypass the OS lookup")
		return "", nil
	}

	got, err := l.DesktopPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/srv/desk"), got)
}

func TestLocator_ExpandsOSAnswer(t *testing.T) {
	t.Setenv("DESKS_TEST_PROFILE", "/home/me")

	l := &Locator{lookup: func() (string, error) { return "%DESKS_TEST_PROFILE%/Desktop", nil }}
	got, err := l.DesktopPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/home/me/Desktop"), got)
}

func TestLocator_Failures(t *testing.T) {
	l := &Locator{lookup: func() (string, error) { return "", stderrors.New("no registry") }}
	_, err := l.DesktopPath()
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatform))

	l = &Locator{lookup: func() (string, error) { return "", nil }}
	_, err = l.DesktopPath()
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatform))

	l = &Locator{lookup: func() (string, error) { return "%DESKS_TEST_UNDEFINED_VAR%/Desktop", nil }}
	_, err = l.DesktopPath()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLocator_RealLookup(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("reads the live registry")
	}
	got, err := NewLocator("").DesktopPath()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestNotifier(t *testing.T) {
	calls := 0
	n := &Notifier{enabled: true, notify: func() error { calls++; return nil }}
	n.Refresh()
	assert.Equal(t, 1, calls)

	n.notify = func() error { calls++; return stderrors.New("shell gone") }
	assert.NotPanics(t, n.Refresh)
	assert.Equal(t, 2, calls)

	n.enabled = false
	n.Refresh()
	assert.Equal(t, 2, calls)
}
