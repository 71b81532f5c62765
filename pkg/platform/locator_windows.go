//go:build windows

package platform

import (
	"golang.org/x/sys/windows/registry"
)

const (
	shellFoldersKey  = `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`
	desktopValueName = "Desktop"
)

// desktopPath reads the Desktop entry of the current user's shell folders.
// The value is usually REG_EXPAND_SZ, e.g. %USERPROFILE%\Desktop.
func desktopPath() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, shellFoldersKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = k.Close()
	}()

	value, _, err := k.GetStringValue(desktopValueName)
	if err != nil {
		return "", err
	}
	return value, nil
}
