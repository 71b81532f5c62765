//go:build !windows

package platform

import (
	"github.com/adrg/xdg"
)

// desktopPath returns XDG_DESKTOP_DIR as resolved by xdg, which falls back
// to ~/Desktop
func desktopPath() (string, error) {
	return xdg.UserDirs.Desktop, nil
}
