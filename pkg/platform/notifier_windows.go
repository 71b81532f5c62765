//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

const (
	shcneAssocChanged = 0x08000000
	shcnfIDList       = 0x0000
)

var procSHChangeNotify = windows.NewLazySystemDLL("shell32.dll").NewProc("SHChangeNotify")

// shellRefresh broadcasts SHCNE_ASSOCCHANGED, which makes Explorer reload
// the desktop
func shellRefresh() error {
	if err := procSHChangeNotify.Find(); err != nil {
		return err
	}
	// SHChangeNotify returns void; the error from Call is GetLastError noise
	_, _, _ = procSHChangeNotify.Call(shcneAssocChanged, shcnfIDList, 0, 0)
	return nil
}
