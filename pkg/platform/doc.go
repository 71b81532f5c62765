// Package platform connects desks to the operating system's idea of a
// desktop folder.
//
// The Locator answers where the desktop folder is. On Windows that comes
// from the "Desktop" value under the User Shell Folders registry key; on
// other systems from the XDG user directories. Either answer may contain
// environment placeholders, which are expanded.
//
// The Notifier asks the desktop shell to redraw after the folder behind the
// anchor changed. On Windows it calls SHChangeNotify; elsewhere there is no
// portable equivalent and it only logs.
package platform
