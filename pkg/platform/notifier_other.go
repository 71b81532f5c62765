//go:build !windows

package platform

// shellRefresh has no portable counterpart outside Windows; file managers
// watching the directory pick up the change on their own
func shellRefresh() error {
	return nil
}
