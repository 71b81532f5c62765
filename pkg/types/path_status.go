package types

// PathStatus is the classification of a single filesystem path. Exactly one
// status holds for a path at the instant it was classified.
type PathStatus int

const (
	// PathAbsent means nothing exists at the path
	PathAbsent PathStatus = iota

	// PathOccupied means something exists at the path and it is not a symlink
	PathOccupied

	// PathLinkValid means a symlink exists at the path and its target is reachable
	PathLinkValid

	// PathLinkBroken means a symlink exists at the path but its target is unreachable
	PathLinkBroken
)

// String returns the string representation of the status
func (s PathStatus) String() string {
	switch s {
	case PathAbsent:
		return "absent"
	case PathOccupied:
		return "occupied"
	case PathLinkValid:
		return "link"
	case PathLinkBroken:
		return "broken-link"
	default:
		return "unknown"
	}
}

// Exists reports whether anything, including a dangling symlink, is at the path
func (s PathStatus) Exists() bool {
	return s != PathAbsent
}

// IsLink reports whether the path is a symlink, valid or broken
func (s PathStatus) IsLink() bool {
	return s == PathLinkValid || s == PathLinkBroken
}
