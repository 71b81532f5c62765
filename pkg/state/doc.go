// Package state persists the link binding between desks runs.
//
// The binding (anchor, temporary, current target and the named shortcuts)
// lives in a single TOML file. Writes go to a temporary file in the same
// directory which is then renamed over the original, so a crash mid-write
// leaves either the old or the new file, never a truncated one.
//
// A file that cannot be parsed is moved aside to state-backup-<timestamp>.toml
// and an empty binding is returned; the user is told where the old content
// went.
//
// The Store serialises read-modify-write cycles within one process. Nothing
// coordinates separate desks processes.
package state
