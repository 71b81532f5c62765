// Package testutil provides utilities for testing desks components.
//
// Key components:
//   - Filesystem helpers that build fixtures in t.TempDir() and assert on
//     links and directory content
//   - FaultyFS: a types.FS wrapper that fails chosen calls, used to drive
//     the transaction engine into rollback
//   - MemoryStore, StaticLocator, RecordingNotifier: in-memory stand-ins for
//     the workflow collaborators
//
// Usage guidelines:
//   - The transaction engine and workflows are tested against the real
//     filesystem inside t.TempDir(); symlink semantics are the point
//   - Each test should be completely isolated with no shared state
package testutil
