// Package types defines the core types and interfaces used throughout desks.
// This includes the FS abstraction the transaction engine mutates through,
// the PathStatus classification, and the persisted Binding together with the
// collaborator interfaces (store, folder locator, refresh notifier) that
// workflows receive as dependencies.
package types
