package types

// Env bundles the collaborators a workflow needs. It is constructed once by
// the CLI and passed down explicitly.
type Env struct {
	FS       FS
	Store    BindingStore
	Locator  FolderLocator
	Notifier RefreshNotifier
}
