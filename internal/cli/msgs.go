package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Point your desktop folder at any directory"
	MsgInitShort       = "Move the desktop folder aside and link to it"
	MsgSetShort        = "Point the desktop at another directory"
	MsgResetShort      = "Restore the original desktop folder"
	MsgStateShort      = "Show the saved state next to what is on disk"
	MsgOriginalShort   = "Point the desktop back at its original content"
	MsgUsualShort      = "Switch to, add or remove a named shortcut"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Check preconditions and show the plan without changing anything"
	MsgFlagConfig        = "Config file (default is $XDG_CONFIG_HOME/desks/config.toml)"
	MsgFlagAnchor        = "Desktop folder to manage instead of the one the OS reports"
	MsgFlagFormat        = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagMakeDir       = "Create the target directory and its parents when missing"
	MsgFlagUsual         = "Also save the target as a named shortcut"
	MsgFlagKeepShortcuts = "Keep the named shortcuts when clearing the state"
	MsgFlagRemove        = "Remove the shortcut instead of switching to it"
	MsgFlagAdd           = "Save `dir` under the shortcut name instead of switching to it"
	MsgFlagDefaults      = "Print the built-in defaults instead"

	// Output
	MsgVersionFormat = "desks version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgRollbackHint  = "Undoing the failed change did not complete. The steps taken are recorded in %s; see 'desks help recovery'."
	MsgStateSaveHint = "The filesystem change succeeded. Run 'desks init' to rebuild the saved state from the live link."

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrUsualArgs  = "--remove and --add cannot be combined"
	MsgErrUsualName  = "a shortcut name is required with --remove or --add"
	MsgErrManDir     = "failed to create man page directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/reset-long.txt
	msgResetLongRaw string
	MsgResetLong    = strings.TrimSpace(msgResetLongRaw)

	//go:embed msgs/state-long.txt
	msgStateLongRaw string
	MsgStateLong    = strings.TrimSpace(msgStateLongRaw)

	//go:embed msgs/original-long.txt
	msgOriginalLongRaw string
	MsgOriginalLong    = strings.TrimSpace(msgOriginalLongRaw)

	//go:embed msgs/usual-long.txt
	msgUsualLongRaw string
	MsgUsualLong    = strings.TrimSpace(msgUsualLongRaw)

	//go:embed msgs/usual-example.txt
	msgUsualExampleRaw string
	MsgUsualExample    = strings.TrimRight(msgUsualExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
