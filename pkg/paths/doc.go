// Package paths provides centralized path handling for desks.
//
// It covers two concerns:
//
//   - Where desks keeps its own files, following the XDG Base Directory
//     specification through adrg/xdg
//   - The names desks derives from the anchor: the temporary sibling the
//     original folder is moved to during init, and the parking slot a live
//     link is moved to while it is being replaced
//
// # Environment Variables
//
//   - DESKS_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/desks)
//   - DESKS_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/desks)
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    return err
//	}
//	stateFile := p.StateFilePath() // ~/.local/state/desks/state.toml
//
//	temp := paths.TemporaryPath("/home/me/Desktop", paths.DefaultTempSuffix)
//	// /home/me/Desktop_desks_temp
package paths
