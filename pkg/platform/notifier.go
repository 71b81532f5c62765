package platform

import (
	"github.com/arthur-debert/desks/pkg/logging"
	"github.com/arthur-debert/desks/pkg/types"
)

// Notifier asks the desktop shell to redraw
type Notifier struct {
	enabled bool
	notify  func() error
}

var _ types.RefreshNotifier = (*Notifier)(nil)

// NewNotifier returns a notifier for the current OS. A disabled notifier
// does nothing.
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{enabled: enabled, notify: shellRefresh}
}

// Refresh fires the notification. Failures are logged, never returned.
func (n *Notifier) Refresh() {
	logger := logging.GetLogger("platform.notifier")
	if !n.enabled {
		logger.Debug().Msg("Desktop refresh disabled")
		return
	}
	if err := n.notify(); err != nil {
		logger.Warn().Err(err).Msg("Desktop refresh failed")
		return
	}
	logger.Debug().Msg("Desktop refresh requested")
}
