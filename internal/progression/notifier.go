package progression

import (
	"sync"

	"github.com/rajdesai17/finplay/internal/models"
)

// Notifier holds at most one pending reward notification. Posting while a
// reward is already showing overwrites it (last-write-wins); there is no
// queueing of multiple rewards. Dismissing when nothing is showing is a
// no-op.
//
// The notifier owns no timers: auto-dismiss scheduling belongs to whichever
// component owns the notification's visible lifetime.
type Notifier struct {
	mu      sync.Mutex
	current *models.Reward
}

// NewNotifier returns an idle notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Post makes reward the current pending notification, replacing any reward
// already showing.
func (n *Notifier) Post(reward models.Reward) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = &reward
}

// Dismiss clears the pending reward and reports whether one was showing.
func (n *Notifier) Dismiss() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return false
	}
	n.current = nil
	return true
}

// Current returns the pending reward, if any.
func (n *Notifier) Current() (models.Reward, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return models.Reward{}, false
	}
	return *n.current, true
}

// Showing reports whether a reward is pending.
func (n *Notifier) Showing() bool {
	_, ok := n.Current()
	return ok
}
