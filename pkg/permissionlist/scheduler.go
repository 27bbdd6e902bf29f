package permissionlist

import (
	"time"

	"github.com/go-drift/drift/pkg/platform"
)

// DefaultDismissDelay lets the last row's update render before the list closes.
const DefaultDismissDelay = 200 * time.Millisecond

// Scheduler runs one-shot deferred actions.
type Scheduler interface {
	// AfterFunc runs fn once after d. The returned cancel reports whether it
	// stopped fn from running.
	AfterFunc(d time.Duration, fn func()) (cancel func() bool)
}

// DispatchScheduler fires deferred actions on the UI thread via
// platform.Dispatch, falling back to the timer goroutine when no dispatcher
// is registered.
type DispatchScheduler struct{}

// AfterFunc starts a timer for fn. Cancelling after fn was handed to the
// dispatcher has no effect.
func (DispatchScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	t := time.AfterFunc(d, func() {
		if !platform.Dispatch(fn) {
			fn()
		}
	})
	return t.Stop
}
