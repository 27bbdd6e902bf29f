package permissionlist

import "github.com/go-drift/drift/pkg/platform"

// Foreground notifies when the host app returns to the foreground.
type Foreground interface {
	// Subscribe registers fn and returns a function that removes it.
	Subscribe(fn func()) (unsubscribe func())
}

// LifecycleForeground reports transitions to [platform.LifecycleStateResumed]
// from drift's lifecycle service. Callbacks run on the UI thread.
type LifecycleForeground struct {
	// Service defaults to platform.Lifecycle.
	Service *platform.LifecycleService
}

// Subscribe calls fn each time the app enters the resumed state.
func (l LifecycleForeground) Subscribe(fn func()) func() {
	svc := l.Service
	if svc == nil {
		svc = platform.Lifecycle
	}
	return svc.AddHandler(func(state platform.LifecycleState) {
		if state != platform.LifecycleStateResumed {
			return
		}
		if !platform.Dispatch(fn) {
			fn()
		}
	})
}
