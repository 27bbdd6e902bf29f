// Package permissionlist presents a scrollable list of device permissions
// that the user grants one row at a time.
//
// A [Controller] owns one session: a fixed, ordered set of permissions. Taps
// on a row call [Controller.RequestPermission]; when the platform answers,
// the row is refreshed, the host [Delegate] is told the outcome and, once
// every permission is authorized, the list dismisses itself after a short
// delay. [List] renders a controller and [Present] shows it as a modal sheet.
//
//	ds, _ := permission.DefaultBindings().Descriptors(permission.Microphone, permission.Notifications)
//	c, err := permissionlist.New(ds, permissionlist.WithDelegate(permissionlist.DelegateFuncs{
//	    Allowed: func(k permission.Kind) { log.Println("allowed", k) },
//	}))
//	if err != nil {
//	    return err
//	}
//	permissionlist.Present(ctx, c)
package permissionlist

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/permissions/pkg/permission"
)

// Construction errors.
var (
	ErrEmptySession  = errors.New("permissionlist: no permissions given")
	ErrDuplicateKind = errors.New("permissionlist: duplicate permission kind")
	ErrNilDescriptor = errors.New("permissionlist: nil permission descriptor")
	ErrInvalidKind   = errors.New("permissionlist: invalid permission kind")
)

// Controller drives the request/refresh/dismiss cycle of one session.
// Its methods are safe to call from any goroutine, but row listeners and
// delegate callbacks are expected to run on the UI thread.
type Controller struct {
	descriptors []permission.Descriptor
	index       map[permission.Kind]int

	dataSource      DataSource
	delegate        Delegate
	texts           Texts
	logger          zerolog.Logger
	scheduler       Scheduler
	haptics         func()
	foreground      Foreground
	dismissHandlers []func()
	settingsHandler func(permission.Kind)
	dismissDelay    time.Duration

	mu             sync.Mutex
	rows           []RowState
	pending        map[permission.Kind]bool
	listeners      map[int]func(RowState)
	nextListener   int
	started        bool
	dismissed      bool
	dismissPending bool
	cancelDismiss  func() bool
	stopForeground func()
	icons          map[permission.Kind]image.Image
}

// New creates a controller for descriptors, in display order. The set must
// be non-empty and every kind may appear only once.
func New(descriptors []permission.Descriptor, opts ...Option) (*Controller, error) {
	if len(descriptors) == 0 {
		return nil, ErrEmptySession
	}

	c := &Controller{
		descriptors:  make([]permission.Descriptor, len(descriptors)),
		index:        make(map[permission.Kind]int, len(descriptors)),
		texts:        DefaultTexts(),
		logger:       DefaultLogger(),
		scheduler:    DispatchScheduler{},
		haptics:      func() { platform.Haptics.LightImpact() },
		foreground:   LifecycleForeground{},
		dismissDelay: DefaultDismissDelay,
		rows:         make([]RowState, len(descriptors)),
		pending:      make(map[permission.Kind]bool),
		listeners:    make(map[int]func(RowState)),
		icons:        make(map[permission.Kind]image.Image),
	}
	copy(c.descriptors, descriptors)

	for i, d := range c.descriptors {
		if d == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilDescriptor, i)
		}
		kind := d.Kind()
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
		}
		if _, dup := c.index[kind]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
		}
		c.index[kind] = i
		c.rows[i] = RowState{Index: i, Kind: kind, Status: permission.NotDetermined, Visual: RowNotRequested}
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Kinds returns the session's kinds in display order.
func (c *Controller) Kinds() []permission.Kind {
	out := make([]permission.Kind, len(c.descriptors))
	for i, d := range c.descriptors {
		out[i] = d.Kind()
	}
	return out
}

// Texts returns the header and footer strings.
func (c *Controller) Texts() Texts {
	return c.texts
}

// DisplayData returns the display data for kind, merged with the defaults.
// Icons are scaled to the row size once per session.
func (c *Controller) DisplayData(kind permission.Kind) DisplayData {
	var d DisplayData
	if c.dataSource != nil {
		d, _ = c.dataSource.DisplayData(kind)
	}
	d = d.withDefaults(kind)
	if d.Icon != nil {
		d.Icon = c.icon(kind, d.Icon)
	}
	return d
}

// icon returns src scaled for kind's row, reusing the session's copy.
func (c *Controller) icon(kind permission.Kind, src image.Image) image.Image {
	c.mu.Lock()
	if scaled, ok := c.icons[kind]; ok {
		c.mu.Unlock()
		return scaled
	}
	c.mu.Unlock()

	scaled := scaleIcon(src, iconSize)
	if scaled == nil {
		return src
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dismissed {
		return scaled
	}
	if prev, ok := c.icons[kind]; ok {
		return prev
	}
	c.icons[kind] = scaled
	return scaled
}

// Rows returns a snapshot of every row in display order.
func (c *Controller) Rows() []RowState {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]RowState, len(c.rows))
	copy(out, c.rows)
	return out
}

// Row returns the row for kind.
func (c *Controller) Row(kind permission.Kind) (RowState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[kind]
	if !ok {
		return RowState{}, false
	}
	return c.rows[i], true
}

// DismissScheduled reports whether the all-authorized dismissal is pending.
func (c *Controller) DismissScheduled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissPending && !c.dismissed
}

// Dismissed reports whether the session has ended.
func (c *Controller) Dismissed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissed
}

// Subscribe registers fn to receive every row change.
func (c *Controller) Subscribe(fn func(RowState)) (cancel func()) {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Start subscribes to foreground notifications and loads the initial row
// states. Calling it again, or after Dismiss, does nothing.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.dismissed {
		c.mu.Unlock()
		return
	}
	c.started = true
	fg := c.foreground
	c.mu.Unlock()

	if fg != nil {
		stop := fg.Subscribe(func() {
			c.logger.Debug().Msg("app returned to foreground, refreshing rows")
			c.RefreshAll(ctx)
		})
		c.mu.Lock()
		if c.dismissed {
			c.mu.Unlock()
			stop()
		} else {
			c.stopForeground = stop
			c.mu.Unlock()
		}
	}

	c.RefreshAll(ctx)
}

// RequestPermission asks the platform for kind. Taps for kinds outside the
// session, taps after dismissal and re-taps while a request is in flight are
// ignored.
func (c *Controller) RequestPermission(ctx context.Context, kind permission.Kind) {
	c.mu.Lock()
	i, ok := c.index[kind]
	switch {
	case !ok:
		c.mu.Unlock()
		c.logger.Debug().Stringer("permission", kind).Msg("ignoring request outside the session")
		return
	case c.dismissed:
		c.mu.Unlock()
		c.logger.Debug().Stringer("permission", kind).Msg("ignoring request after dismissal")
		return
	case c.pending[kind]:
		c.mu.Unlock()
		c.logger.Debug().Stringer("permission", kind).Msg("request already in flight")
		return
	}
	c.pending[kind] = true
	c.rows[i].Visual = RowPending
	row := c.rows[i]
	d := c.descriptors[i]
	c.mu.Unlock()

	c.notify(row)

	// The row may not have been loaded yet, so the baseline for the grant
	// haptic comes from the platform.
	wasAuthorized := d.Status(ctx) == permission.Authorized
	c.logger.Debug().Stringer("permission", kind).Bool("authorized", wasAuthorized).Msg("requesting permission")

	d.Request(ctx, func() {
		c.complete(ctx, kind, wasAuthorized)
	})
}

// complete handles the platform's answer to a request for kind.
func (c *Controller) complete(ctx context.Context, kind permission.Kind, wasAuthorized bool) {
	c.mu.Lock()
	delete(c.pending, kind)
	c.mu.Unlock()

	status := c.refresh(ctx, kind)
	c.logger.Info().Stringer("permission", kind).Stringer("status", status).Msg("permission request completed")

	authorized := status == permission.Authorized
	if authorized && !wasAuthorized {
		c.impact()
	}

	if c.delegate != nil {
		if authorized {
			c.delegate.OnAllowed(kind)
		} else {
			c.delegate.OnDenied(kind)
		}
	}

	if linked, ok := kind.Linked(); ok {
		if _, inSession := c.index[linked]; inSession {
			linkedStatus := c.refresh(ctx, linked)
			c.logger.Debug().
				Stringer("permission", linked).
				Stringer("status", linkedStatus).
				Msg("refreshed linked permission")
		}
	}

	c.checkCompletion(ctx)

	if status == permission.Denied {
		c.logger.Warn().
			Stringer("permission", kind).
			Msg("permission denied; the user has to enable it in the system settings")
		if c.settingsHandler != nil {
			c.settingsHandler(kind)
		}
	}
}

// refresh re-reads kind's live status into its row and notifies listeners.
func (c *Controller) refresh(ctx context.Context, kind permission.Kind) permission.Status {
	i := c.index[kind]
	status := c.descriptors[i].Status(ctx)

	c.mu.Lock()
	row := c.applyLocked(i, status)
	c.mu.Unlock()

	c.notify(row)
	return status
}

// applyLocked stores status in row i. Rows with a request in flight stay pending.
func (c *Controller) applyLocked(i int, status permission.Status) RowState {
	row := &c.rows[i]
	row.Status = status
	if c.pending[row.Kind] {
		row.Visual = RowPending
	} else {
		row.Visual = visualFor(status)
	}
	return *row
}

// RefreshAll re-reads every row from the platform without notifying the
// delegate. Hosts call it (through [Foreground]) when the app returns to the
// foreground, since the user may have changed permissions in the settings.
//
// A refresh whose context ends before every status is read leaves the rows
// untouched.
func (c *Controller) RefreshAll(ctx context.Context) {
	statuses := make([]permission.Status, len(c.descriptors))
	var g errgroup.Group
	for i, d := range c.descriptors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			statuses[i] = d.Status(ctx)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Debug().Err(err).Msg("refresh abandoned")
		return
	}

	c.mu.Lock()
	rows := make([]RowState, len(statuses))
	for i, status := range statuses {
		rows[i] = c.applyLocked(i, status)
	}
	c.mu.Unlock()

	for _, row := range rows {
		c.notify(row)
	}
}

// AuthorizedCount queries the platform and counts authorized session items.
func (c *Controller) AuthorizedCount(ctx context.Context) int {
	n := 0
	for _, d := range c.descriptors {
		if d.Status(ctx) == permission.Authorized {
			n++
		}
	}
	return n
}

// checkCompletion schedules dismissal once every item is authorized.
func (c *Controller) checkCompletion(ctx context.Context) {
	if c.AuthorizedCount(ctx) != len(c.descriptors) {
		return
	}

	c.mu.Lock()
	if c.dismissed || c.dismissPending {
		c.mu.Unlock()
		return
	}
	c.dismissPending = true
	c.mu.Unlock()

	c.logger.Info().Dur("delay", c.dismissDelay).Msg("all permissions authorized, scheduling dismissal")
	cancel := c.scheduler.AfterFunc(c.dismissDelay, c.Dismiss)

	c.mu.Lock()
	if c.dismissed {
		c.mu.Unlock()
		cancel()
		return
	}
	c.cancelDismiss = cancel
	c.mu.Unlock()
}

// Dismiss ends the session. Only the first call has any effect: it cancels
// a scheduled dismissal, stops foreground refreshes and runs the dismiss
// handlers. Scaled icons are dropped with the session.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	if c.dismissed {
		c.mu.Unlock()
		return
	}
	c.dismissed = true
	cancel := c.cancelDismiss
	c.cancelDismiss = nil
	stop := c.stopForeground
	c.stopForeground = nil
	clear(c.icons)
	handlers := c.dismissHandlers
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if stop != nil {
		stop()
	}
	c.logger.Info().Msg("permission list dismissed")
	for _, h := range handlers {
		h()
	}
}

// addDismissHandler registers fn after construction. If the session already
// ended, fn runs immediately.
func (c *Controller) addDismissHandler(fn func()) {
	c.mu.Lock()
	if c.dismissed {
		c.mu.Unlock()
		fn()
		return
	}
	c.dismissHandlers = append(c.dismissHandlers, fn)
	c.mu.Unlock()
}

func (c *Controller) notify(row RowState) {
	c.mu.Lock()
	listeners := make([]func(RowState), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(row)
	}
}

// impact fires the grant haptic. Failures never reach the caller.
func (c *Controller) impact() {
	if c.haptics == nil {
		return
	}
	defer drifterrors.Recover("permissionlist.haptics")
	c.haptics()
}
