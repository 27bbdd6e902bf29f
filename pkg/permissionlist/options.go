package permissionlist

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/permissions/pkg/permission"
)

// Option configures a [Controller].
type Option func(*Controller)

// WithDataSource sets where row display data comes from.
func WithDataSource(ds DataSource) Option {
	return func(c *Controller) { c.dataSource = ds }
}

// WithDelegate sets the host callbacks.
func WithDelegate(d Delegate) Option {
	return func(c *Controller) { c.delegate = d }
}

// WithTexts overrides the header and footer strings. Empty fields keep the defaults.
func WithTexts(t Texts) Option {
	return func(c *Controller) { c.texts = t.withDefaults() }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithScheduler replaces the scheduler used for deferred dismissal.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithHaptics replaces the light impact fired when a permission is granted.
// Pass nil to disable haptics.
func WithHaptics(fn func()) Option {
	return func(c *Controller) { c.haptics = fn }
}

// WithForeground sets the foreground source used by [Controller.Start].
// Pass nil to disable foreground refreshes.
func WithForeground(f Foreground) Option {
	return func(c *Controller) { c.foreground = f }
}

// WithDismissHandler registers fn to run once when the session is dismissed.
func WithDismissHandler(fn func()) Option {
	return func(c *Controller) {
		if fn != nil {
			c.dismissHandlers = append(c.dismissHandlers, fn)
		}
	}
}

// WithSettingsHandler registers fn to run when a request ends denied, so the
// host can point the user at the system settings.
func WithSettingsHandler(fn func(kind permission.Kind)) Option {
	return func(c *Controller) { c.settingsHandler = fn }
}

// WithDismissDelay overrides [DefaultDismissDelay].
func WithDismissDelay(d time.Duration) Option {
	return func(c *Controller) { c.dismissDelay = d }
}
