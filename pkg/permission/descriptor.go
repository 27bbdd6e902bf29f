// Package permission describes the device permissions a permission list can
// request and adapts drift's platform permission API to them.
//
// A [Descriptor] pairs a [Kind] with a live status query and an asynchronous
// request action. The platform stays the single source of truth: descriptors
// never cache a status.
package permission

import (
	"context"
	"time"

	"github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
)

// DefaultRequestTimeout bounds a single platform permission request.
const DefaultRequestTimeout = platform.DefaultPermissionTimeout

// Descriptor is one requestable permission.
type Descriptor interface {
	// Kind identifies the permission.
	Kind() Kind

	// Status queries the current authorization state. It never fails;
	// platform errors are reported and read as NotDetermined.
	Status(ctx context.Context) Status

	// Request asks the platform for authorization and returns immediately.
	// done is called exactly once on the UI thread when the platform answers.
	Request(ctx context.Context, done func())
}

type platformDescriptor struct {
	kind    Kind
	perm    platform.Permission
	timeout time.Duration
}

// FromPlatform adapts a drift platform permission into a Descriptor.
func FromPlatform(kind Kind, perm platform.Permission) Descriptor {
	return &platformDescriptor{kind: kind, perm: perm, timeout: DefaultRequestTimeout}
}

func (d *platformDescriptor) Kind() Kind {
	return d.kind
}

func (d *platformDescriptor) Status(ctx context.Context) Status {
	result, err := d.perm.Status(ctx)
	if err != nil {
		errors.Report(&errors.DriftError{
			Op:   "permissionlist.status." + d.kind.String(),
			Kind: errors.KindPlatform,
			Err:  err,
		})
		return NotDetermined
	}
	return StatusFromResult(result)
}

func (d *platformDescriptor) Request(ctx context.Context, done func()) {
	go func() {
		defer deliver(done)

		reqCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		if _, err := d.perm.Request(reqCtx); err != nil {
			// The completion still fires; callers re-read Status.
			errors.Report(&errors.DriftError{
				Op:   "permissionlist.request." + d.kind.String(),
				Kind: errors.KindPlatform,
				Err:  err,
			})
		}
	}()
}

// deliver runs done on the UI thread, or inline when no dispatcher is
// registered (headless hosts, tests).
func deliver(done func()) {
	if done == nil {
		return
	}
	if !platform.Dispatch(done) {
		done()
	}
}
