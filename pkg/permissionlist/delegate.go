package permissionlist

import "github.com/go-drift/permissions/pkg/permission"

//go:generate mockgen -source=delegate.go -destination=mocks/mock_delegate.go -package=mocks

// Delegate receives the outcome of each tap-driven request. Exactly one of
// the two methods is called per completed request, on the UI thread.
type Delegate interface {
	OnAllowed(kind permission.Kind)
	OnDenied(kind permission.Kind)
}

// DelegateFuncs adapts optional functions to [Delegate]. Nil fields are skipped.
type DelegateFuncs struct {
	Allowed func(kind permission.Kind)
	Denied  func(kind permission.Kind)
}

// OnAllowed calls d.Allowed if set.
func (d DelegateFuncs) OnAllowed(kind permission.Kind) {
	if d.Allowed != nil {
		d.Allowed(kind)
	}
}

// OnDenied calls d.Denied if set.
func (d DelegateFuncs) OnDenied(kind permission.Kind) {
	if d.Denied != nil {
		d.Denied(kind)
	}
}
