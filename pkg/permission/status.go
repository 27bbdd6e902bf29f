package permission

import "github.com/go-drift/drift/pkg/platform"

// Status is the platform-reported authorization state of a permission.
type Status int

const (
	// NotDetermined means the user has not been asked yet (or the state is unknown).
	NotDetermined Status = iota
	// Authorized means access is granted, including partial or provisional grants.
	Authorized
	// Denied means the user refused. Only the system settings can change it.
	Denied
	// Restricted means a system policy blocks the permission.
	Restricted
)

// String returns the snake_case name used in logs.
func (s Status) String() string {
	switch s {
	case NotDetermined:
		return "not_determined"
	case Authorized:
		return "authorized"
	case Denied:
		return "denied"
	case Restricted:
		return "restricted"
	default:
		return "unknown"
	}
}

// StatusFromResult maps a drift permission result onto Status.
func StatusFromResult(result platform.PermissionResult) Status {
	switch result {
	case platform.PermissionGranted, platform.PermissionLimited, platform.PermissionProvisional:
		return Authorized
	case platform.PermissionDenied, platform.PermissionPermanentlyDenied:
		return Denied
	case platform.PermissionRestricted:
		return Restricted
	default:
		return NotDetermined
	}
}
