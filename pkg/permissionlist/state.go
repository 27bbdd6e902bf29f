package permissionlist

import "github.com/go-drift/permissions/pkg/permission"

// RowVisual is the visual state of one permission row.
type RowVisual int

const (
	// RowNotRequested shows the allow action.
	RowNotRequested RowVisual = iota
	// RowPending means a request is in flight; the action is disabled.
	RowPending
	// RowAuthorized shows the allowed state.
	RowAuthorized
	// RowDenied shows the denied state. Tapping requests again, which the
	// platform usually answers immediately.
	RowDenied
)

// String returns the snake_case name of v.
func (v RowVisual) String() string {
	switch v {
	case RowNotRequested:
		return "not_requested"
	case RowPending:
		return "pending"
	case RowAuthorized:
		return "authorized"
	case RowDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// RowState is the derived, ephemeral state of one row. It is recomputed from
// the live permission status on every refresh and never persisted.
type RowState struct {
	Index  int
	Kind   permission.Kind
	Status permission.Status
	Visual RowVisual
}

// IsAuthorized reports whether the row's last known status is authorized.
func (r RowState) IsAuthorized() bool {
	return r.Status == permission.Authorized
}

// IsDenied reports whether the row's last known status is denied.
func (r RowState) IsDenied() bool {
	return r.Status == permission.Denied
}

// visualFor derives the visual state from a status. Restricted renders as
// denied: the user cannot grant it from this list.
func visualFor(status permission.Status) RowVisual {
	switch status {
	case permission.Authorized:
		return RowAuthorized
	case permission.Denied, permission.Restricted:
		return RowDenied
	default:
		return RowNotRequested
	}
}
