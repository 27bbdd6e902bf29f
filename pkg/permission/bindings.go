package permission

import (
	"errors"
	"fmt"

	"github.com/go-drift/drift/pkg/platform"
)

// ErrUnboundKind is returned when no platform permission is bound to a kind.
var ErrUnboundKind = errors.New("permission: kind has no platform binding")

// Bindings maps kinds to the drift platform permissions that back them.
type Bindings map[Kind]platform.Permission

// DefaultBindings binds every kind drift ships a platform service for.
//
// Camera is not included: drift's camera service has no permission handle, so
// hosts bind it themselves:
//
//	b := permission.DefaultBindings()
//	b[permission.Camera] = myCameraPermission
func DefaultBindings() Bindings {
	return Bindings{
		Microphone:        platform.Microphone.Permission,
		Photos:            platform.Photos.Permission,
		Contacts:          platform.Contacts.Permission,
		Calendar:          platform.Calendar.Permission,
		Storage:           platform.StoragePermission.Permission,
		Notifications:     platform.Notifications.Permission,
		LocationWhenInUse: platform.Location.Permission.WhenInUse,
		LocationAlways:    platform.Location.Permission.Always,
	}
}

// Descriptor returns the descriptor for kind.
func (b Bindings) Descriptor(kind Kind) (Descriptor, error) {
	perm, ok := b[kind]
	if !ok || perm == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnboundKind, kind)
	}
	return FromPlatform(kind, perm), nil
}

// Descriptors resolves kinds in order.
func (b Bindings) Descriptors(kinds ...Kind) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(kinds))
	for _, kind := range kinds {
		d, err := b.Descriptor(kind)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
