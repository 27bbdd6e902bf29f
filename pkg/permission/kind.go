package permission

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a string does not name a supported permission kind.
var ErrUnknownKind = errors.New("permission: unknown kind")

// Kind identifies one requestable device capability.
// The set is closed: only the constants below are valid.
type Kind int

const (
	// Camera is camera access. drift has no camera permission service, so
	// hosts bind it themselves.
	Camera Kind = iota + 1
	// Microphone is audio recording access.
	Microphone
	// Photos is photo library access.
	Photos
	// Contacts is address book access.
	Contacts
	// Calendar is calendar access.
	Calendar
	// Notifications is permission to post notifications.
	Notifications
	// LocationWhenInUse is foreground location access.
	LocationWhenInUse
	// LocationAlways is background location access ("always and when in use").
	// Granting it may also change the status of LocationWhenInUse.
	LocationAlways
	// Storage is shared storage access.
	Storage
)

var kindNames = map[Kind]string{
	Camera:            "camera",
	Microphone:        "microphone",
	Photos:            "photos",
	Contacts:          "contacts",
	Calendar:          "calendar",
	Notifications:     "notifications",
	LocationWhenInUse: "location_when_in_use",
	LocationAlways:    "location_always",
	Storage:           "storage",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Camera, Microphone, Photos, Contacts, Calendar,
		Notifications, LocationWhenInUse, LocationAlways, Storage,
	}
}

// String returns the stable snake_case identifier of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Linked returns the kind whose status may change as a side effect of
// granting k, if any.
func (k Kind) Linked() (Kind, bool) {
	if k == LocationAlways {
		return LocationWhenInUse, true
	}
	return 0, false
}

// ParseKind returns the kind named by s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalText implements encoding.TextUnmarshaler, which yaml.v3 also honors.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}
