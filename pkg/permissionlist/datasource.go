package permissionlist

import (
	"image"

	"github.com/go-drift/permissions/pkg/permission"
)

// DisplayData is what a row shows for one permission.
// Zero fields fall back to [DefaultDisplayData].
type DisplayData struct {
	// Icon is an optional bitmap, scaled to the row's icon size.
	Icon image.Image
	// IconGlyph is used when Icon is nil.
	IconGlyph string
	Title     string
	Subtitle  string

	// Action button labels per visual state.
	AllowTitle   string
	AllowedTitle string
	DeniedTitle  string
}

// DataSource supplies display data for the rows. Returning false means
// "use the defaults".
type DataSource interface {
	DisplayData(kind permission.Kind) (DisplayData, bool)
}

// DataSourceFunc adapts a function to [DataSource].
type DataSourceFunc func(kind permission.Kind) (DisplayData, bool)

// DisplayData calls f(kind).
func (f DataSourceFunc) DisplayData(kind permission.Kind) (DisplayData, bool) {
	return f(kind)
}

const (
	defaultAllowTitle   = "Allow"
	defaultAllowedTitle = "Allowed"
	defaultDeniedTitle  = "Denied"
)

var defaultDisplay = map[permission.Kind]DisplayData{
	permission.Camera:            {IconGlyph: "📷", Title: "Camera", Subtitle: "Allow app for use camera"},
	permission.Microphone:        {IconGlyph: "🎙", Title: "Microphone", Subtitle: "Allow app for use microphone"},
	permission.Photos:            {IconGlyph: "🖼", Title: "Photo Library", Subtitle: "Allow app for use photos"},
	permission.Contacts:          {IconGlyph: "👤", Title: "Contacts", Subtitle: "Allow app for use contacts"},
	permission.Calendar:          {IconGlyph: "📅", Title: "Calendar", Subtitle: "Allow app for use calendar"},
	permission.Notifications:     {IconGlyph: "🔔", Title: "Notifications", Subtitle: "Allow app for use notifications"},
	permission.LocationWhenInUse: {IconGlyph: "📍", Title: "Location When Use", Subtitle: "Allow app for use location when use"},
	permission.LocationAlways:    {IconGlyph: "📍", Title: "Location Always", Subtitle: "Allow app for use location always"},
	permission.Storage:           {IconGlyph: "📁", Title: "Storage", Subtitle: "Allow app for use storage"},
}

// DefaultDisplayData returns the built-in display data for kind.
func DefaultDisplayData(kind permission.Kind) DisplayData {
	d := defaultDisplay[kind]
	if d.Title == "" {
		d.Title = kind.String()
	}
	d.AllowTitle = defaultAllowTitle
	d.AllowedTitle = defaultAllowedTitle
	d.DeniedTitle = defaultDeniedTitle
	return d
}

// withDefaults fills zero fields of d from the defaults for kind.
func (d DisplayData) withDefaults(kind permission.Kind) DisplayData {
	def := DefaultDisplayData(kind)
	if d.Icon == nil && d.IconGlyph == "" {
		d.IconGlyph = def.IconGlyph
	}
	if d.Title == "" {
		d.Title = def.Title
	}
	if d.Subtitle == "" {
		d.Subtitle = def.Subtitle
	}
	if d.AllowTitle == "" {
		d.AllowTitle = def.AllowTitle
	}
	if d.AllowedTitle == "" {
		d.AllowedTitle = def.AllowedTitle
	}
	if d.DeniedTitle == "" {
		d.DeniedTitle = def.DeniedTitle
	}
	return d
}

// ActionTitle returns the button label for a visual state.
func (d DisplayData) ActionTitle(v RowVisual) string {
	switch v {
	case RowAuthorized:
		return d.AllowedTitle
	case RowDenied:
		return d.DeniedTitle
	default:
		return d.AllowTitle
	}
}
