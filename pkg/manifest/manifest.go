// Package manifest loads a permission list session from YAML.
//
// A manifest names the permissions to ask for, in display order, and
// optionally overrides the header, footer and per-row texts and icons:
//
//	title: Need Permissions
//	permissions:
//	  - kind: camera
//	    subtitle: Scan receipts
//	    icon: icons/camera.png
//	  - kind: location_always
//
// Icon paths are slash-separated and resolved against the fs.FS passed to
// [Load].
package manifest

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/permissions/pkg/permission"
	"github.com/go-drift/permissions/pkg/permissionlist"
)

// Validation errors returned by [Parse] and [Load].
var (
	// ErrNoPermissions is returned for a manifest without permissions.
	ErrNoPermissions = errors.New("manifest: no permissions listed")
	// ErrDuplicate is returned when a kind is listed more than once.
	ErrDuplicate = errors.New("manifest: permission listed twice")
	// ErrIconPath is returned for icon paths that are absolute, escape the
	// file system root or are not portable.
	ErrIconPath = errors.New("manifest: invalid icon path")
)

// Manifest is a parsed manifest document.
type Manifest struct {
	Title       string  `yaml:"title,omitempty"`
	Subtitle    string  `yaml:"subtitle,omitempty"`
	Footer      string  `yaml:"footer,omitempty"`
	Permissions []Entry `yaml:"permissions"`

	icons map[permission.Kind]image.Image
}

// Entry describes one row.
type Entry struct {
	Kind     permission.Kind `yaml:"kind"`
	Title    string          `yaml:"title,omitempty"`
	Subtitle string          `yaml:"subtitle,omitempty"`
	Icon     string          `yaml:"icon,omitempty"`
	Glyph    string          `yaml:"glyph,omitempty"`

	AllowTitle   string `yaml:"allow_title,omitempty"`
	AllowedTitle string `yaml:"allowed_title,omitempty"`
	DeniedTitle  string `yaml:"denied_title,omitempty"`
}

// Parse decodes and validates a manifest. Icons are not loaded.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest called name from fsys and decodes the icons it
// references.
func Load(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	for _, e := range m.Permissions {
		if e.Icon == "" {
			continue
		}
		img, err := decodeIcon(fsys, e.Icon)
		if err != nil {
			return nil, fmt.Errorf("%s: icon for %s: %w", name, e.Kind, err)
		}
		if m.icons == nil {
			m.icons = make(map[permission.Kind]image.Image)
		}
		m.icons[e.Kind] = img
	}
	return m, nil
}

func decodeIcon(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

func (m *Manifest) validate() error {
	if len(m.Permissions) == 0 {
		return ErrNoPermissions
	}
	seen := make(map[permission.Kind]bool, len(m.Permissions))
	for i, e := range m.Permissions {
		if !e.Kind.Valid() {
			return fmt.Errorf("permission %d: %w: missing kind", i, permission.ErrUnknownKind)
		}
		if seen[e.Kind] {
			return fmt.Errorf("%w: %s", ErrDuplicate, e.Kind)
		}
		seen[e.Kind] = true
		if e.Icon != "" {
			if err := module.CheckFilePath(e.Icon); err != nil {
				return fmt.Errorf("%w %q: %w", ErrIconPath, e.Icon, err)
			}
		}
	}
	return nil
}

// Kinds returns the listed kinds in order.
func (m *Manifest) Kinds() []permission.Kind {
	out := make([]permission.Kind, len(m.Permissions))
	for i, e := range m.Permissions {
		out[i] = e.Kind
	}
	return out
}

// Texts returns the header and footer strings. Empty fields are filled in by
// the controller.
func (m *Manifest) Texts() permissionlist.Texts {
	return permissionlist.Texts{Title: m.Title, Subtitle: m.Subtitle, Footer: m.Footer}
}

// DisplayData implements [permissionlist.DataSource].
func (m *Manifest) DisplayData(kind permission.Kind) (permissionlist.DisplayData, bool) {
	for _, e := range m.Permissions {
		if e.Kind != kind {
			continue
		}
		return permissionlist.DisplayData{
			Icon:         m.icons[kind],
			IconGlyph:    e.Glyph,
			Title:        e.Title,
			Subtitle:     e.Subtitle,
			AllowTitle:   e.AllowTitle,
			AllowedTitle: e.AllowedTitle,
			DeniedTitle:  e.DeniedTitle,
		}, true
	}
	return permissionlist.DisplayData{}, false
}

// Options returns the controller options the manifest configures.
func (m *Manifest) Options() []permissionlist.Option {
	return []permissionlist.Option{
		permissionlist.WithTexts(m.Texts()),
		permissionlist.WithDataSource(m),
	}
}

// Controller binds the listed kinds with b and creates a controller for
// them. opts are applied after the manifest's own options.
func (m *Manifest) Controller(b permission.Bindings, opts ...permissionlist.Option) (*permissionlist.Controller, error) {
	ds, err := b.Descriptors(m.Kinds()...)
	if err != nil {
		return nil, err
	}
	return permissionlist.New(ds, append(m.Options(), opts...)...)
}
