package manifest_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/permissions/pkg/manifest"
	"github.com/go-drift/permissions/pkg/permission"
	"github.com/go-drift/permissions/pkg/permissionlist"
)

const sample = `
title: Before we start
permissions:
  - kind: camera
    subtitle: Scan receipts
    icon: icons/camera.png
  - kind: location_always
    title: Background location
    denied_title: Off
`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, []permission.Kind{permission.Camera, permission.LocationAlways}, m.Kinds())

	texts := m.Texts()
	assert.Equal(t, "Before we start", texts.Title)
	assert.Empty(t, texts.Subtitle)

	d, ok := m.DisplayData(permission.LocationAlways)
	require.True(t, ok)
	assert.Equal(t, "Background location", d.Title)
	assert.Equal(t, "Off", d.DeniedTitle)
	assert.Nil(t, d.Icon, "Parse does not load icons")

	_, ok = m.DisplayData(permission.Microphone)
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "title: x\n", manifest.ErrNoPermissions},
		{"duplicate", "permissions:\n  - kind: camera\n  - kind: camera\n", manifest.ErrDuplicate},
		{"missing kind", "permissions:\n  - title: x\n", permission.ErrUnknownKind},
		{"bad icon path", "permissions:\n  - kind: camera\n    icon: ../camera.png\n", manifest.ErrIconPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := manifest.Parse([]byte("permissions:\n  - kind: bluetooth\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bluetooth")
}

func TestLoad_DecodesIcons(t *testing.T) {
	fsys := fstest.MapFS{
		"permissions.yaml": {Data: []byte(sample)},
		"icons/camera.png": {Data: pngBytes(t, 96, 64)},
	}

	m, err := manifest.Load(fsys, "permissions.yaml")
	require.NoError(t, err)

	d, ok := m.DisplayData(permission.Camera)
	require.True(t, ok)
	require.NotNil(t, d.Icon)
	assert.Equal(t, 96, d.Icon.Bounds().Dx())
	assert.Equal(t, "Scan receipts", d.Subtitle)
}

func TestLoad_MissingIcon(t *testing.T) {
	fsys := fstest.MapFS{"permissions.yaml": {Data: []byte(sample)}}

	_, err := manifest.Load(fsys, "permissions.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icons/camera.png")
}

func TestManifest_Controller(t *testing.T) {
	m, err := manifest.Parse([]byte(sample))
	require.NoError(t, err)

	_, err = m.Controller(permission.DefaultBindings())
	assert.ErrorIs(t, err, permission.ErrUnboundKind, "camera has no default binding")

	m, err = manifest.Parse([]byte("footer: Thanks\npermissions:\n  - kind: microphone\n    title: Voice notes\n"))
	require.NoError(t, err)
	c, err := m.Controller(permission.DefaultBindings(), permissionlist.WithForeground(nil))
	require.NoError(t, err)

	assert.Equal(t, []permission.Kind{permission.Microphone}, c.Kinds())
	assert.Equal(t, "Thanks", c.Texts().Footer)
	assert.Equal(t, permissionlist.DefaultTexts().Title, c.Texts().Title)
	assert.Equal(t, "Voice notes", c.DisplayData(permission.Microphone).Title)
	assert.Equal(t, "Allow", c.DisplayData(permission.Microphone).AllowTitle)
}
