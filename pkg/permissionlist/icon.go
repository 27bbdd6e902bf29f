package permissionlist

import (
	"image"

	"golang.org/x/image/draw"
)

// iconSize is the edge length of row icons in logical pixels.
const iconSize = 48

// scaleIcon returns src scaled to fit an edge x edge square, keeping the
// aspect ratio. Sources that already fit exactly are returned as is.
func scaleIcon(src image.Image, edge int) image.Image {
	if src == nil || edge <= 0 {
		return nil
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	if b.Dx() == edge && b.Dy() == edge {
		return src
	}

	w, h := edge, edge
	if b.Dx() > b.Dy() {
		h = max(1, b.Dy()*edge/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, b.Dx()*edge/b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
