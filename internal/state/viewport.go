package state

import "InkBoard/internal/ink"

// Viewport converts between screen space and document space. It is consulted
// exactly once per input sample, before any geometry logic runs; everything
// downstream of the conversion is zoom-agnostic.
type Viewport struct {
	Zoom float32
	Pan  ink.Point
}

func NewViewport() *Viewport {
	return &Viewport{Zoom: 1}
}

// ToDocument maps a screen-space position into document space.
func (v *Viewport) ToDocument(screen ink.Point) ink.Point {
	z := v.Zoom
	if z <= 0 {
		z = 1
	}
	return screen.Sub(v.Pan).MulScalar(1 / z)
}

// ToScreen maps a document-space position into screen space.
func (v *Viewport) ToScreen(doc ink.Point) ink.Point {
	z := v.Zoom
	if z <= 0 {
		z = 1
	}
	return doc.MulScalar(z).Add(v.Pan)
}

// ZoomBy scales the zoom factor, clamped to a usable range.
func (v *Viewport) ZoomBy(factor float32) {
	v.Zoom *= factor
	if v.Zoom > 3.0 {
		v.Zoom = 3.0
	}
	if v.Zoom < 0.3 {
		v.Zoom = 0.3
	}
}

// PanBy shifts the viewport by a screen-space delta.
func (v *Viewport) PanBy(dx, dy float32) {
	v.Pan.X += dx
	v.Pan.Y += dy
}
