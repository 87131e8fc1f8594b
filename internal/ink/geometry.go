package ink

import "image/color"

// Primitive is one drawable unit emitted by the geometry builder. Rendering
// adapters (fyne preview, PDF export) translate primitives to their surface;
// the builder itself never touches a rendering surface.
type Primitive interface {
	isPrimitive()
}

// FillOutline is a closed variable-width outline to be filled: the left
// rail outward, joined with quadratic-midpoint segments, then the right rail
// back. Spine and Widths carry the center-line the outline was offset from,
// for adapters that approximate the fill with width-modulated segments.
type FillOutline struct {
	Outline Path
	Spine   []Point
	Widths  []float32
	Color   color.NRGBA
}

func (FillOutline) isPrimitive() {}

// StrokeLine is an unfilled polyline stroked at constant width. A non-nil
// Dash pattern alternates drawn and skipped lengths along the line.
type StrokeLine struct {
	Points []Point
	Width  float32
	Dash   []float32
	Color  color.NRGBA
}

func (StrokeLine) isPrimitive() {}

// Dot is a filled circle, the degenerate geometry of a single-point stroke.
type Dot struct {
	Center   Point
	Diameter float32
	Color    color.NRGBA
}

func (Dot) isPrimitive() {}

// BuildGeometry converts a stroke into renderable primitives. It is a pure
// function of the stroke's fields: the same stroke always yields the same
// primitives, which is what makes undo/redo redraw and the live-preview loop
// repeatable.
func BuildGeometry(s *Stroke) ([]Primitive, error) {
	if len(s.Points) == 0 || s.BaseWidth <= 0 {
		return nil, ErrDegenerate
	}
	return builderFor(s.Style).build(s)
}

// styleBuilder turns one stroke into primitives; one implementation exists
// per line style.
type styleBuilder interface {
	build(s *Stroke) ([]Primitive, error)
}

func builderFor(style Style) styleBuilder {
	switch style {
	case StyleDashed:
		return dashedBuilder{dotted: false}
	case StyleDotted:
		return dashedBuilder{dotted: true}
	case StyleDouble:
		return doubleBuilder{}
	default:
		return solidBuilder{}
	}
}
