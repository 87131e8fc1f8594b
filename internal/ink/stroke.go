// Package ink implements the freehand stroke engine: input smoothing,
// pressure estimation and the construction of variable-width outline
// geometry for committed strokes. It is pure geometry; rendering surfaces
// (fyne preview, PDF export) consume the primitives it emits.
package ink

import (
	"errors"
	"image/color"
)

// Style selects how a stroke's geometry is built.
type Style int

const (
	StyleSolid Style = iota
	StyleDashed
	StyleDotted
	StyleDouble
)

func (s Style) String() string {
	switch s {
	case StyleSolid:
		return "solid"
	case StyleDashed:
		return "dashed"
	case StyleDotted:
		return "dotted"
	case StyleDouble:
		return "double"
	}
	return "unknown"
}

// BrushShape is the cross-section swept along a stroke or eraser path.
type BrushShape int

const (
	BrushCircle BrushShape = iota
	BrushSquare
)

// ErrDegenerate reports geometry input that cannot produce a visible
// result (no points, non-positive width). Callers treat it as a no-op draw.
var ErrDegenerate = errors.New("ink: degenerate stroke geometry")

// Stroke is one freehand drawing element.
//
// Pressures is either nil (constant-width stroke) or exactly parallel to
// Points with values in [0,1]. A stroke is closed when its first and last
// points coincide.
type Stroke struct {
	ID        string
	Points    []Point
	Pressures []float32
	BaseWidth float32
	Color     color.NRGBA
	Style     Style
	Brush     BrushShape
	// Spacing separates the two center-lines of StyleDouble.
	// Zero means the default of BaseWidth*0.8.
	Spacing float32
}

// Closed reports whether the stroke's first and last points coincide.
func (s *Stroke) Closed() bool {
	if len(s.Points) < 3 {
		return false
	}
	return s.Points[0] == s.Points[len(s.Points)-1]
}

// Bounds returns the axis-aligned bounding box of the stroke's points,
// padded by half the widest possible pen width.
func (s *Stroke) Bounds() (min, max Point) {
	if len(s.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	pad := WidthFor(1, s.BaseWidth) / 2
	min.X -= pad
	min.Y -= pad
	max.X += pad
	max.Y += pad
	return min, max
}

// pressureAt returns the stroke's pressure at index i, defaulting to 1.
func (s *Stroke) pressureAt(i int) float32 {
	if s.Pressures == nil || i >= len(s.Pressures) {
		return 1
	}
	return s.Pressures[i]
}
