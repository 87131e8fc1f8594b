// Package state holds the board's element collection and the per-board
// viewport and tool settings. Strokes are built by the ink engine and owned
// by the board once committed; erasing mutates or removes them here.
package state

import (
	"image/color"

	"github.com/google/uuid"

	"InkBoard/internal/ink"
)

// Element is anything that lives on the board.
type Element interface {
	ElementID() string
	Bounds() (min, max ink.Point)
}

// PreciseErasable is the capability of a shape kind to have the eraser's
// swept region boolean-subtracted from its filled area. Freehand strokes do
// not implement it: they are always erased as whole units, even in precise
// mode. Raster content does not implement it either and falls back to
// whole-shape deletion.
type PreciseErasable interface {
	Element
	// Outline returns the shape's filled region as a closed document-space
	// ring (first point repeated last not required).
	Outline() []ink.Point
	// WithOutline returns a new element of a suitable kind carrying a
	// remnant ring left over after subtraction.
	WithOutline(ring []ink.Point) Element
}

// StrokeElement places a committed freehand stroke on the board.
type StrokeElement struct {
	Stroke *ink.Stroke
}

func (e *StrokeElement) ElementID() string { return e.Stroke.ID }

func (e *StrokeElement) Bounds() (min, max ink.Point) { return e.Stroke.Bounds() }

// RectShape is an axis-aligned filled rectangle. The drawing tools here do
// not create rectangles; they exist as imported content and as precise-erase
// targets.
type RectShape struct {
	ID       string
	Min, Max ink.Point
	Color    color.NRGBA
}

func (r *RectShape) ElementID() string { return r.ID }

func (r *RectShape) Bounds() (min, max ink.Point) { return r.Min, r.Max }

func (r *RectShape) Outline() []ink.Point {
	return []ink.Point{
		r.Min,
		ink.Pt(r.Max.X, r.Min.Y),
		r.Max,
		ink.Pt(r.Min.X, r.Max.Y),
	}
}

func (r *RectShape) WithOutline(ring []ink.Point) Element {
	return &PolygonShape{ID: uuid.NewString(), Ring: ring, Color: r.Color}
}

// PolygonShape is a filled simple polygon, the result kind of precise
// erasing any vector shape.
type PolygonShape struct {
	ID    string
	Ring  []ink.Point
	Color color.NRGBA
}

func (p *PolygonShape) ElementID() string { return p.ID }

func (p *PolygonShape) Bounds() (min, max ink.Point) {
	return ringBounds(p.Ring)
}

func (p *PolygonShape) Outline() []ink.Point { return p.Ring }

func (p *PolygonShape) WithOutline(ring []ink.Point) Element {
	return &PolygonShape{ID: uuid.NewString(), Ring: ring, Color: p.Color}
}

// ImageRef is a placeholder for raster content. It cannot be subtracted
// from; precise erasing deletes it whole, with a notice.
type ImageRef struct {
	ID       string
	Min, Max ink.Point
	Name     string
}

func (i *ImageRef) ElementID() string { return i.ID }

func (i *ImageRef) Bounds() (min, max ink.Point) { return i.Min, i.Max }

func ringBounds(ring []ink.Point) (min, max ink.Point) {
	if len(ring) == 0 {
		return ink.Point{}, ink.Point{}
	}
	min, max = ring[0], ring[0]
	for _, p := range ring[1:] {
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
	return min, max
}
