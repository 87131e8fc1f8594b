package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// toScreen converts a document point to a fyne position.
func toScreen(vp *state.Viewport, p ink.Point) fyne.Position {
	s := vp.ToScreen(p)
	return fyne.NewPos(s.X, s.Y)
}

func fade(c color.NRGBA) color.NRGBA {
	c.A = c.A / 3
	return c
}

// renderPrimitives turns stroke geometry into canvas objects. Filled
// outlines are drawn as width-modulated segments along the spine, which
// is how fyne can approximate a variable-width ribbon without a filled
// polygon primitive.
func renderPrimitives(prims []ink.Primitive, vp *state.Viewport, faded bool) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(prims))
	for _, prim := range prims {
		switch p := prim.(type) {
		case ink.FillOutline:
			c := p.Color
			if faded {
				c = fade(c)
			}
			for i := 1; i < len(p.Spine); i++ {
				seg := canvas.NewLine(c)
				seg.StrokeWidth = (p.Widths[i-1] + p.Widths[i]) / 2 * vp.Zoom
				seg.Position1 = toScreen(vp, p.Spine[i-1])
				seg.Position2 = toScreen(vp, p.Spine[i])
				objects = append(objects, seg)
			}
		case ink.StrokeLine:
			c := p.Color
			if faded {
				c = fade(c)
			}
			spans := [][]ink.Point{p.Points}
			if len(p.Dash) > 0 {
				spans = ink.SplitDashes(p.Points, p.Dash, 0)
			}
			for _, span := range spans {
				for i := 1; i < len(span); i++ {
					seg := canvas.NewLine(c)
					seg.StrokeWidth = p.Width * vp.Zoom
					seg.Position1 = toScreen(vp, span[i-1])
					seg.Position2 = toScreen(vp, span[i])
					objects = append(objects, seg)
				}
			}
		case ink.Dot:
			c := p.Color
			if faded {
				c = fade(c)
			}
			dot := canvas.NewCircle(c)
			r := p.Diameter / 2 * vp.Zoom
			center := toScreen(vp, p.Center)
			dot.Position1 = fyne.NewPos(center.X-r, center.Y-r)
			dot.Position2 = fyne.NewPos(center.X+r, center.Y+r)
			objects = append(objects, dot)
		}
	}
	return objects
}

// renderElement draws a board element. Stroke geometry that fails to
// build is skipped rather than drawn wrong.
func renderElement(el state.Element, vp *state.Viewport, faded bool) []fyne.CanvasObject {
	switch e := el.(type) {
	case *state.StrokeElement:
		prims, err := ink.BuildGeometry(e.Stroke)
		if err != nil {
			return nil
		}
		return renderPrimitives(prims, vp, faded)
	case *state.RectShape:
		c := e.Color
		if faded {
			c = fade(c)
		}
		rect := canvas.NewRectangle(c)
		min := toScreen(vp, e.Min)
		max := toScreen(vp, e.Max)
		rect.Move(min)
		rect.Resize(fyne.NewSize(max.X-min.X, max.Y-min.Y))
		return []fyne.CanvasObject{rect}
	case *state.PolygonShape:
		c := e.Color
		if faded {
			c = fade(c)
		}
		return renderRingFill(e.Ring, vp, c)
	case *state.ImageRef:
		rect := canvas.NewRectangle(color.NRGBA{R: 220, G: 220, B: 220, A: 255})
		rect.StrokeColor = color.Gray{Y: 120}
		rect.StrokeWidth = 1
		min := toScreen(vp, e.Min)
		max := toScreen(vp, e.Max)
		rect.Move(min)
		rect.Resize(fyne.NewSize(max.X-min.X, max.Y-min.Y))
		return []fyne.CanvasObject{rect}
	}
	return nil
}

// renderRingFill rasterizes a polygon interior as horizontal scan
// segments. Coarse but fyne offers no polygon fill of its own.
func renderRingFill(ring []ink.Point, vp *state.Viewport, c color.NRGBA) []fyne.CanvasObject {
	const rowHeight = 2

	if len(ring) < 3 {
		return nil
	}
	var objects []fyne.CanvasObject
	minY, maxY := ring[0].Y, ring[0].Y
	for _, p := range ring {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	step := rowHeight / vp.Zoom
	for y := minY + step/2; y < maxY; y += step {
		for _, span := range ringRowSpans(ring, y) {
			seg := canvas.NewLine(c)
			seg.StrokeWidth = rowHeight
			seg.Position1 = toScreen(vp, ink.Pt(span[0], y))
			seg.Position2 = toScreen(vp, ink.Pt(span[1], y))
			objects = append(objects, seg)
		}
	}
	return objects
}

// ringRowSpans returns interior [x0,x1] intervals of the ring along the
// horizontal line at y, using even-odd crossings.
func ringRowSpans(ring []ink.Point, y float32) [][2]float32 {
	var xs []float32
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		if (a.Y > y) == (b.Y > y) {
			continue
		}
		t := (y - a.Y) / (b.Y - a.Y)
		xs = append(xs, a.X+t*(b.X-a.X))
	}
	// insertion sort, crossing counts stay tiny
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
	var spans [][2]float32
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, [2]float32{xs[i], xs[i+1]})
	}
	return spans
}
