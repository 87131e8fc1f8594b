// Package export writes board contents to PDF.
package export

import (
	"log"

	"github.com/jung-kurt/gofpdf"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

const pageMargin = 20 // points

// WritePDF renders every board element onto a single landscape A4 page,
// uniformly scaled to fit.
func WritePDF(path string, b *state.Board) error {
	p := gofpdf.New("L", "pt", "A4", "")
	p.AddPage()
	pageW, pageH := p.GetPageSize()

	elements := b.Elements()
	scale, offset := fitTransform(elements, float32(pageW), float32(pageH))

	for _, el := range elements {
		writeElement(p, el, scale, offset)
	}

	log.Printf("[EXPORT] Writing %d elements to %s", len(elements), path)
	return p.OutputFileAndClose(path)
}

// fitTransform maps document bounds into the page interior, preserving
// aspect ratio. An empty board maps 1:1.
func fitTransform(elements []state.Element, pageW, pageH float32) (float32, ink.Point) {
	if len(elements) == 0 {
		return 1, ink.Pt(pageMargin, pageMargin)
	}
	min, max := elements[0].Bounds()
	for _, el := range elements[1:] {
		lo, hi := el.Bounds()
		if lo.X < min.X {
			min.X = lo.X
		}
		if lo.Y < min.Y {
			min.Y = lo.Y
		}
		if hi.X > max.X {
			max.X = hi.X
		}
		if hi.Y > max.Y {
			max.Y = hi.Y
		}
	}
	spanX, spanY := max.X-min.X, max.Y-min.Y
	scale := float32(1)
	if spanX > 0 && spanY > 0 {
		sx := (pageW - 2*pageMargin) / spanX
		sy := (pageH - 2*pageMargin) / spanY
		scale = sx
		if sy < sx {
			scale = sy
		}
		if scale > 1 {
			scale = 1
		}
	}
	offset := ink.Pt(pageMargin-min.X*scale, pageMargin-min.Y*scale)
	return scale, offset
}

func writeElement(p *gofpdf.Fpdf, el state.Element, scale float32, offset ink.Point) {
	switch e := el.(type) {
	case *state.StrokeElement:
		prims, err := ink.BuildGeometry(e.Stroke)
		if err != nil {
			log.Printf("[EXPORT] Skipping stroke %s: %v", e.ElementID(), err)
			return
		}
		for _, prim := range prims {
			writePrimitive(p, prim, scale, offset)
		}
	case *state.RectShape:
		p.SetFillColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		min := transform(e.Min, scale, offset)
		max := transform(e.Max, scale, offset)
		p.Rect(float64(min.X), float64(min.Y), float64(max.X-min.X), float64(max.Y-min.Y), "F")
	case *state.PolygonShape:
		p.SetFillColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		writeRing(p, e.Ring, scale, offset)
	case *state.ImageRef:
		p.SetDrawColor(120, 120, 120)
		p.SetLineWidth(1)
		min := transform(e.Min, scale, offset)
		max := transform(e.Max, scale, offset)
		p.Rect(float64(min.X), float64(min.Y), float64(max.X-min.X), float64(max.Y-min.Y), "D")
	}
}

func writePrimitive(p *gofpdf.Fpdf, prim ink.Primitive, scale float32, offset ink.Point) {
	switch g := prim.(type) {
	case ink.FillOutline:
		p.SetFillColor(int(g.Color.R), int(g.Color.G), int(g.Color.B))
		for _, el := range g.Outline.Elements() {
			switch e := el.(type) {
			case ink.MoveTo:
				q := transform(e.Point, scale, offset)
				p.MoveTo(float64(q.X), float64(q.Y))
			case ink.LineTo:
				q := transform(e.Point, scale, offset)
				p.LineTo(float64(q.X), float64(q.Y))
			case ink.QuadTo:
				c := transform(e.Control, scale, offset)
				q := transform(e.Point, scale, offset)
				p.CurveTo(float64(c.X), float64(c.Y), float64(q.X), float64(q.Y))
			case ink.ClosePath:
				p.ClosePath()
			}
		}
		p.DrawPath("F")
	case ink.StrokeLine:
		p.SetDrawColor(int(g.Color.R), int(g.Color.G), int(g.Color.B))
		p.SetLineWidth(float64(g.Width * scale))
		if len(g.Dash) > 0 {
			dash := make([]float64, len(g.Dash))
			for i, d := range g.Dash {
				dash[i] = float64(d * scale)
			}
			p.SetDashPattern(dash, 0)
		}
		if len(g.Points) > 1 {
			// One path for the whole polyline so the dash phase
			// carries across segments.
			q := transform(g.Points[0], scale, offset)
			p.MoveTo(float64(q.X), float64(q.Y))
			for _, pt := range g.Points[1:] {
				q = transform(pt, scale, offset)
				p.LineTo(float64(q.X), float64(q.Y))
			}
			p.DrawPath("D")
		}
		if len(g.Dash) > 0 {
			p.SetDashPattern([]float64{}, 0)
		}
	case ink.Dot:
		p.SetFillColor(int(g.Color.R), int(g.Color.G), int(g.Color.B))
		c := transform(g.Center, scale, offset)
		p.Circle(float64(c.X), float64(c.Y), float64(g.Diameter/2*scale), "F")
	}
}

func writeRing(p *gofpdf.Fpdf, ring []ink.Point, scale float32, offset ink.Point) {
	if len(ring) < 3 {
		return
	}
	q := transform(ring[0], scale, offset)
	p.MoveTo(float64(q.X), float64(q.Y))
	for _, pt := range ring[1:] {
		q = transform(pt, scale, offset)
		p.LineTo(float64(q.X), float64(q.Y))
	}
	p.ClosePath()
	p.DrawPath("F")
}

func transform(pt ink.Point, scale float32, offset ink.Point) ink.Point {
	return ink.Pt(pt.X*scale+offset.X, pt.Y*scale+offset.Y)
}
