// Package erase implements the two erase modes: whole-stroke removal driven
// by proximity hit-testing, and precise boolean subtraction of the eraser's
// swept region from vector shapes.
package erase

import (
	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// Hits returns the candidates within radius of the eraser's current
// document-space position. All comparisons happen in document space; the
// screen-to-document transform must already have been applied.
func Hits(center ink.Point, radius float32, candidates []state.Element) []state.Element {
	var out []state.Element
	for _, el := range candidates {
		if HitElement(center, radius, el) {
			out = append(out, el)
		}
	}
	return out
}

// HitElement reports whether one element is within radius of the point.
func HitElement(center ink.Point, radius float32, el state.Element) bool {
	switch el := el.(type) {
	case *state.StrokeElement:
		return strokeHit(el.Stroke, center, radius)
	case state.PreciseErasable:
		return ringHit(el.Outline(), center, radius)
	default:
		min, max := el.Bounds()
		ring := []ink.Point{min, ink.Pt(max.X, min.Y), max, ink.Pt(min.X, max.Y)}
		return ringHit(ring, center, radius)
	}
}

// strokeHit tests a freehand stroke. A closed stroke is hit from inside as
// well as near its boundary; an open stroke only near its boundary.
func strokeHit(s *ink.Stroke, center ink.Point, radius float32) bool {
	if len(s.Points) == 0 {
		return false
	}
	if len(s.Points) == 1 {
		return center.Distance(s.Points[0]) <= radius
	}
	if s.Closed() && pointInRing(center, s.Points) {
		return true
	}
	return polylineDistance(s.Points, center) <= radius
}

// ringHit tests a filled shape given as a closed ring.
func ringHit(ring []ink.Point, center ink.Point, radius float32) bool {
	if len(ring) == 0 {
		return false
	}
	if pointInRing(center, ring) {
		return true
	}
	closed := ring
	if ring[0] != ring[len(ring)-1] {
		closed = append(append([]ink.Point{}, ring...), ring[0])
	}
	return polylineDistance(closed, center) <= radius
}

// polylineDistance is the minimum distance from a point to any segment of
// the polyline. Single-point inputs degrade to point distance.
func polylineDistance(pts []ink.Point, p ink.Point) float32 {
	if len(pts) == 1 {
		return p.Distance(pts[0])
	}
	best := p.Distance(pts[0])
	for i := 1; i < len(pts); i++ {
		if d := pointSegmentDistance(p, pts[i-1], pts[i]); d < best {
			best = d
		}
	}
	return best
}

// pointSegmentDistance projects p onto segment ab, clamps the projection to
// the segment and measures from there. Zero-length segments degrade to
// point distance.
func pointSegmentDistance(p, a, b ink.Point) float32 {
	ab := b.Sub(a)
	len2 := ab.Dot(ab)
	if len2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / len2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.MulScalar(t)))
}

// pointInRing is an even-odd ray cast against a closed ring. The closing
// edge from the last point back to the first is implied.
func pointInRing(p ink.Point, ring []ink.Point) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
