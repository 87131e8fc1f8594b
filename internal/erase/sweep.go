package erase

import (
	"sort"

	"github.com/chewxy/math32"

	"InkBoard/internal/ink"
)

// capArcSteps controls how finely a circular brush's end caps are
// approximated per swept slab.
const capArcSteps = 6

// Slabs converts an erase gesture's document-space path into one convex
// polygon per straightened segment. Their union is the eraser's swept region;
// subtracting them in sequence is equivalent to subtracting the union.
//
// Runs of samples that stay within a small deviation of a single chord are
// collapsed into that chord first: a straight drag at normal pointer cadence
// would otherwise emit stacks of slabs whose shared collinear rails are
// exactly the degenerate contacts the boolean subtraction refuses. Each
// slab's radius is then inflated by a tiny cycling amount so consecutive
// slabs never share exactly coincident boundary geometry.
func Slabs(path []ink.Point, width float32, shape ink.BrushShape) [][]ink.Point {
	if len(path) == 0 || width <= 0 {
		return nil
	}
	path = simplifySweep(path, width/16)
	var slabs [][]ink.Point
	add := func(ring []ink.Point) {
		if len(ring) >= 3 {
			slabs = append(slabs, ring)
		}
	}

	emitted := 0
	radius := func() float32 {
		r := width / 2 * (1 + 1e-4*float32(emitted%16+1))
		emitted++
		return r
	}

	if len(path) == 1 {
		add(brushPolygon(path[0], radius(), shape))
		return slabs
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a == b {
			continue
		}
		r := radius()
		if shape == ink.BrushSquare {
			add(sweptSquare(a, b, r))
		} else {
			add(capsule(a, b, r))
		}
	}
	if len(slabs) == 0 {
		// The pointer never moved; erase under the stationary brush.
		add(brushPolygon(path[0], radius(), shape))
	}
	return slabs
}

// SweepBounds returns the axis-aligned bounds of the swept region.
func SweepBounds(path []ink.Point, width float32) (min, max ink.Point) {
	if len(path) == 0 {
		return ink.Point{}, ink.Point{}
	}
	min, max = path[0], path[0]
	for _, p := range path[1:] {
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
	pad := width/2 + width*1e-3
	min.X -= pad
	min.Y -= pad
	max.X += pad
	max.Y += pad
	return min, max
}

// brushPolygon is the eraser's own footprint at a single point.
func brushPolygon(c ink.Point, r float32, shape ink.BrushShape) []ink.Point {
	if shape == ink.BrushSquare {
		return []ink.Point{
			ink.Pt(c.X-r, c.Y-r),
			ink.Pt(c.X+r, c.Y-r),
			ink.Pt(c.X+r, c.Y+r),
			ink.Pt(c.X-r, c.Y+r),
		}
	}
	ring := make([]ink.Point, 0, capArcSteps*2+4)
	steps := capArcSteps*2 + 4
	for k := 0; k < steps; k++ {
		phi := 2 * math32.Pi * float32(k) / float32(steps)
		ring = append(ring, c.Add(ink.Pt(math32.Cos(phi), math32.Sin(phi)).MulScalar(r)))
	}
	return ring
}

// capsule is the region swept by a circular brush along one segment: two
// rails offset by the radius, closed with arc-approximated end caps.
func capsule(a, b ink.Point, r float32) []ink.Point {
	d := b.Sub(a).Normalize()
	n := d.Rot90()

	ring := make([]ink.Point, 0, 2*(capArcSteps+1))
	// Cap around b, swinging from +n through +d to -n.
	for k := 0; k <= capArcSteps; k++ {
		phi := math32.Pi * float32(k) / float32(capArcSteps)
		u := n.MulScalar(math32.Cos(phi)).Add(d.MulScalar(math32.Sin(phi)))
		ring = append(ring, b.Add(u.MulScalar(r)))
	}
	// Cap around a, swinging from -n through -d back to +n.
	for k := 0; k <= capArcSteps; k++ {
		phi := math32.Pi * float32(k) / float32(capArcSteps)
		u := n.MulScalar(math32.Cos(phi)).Add(d.MulScalar(math32.Sin(phi)))
		ring = append(ring, a.Sub(u.MulScalar(r)))
	}
	return ring
}

// sweptSquare is the convex hull of the axis-aligned square brush placed at
// both segment endpoints.
func sweptSquare(a, b ink.Point, r float32) []ink.Point {
	corners := []ink.Point{
		ink.Pt(a.X-r, a.Y-r), ink.Pt(a.X+r, a.Y-r), ink.Pt(a.X+r, a.Y+r), ink.Pt(a.X-r, a.Y+r),
		ink.Pt(b.X-r, b.Y-r), ink.Pt(b.X+r, b.Y-r), ink.Pt(b.X+r, b.Y+r), ink.Pt(b.X-r, b.Y+r),
	}
	return convexHull(corners)
}

// convexHull is Andrew's monotone chain over a small fixed point set.
func convexHull(pts []ink.Point) []ink.Point {
	if len(pts) < 3 {
		return pts
	}
	sorted := append([]ink.Point{}, pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var hull []ink.Point
	// Lower chain, then upper chain.
	for _, p := range sorted {
		for len(hull) >= 2 && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// simplifySweep collapses each maximal run of samples that stays within tol
// of a single chord into that chord. Pointer cadence is far denser than the
// eraser needs; the collapsed path keeps the swept region within tol of the
// sampled one.
func simplifySweep(path []ink.Point, tol float32) []ink.Point {
	if len(path) < 3 || tol <= 0 {
		return path
	}
	out := []ink.Point{path[0]}
	anchor := 0
	for anchor < len(path)-1 {
		end := anchor + 1
		for next := end + 1; next < len(path); next++ {
			if maxChordDeviation(path[anchor:next+1]) > tol {
				break
			}
			end = next
		}
		out = append(out, path[end])
		anchor = end
	}
	return out
}

// maxChordDeviation is the largest distance from an interior sample to the
// chord between the run's endpoints.
func maxChordDeviation(run []ink.Point) float32 {
	a, b := run[0], run[len(run)-1]
	var worst float32
	for _, p := range run[1 : len(run)-1] {
		if d := pointSegmentDistance(p, a, b); d > worst {
			worst = d
		}
	}
	return worst
}
