package ink

// strokeWidths returns the rendered width at every stroke point. A stroke
// without pressure data is constant-width.
func strokeWidths(s *Stroke) []float32 {
	widths := make([]float32, len(s.Points))
	if s.Pressures == nil {
		w := constantWidth(s.BaseWidth)
		for i := range widths {
			widths[i] = w
		}
		return widths
	}
	for i := range widths {
		widths[i] = WidthFor(s.pressureAt(i), s.BaseWidth)
	}
	return widths
}

// tangents estimates a unit tangent per point: central difference in the
// interior, one-sided at the two ends. A zero-length segment reuses the
// previous valid tangent so degenerate samples never produce a zero normal.
func tangents(pts []Point) []Point {
	out := make([]Point, len(pts))
	last := Pt(1, 0)
	for i := range pts {
		var d Point
		switch {
		case len(pts) == 1:
			d = Point{}
		case i == 0:
			d = pts[1].Sub(pts[0])
		case i == len(pts)-1:
			d = pts[i].Sub(pts[i-1])
		default:
			d = pts[i+1].Sub(pts[i-1])
		}
		t := d.Normalize()
		if t == (Point{}) {
			t = last
		}
		out[i] = t
		last = t
	}
	return out
}

// rails offsets the center-line by plus and minus half the local width along
// the unit normal, producing the two boundary polylines of the outline.
func rails(pts []Point, widths []float32) (left, right []Point) {
	tans := tangents(pts)
	left = make([]Point, len(pts))
	right = make([]Point, len(pts))
	for i, p := range pts {
		n := tans[i].Rot90()
		h := widths[i] / 2
		left[i] = p.Add(n.MulScalar(h))
		right[i] = p.Sub(n.MulScalar(h))
	}
	return left, right
}

// outlinePath joins the left rail outward and the right rail back in
// reverse, closing the loop. Rail points are connected with
// quadratic-midpoint segments: each interior point becomes the control of a
// quad ending at the midpoint to its successor, which rounds the polyline
// without overshooting it.
func outlinePath(left, right []Point) Path {
	var p Path
	p.MoveTo(left[0])
	appendSmoothed(&p, left)
	p.LineTo(right[len(right)-1])
	appendSmoothedReverse(&p, right)
	p.Close()
	return p
}

func appendSmoothed(p *Path, pts []Point) {
	if len(pts) == 2 {
		p.LineTo(pts[1])
		return
	}
	for i := 1; i < len(pts)-1; i++ {
		mid := pts[i].Lerp(pts[i+1], 0.5)
		p.QuadTo(pts[i], mid)
	}
	p.LineTo(pts[len(pts)-1])
}

func appendSmoothedReverse(p *Path, pts []Point) {
	if len(pts) == 2 {
		p.LineTo(pts[0])
		return
	}
	for i := len(pts) - 2; i > 0; i-- {
		mid := pts[i].Lerp(pts[i-1], 0.5)
		p.QuadTo(pts[i], mid)
	}
	p.LineTo(pts[0])
}
