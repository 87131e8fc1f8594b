package ink

// PathElement is a single drawing command in a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve through Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// ClosePath closes the current subpath back to its starting point.
type ClosePath struct{}

func (ClosePath) isPathElement() {}

// Path is an ordered sequence of drawing commands in document space.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo appends a straight segment.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadTo appends a quadratic Bezier segment.
func (p *Path) QuadTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, ClosePath{})
	p.current = p.start
}

// Elements returns the path's commands in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path draws nothing.
func (p *Path) Empty() bool {
	for _, e := range p.elements {
		switch e.(type) {
		case LineTo, QuadTo:
			return false
		}
	}
	return true
}

// quadFlattenSteps subdivides every quadratic segment into this many lines
// when flattening. Outline quads span a single input segment each, so a
// small fixed count keeps flattening cheap and well within a pixel of error.
const quadFlattenSteps = 8

// Flatten converts the path into one polyline per subpath, subdividing
// quadratic segments. Closed subpaths repeat their first point at the end.
func (p *Path) Flatten() [][]Point {
	var all [][]Point
	var cur []Point
	var start Point
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			if len(cur) > 1 {
				all = append(all, cur)
			}
			start = e.Point
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) == 0 {
				cur = []Point{start}
			}
			p0 := cur[len(cur)-1]
			for s := 1; s <= quadFlattenSteps; s++ {
				t := float32(s) / quadFlattenSteps
				a := p0.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				cur = append(cur, a.Lerp(b, t))
			}
		case ClosePath:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
		}
	}
	if len(cur) > 1 {
		all = append(all, cur)
	}
	return all
}

// Bounds returns the axis-aligned bounding box of the path's anchor and
// control points. Control points over-estimate curve extents slightly,
// which is fine for the overlap queries this feeds.
func (p *Path) Bounds() (min, max Point) {
	first := true
	grow := func(pt Point) {
		if first {
			min, max = pt, pt
			first = false
			return
		}
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		}
	}
	return min, max
}
