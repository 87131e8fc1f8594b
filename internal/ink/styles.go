package ink

import "image/color"

// solidBuilder fills the variable-width outline directly.
type solidBuilder struct{}

func (solidBuilder) build(s *Stroke) ([]Primitive, error) {
	widths := strokeWidths(s)
	if len(s.Points) == 1 {
		return []Primitive{dotFor(s, widths[0])}, nil
	}
	return []Primitive{ribbon(s.Points, widths, s.Color)}, nil
}

// dashedBuilder handles both the dashed and dotted styles; they differ only
// in the pattern derived from the pen width.
type dashedBuilder struct {
	dotted bool
}

func (b dashedBuilder) build(s *Stroke) ([]Primitive, error) {
	w := constantWidth(s.BaseWidth)
	if len(s.Points) == 1 {
		return []Primitive{dotFor(s, strokeWidths(s)[0])}, nil
	}
	pattern := dashPattern(b.dotted, w)

	if s.Pressures == nil {
		// No pressure data: a single stroked path with the dash pattern,
		// skipping outline construction entirely.
		return []Primitive{StrokeLine{
			Points: s.Points,
			Width:  w,
			Dash:   pattern,
			Color:  s.Color,
		}}, nil
	}

	// With pressure data the variable-width outline itself is stroked with
	// the dash pattern. This can look inconsistent under large pressure
	// swings; it matches the shipped behavior and is deliberately kept.
	fill := ribbon(s.Points, strokeWidths(s), s.Color)
	var prims []Primitive
	for _, boundary := range fill.Outline.Flatten() {
		prims = append(prims, StrokeLine{
			Points: boundary,
			Width:  1,
			Dash:   pattern,
			Color:  s.Color,
		})
	}
	if len(prims) == 0 {
		return nil, ErrDegenerate
	}
	return prims, nil
}

// doubleBuilder draws two parallel lines separated by the stroke's spacing.
type doubleBuilder struct{}

func (doubleBuilder) build(s *Stroke) ([]Primitive, error) {
	if len(s.Points) == 1 {
		return []Primitive{dotFor(s, strokeWidths(s)[0])}, nil
	}

	spacing := s.Spacing
	if spacing <= 0 {
		spacing = s.BaseWidth * 0.8
	}
	lineWidth := s.BaseWidth * 0.4

	tans := tangents(s.Points)
	lineA := make([]Point, len(s.Points))
	lineB := make([]Point, len(s.Points))
	for i, p := range s.Points {
		off := tans[i].Rot90().MulScalar(spacing / 2)
		lineA[i] = p.Add(off)
		lineB[i] = p.Sub(off)
	}

	if s.Pressures == nil {
		return []Primitive{
			StrokeLine{Points: lineA, Width: lineWidth, Color: s.Color},
			StrokeLine{Points: lineB, Width: lineWidth, Color: s.Color},
		}, nil
	}

	// Each offset center-line gets its own variable-width ribbon, scaled to
	// the sub-line width so the pair reads as one double stroke.
	sub := &Stroke{Points: lineA, Pressures: s.Pressures, BaseWidth: lineWidth}
	widthsA := strokeWidths(sub)
	sub.Points = lineB
	widthsB := strokeWidths(sub)
	return []Primitive{
		ribbon(lineA, widthsA, s.Color),
		ribbon(lineB, widthsB, s.Color),
	}, nil
}

// ribbon builds the filled variable-width outline primitive for a
// center-line of at least two points.
func ribbon(pts []Point, widths []float32, c color.NRGBA) FillOutline {
	left, right := rails(pts, widths)
	return FillOutline{
		Outline: outlinePath(left, right),
		Spine:   pts,
		Widths:  widths,
		Color:   c,
	}
}

func dotFor(s *Stroke, width float32) Dot {
	return Dot{Center: s.Points[0], Diameter: width, Color: s.Color}
}
