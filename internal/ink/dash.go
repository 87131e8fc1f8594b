package ink

// dashPattern derives the alternating draw/skip lengths for the dashed and
// dotted styles from the pen width.
func dashPattern(dotted bool, w float32) []float32 {
	if dotted {
		return []float32{w / 2, w * 2}
	}
	return []float32{w * 4, w * 2}
}

// SplitDashes cuts a polyline into the drawn spans of a dash pattern.
// The pattern alternates drawn and skipped lengths starting at offset into
// the cycle; an odd-length pattern repeats itself, as in SVG. Rendering
// adapters call this when their surface has no native dash support.
func SplitDashes(pts []Point, pattern []float32, offset float32) [][]Point {
	if len(pts) < 2 || len(pattern) == 0 {
		return nil
	}
	pattern = normalizeDashes(pattern)
	if pattern == nil {
		return [][]Point{pts}
	}

	idx, remain := dashStart(pattern, offset)
	drawing := idx%2 == 0

	var spans [][]Point
	var cur []Point
	if drawing {
		cur = []Point{pts[0]}
	}

	flush := func() {
		if len(cur) > 1 {
			spans = append(spans, cur)
		}
		cur = nil
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := a.Distance(b)
		pos := float32(0)
		for segLen-pos > remain {
			pos += remain
			cut := a.Lerp(b, pos/segLen)
			if drawing {
				cur = append(cur, cut)
				flush()
			} else {
				cur = []Point{cut}
			}
			drawing = !drawing
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}
		remain -= segLen - pos
		if drawing {
			cur = append(cur, b)
		}
	}
	flush()
	return spans
}

// normalizeDashes drops non-positive entries and duplicates odd patterns so
// draw/skip indices stay aligned. Returns nil for an all-zero pattern.
func normalizeDashes(pattern []float32) []float32 {
	any := false
	for _, d := range pattern {
		if d > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}
	out := make([]float32, 0, len(pattern)*2)
	for _, d := range pattern {
		if d < 0 {
			d = -d
		}
		out = append(out, d)
	}
	if len(out)%2 == 1 {
		out = append(out, out...)
	}
	return out
}

// dashStart walks the offset into the pattern cycle, returning the index and
// the remaining length of the entry the line starts inside.
func dashStart(pattern []float32, offset float32) (int, float32) {
	var total float32
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return 0, 0
	}
	for offset < 0 {
		offset += total
	}
	for offset >= total {
		offset -= total
	}
	i := 0
	for pattern[i] <= offset {
		offset -= pattern[i]
		i++
	}
	return i, pattern[i] - offset
}
