package ink

// Smoother reduces pointer jitter with an exponential moving average.
// It is transient per-gesture state: create one at pointer-down (or call
// Reset) and discard it when the gesture ends.
type Smoother struct {
	// Factor is the EMA smoothing factor in [0,1). 0 disables smoothing,
	// values near 1 trail the pointer heavily.
	Factor float32

	prev   Point
	seeded bool
}

// NewSmoother returns a Smoother with the given EMA factor, clamped to [0,1).
func NewSmoother(factor float32) *Smoother {
	if factor < 0 {
		factor = 0
	}
	if factor >= 1 {
		factor = 0.999
	}
	return &Smoother{Factor: factor}
}

// Process feeds one raw pointer sample through the filter.
//
// The first sample after a Reset is returned unchanged so the stroke is
// anchored exactly where the pointer went down. Non-finite samples are
// dropped (ok == false) and do not disturb the filter state; the gesture
// continues with the next sample.
func (s *Smoother) Process(raw Point) (Point, bool) {
	if !raw.IsFinite() {
		return Point{}, false
	}
	if !s.seeded {
		s.prev = raw
		s.seeded = true
		return raw, true
	}
	out := s.prev.MulScalar(s.Factor).Add(raw.MulScalar(1 - s.Factor))
	s.prev = out
	return out, true
}

// Reset clears all state between strokes.
func (s *Smoother) Reset() {
	s.prev = Point{}
	s.seeded = false
}
