package erase

import (
	"errors"
	"log"
	"sync"

	"github.com/chewxy/math32"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

// ErrUnsupportedTarget marks shape kinds that cannot be boolean-subtracted
// (raster content and the like). They fall back to whole-shape deletion.
var ErrUnsupportedTarget = errors.New("erase: target does not support precise erase")

// Notice delivers the one per-gesture user-facing message about unsupported
// targets that were deleted whole instead of subtracted.
type Notice func(msg string)

// Engine runs the precise-erase boolean step. It executes once per completed
// gesture, not per sample, and serializes itself: a new erase gesture on the
// same board cannot start its boolean work before the previous one finished.
type Engine struct {
	mu sync.Mutex
}

func NewEngine() *Engine {
	return &Engine{}
}

// Result summarizes one precise erase pass for callers and tests.
type Result struct {
	Removed  int // elements deleted whole (strokes, unsupported kinds, swallowed shapes)
	Split    int // elements replaced by remnants
	Failed   int // elements left untouched after a boolean failure
	Fallback int // unsupported elements deleted whole
}

// Erase subtracts the eraser's swept path from the board's elements.
//
// Freehand strokes are always erased as whole units, even here; only other
// vector shape kinds undergo true subtraction. Shapes the sweep's bounding
// region does not reach are never touched. A failed boolean leaves its
// target unmodified and the gesture continues with the remaining shapes.
func (e *Engine) Erase(board *state.Board, sweepPath []ink.Point, width float32, shape ink.BrushShape, notify Notice) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	var res Result
	if len(sweepPath) == 0 || width <= 0 {
		return res
	}

	min, max := SweepBounds(sweepPath, width)
	candidates := board.ElementsNear(min, max)
	slabs := Slabs(sweepPath, width, shape)
	radius := width / 2

	var whole []state.Element
	noticed := false
	fallback := func(el state.Element) {
		whole = append(whole, el)
		res.Fallback++
		if !noticed && notify != nil {
			notify("Some content cannot be precisely erased and was removed whole.")
			noticed = true
		}
	}

	for _, el := range candidates {
		switch el := el.(type) {
		case *state.StrokeElement:
			if sweepTouchesStroke(sweepPath, radius, el.Stroke) {
				whole = append(whole, el)
				res.Removed++
			}
		case state.PreciseErasable:
			switch subtractElement(board, el, slabs) {
			case eraseSplit:
				res.Split++
			case eraseSwallowed:
				res.Removed++
			case eraseFailed:
				res.Failed++
			}
		default:
			if sweepTouchesElement(sweepPath, radius, el) {
				fallback(el)
			}
		}
	}

	if len(whole) > 0 {
		board.Remove(whole)
	}
	return res
}

type eraseOutcome int

const (
	eraseUntouched eraseOutcome = iota
	eraseSplit
	eraseSwallowed
	eraseFailed
)

// subtractElement carves all sweep slabs out of one shape. The board is only
// mutated after every slab succeeded; any failure abandons the whole shape.
func subtractElement(board *state.Board, el state.PreciseErasable, slabs [][]ink.Point) eraseOutcome {
	rings := [][]ink.Point{el.Outline()}
	touched := false
	for _, slab := range slabs {
		var next [][]ink.Point
		for _, ring := range rings {
			out, changed, err := Subtract(ring, slab)
			if err != nil {
				log.Printf("[ERASE] Boolean failed on %s, leaving it untouched: %v", el.ElementID(), err)
				return eraseFailed
			}
			touched = touched || changed
			next = append(next, out...)
		}
		rings = next
	}
	if !touched {
		return eraseUntouched
	}
	if len(rings) == 0 {
		board.Replace(el, nil)
		return eraseSwallowed
	}
	remnants := make([]state.Element, 0, len(rings))
	for _, ring := range rings {
		remnants = append(remnants, el.WithOutline(ring))
	}
	board.Replace(el, remnants)
	return eraseSplit
}

// sweepTouchesStroke reports whether the eraser path came within radius of a
// freehand stroke anywhere along the gesture.
func sweepTouchesStroke(sweepPath []ink.Point, radius float32, s *ink.Stroke) bool {
	if len(s.Points) == 0 {
		return false
	}
	if s.Closed() {
		for _, p := range sweepPath {
			if pointInRing(p, s.Points) {
				return true
			}
		}
	}
	return polylineGap(sweepPath, s.Points) <= radius
}

func sweepTouchesElement(sweepPath []ink.Point, radius float32, el state.Element) bool {
	for _, p := range sweepPath {
		if HitElement(p, radius, el) {
			return true
		}
	}
	if len(sweepPath) < 2 {
		return false
	}
	min, max := el.Bounds()
	ring := []ink.Point{min, ink.Pt(max.X, min.Y), max, ink.Pt(min.X, max.Y), min}
	return polylineGap(sweepPath, ring) <= radius
}

// polylineGap is the minimum distance between two polylines: zero when any
// segments cross, otherwise attained at one of the endpoints.
func polylineGap(a, b []ink.Point) float32 {
	if len(a) == 0 || len(b) == 0 {
		return math32.Inf(1)
	}
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if segmentsCross(a[i-1], a[i], b[j-1], b[j]) {
				return 0
			}
		}
	}
	best := math32.Inf(1)
	for _, p := range a {
		if d := polylineDistance(b, p); d < best {
			best = d
		}
	}
	for _, p := range b {
		if d := polylineDistance(a, p); d < best {
			best = d
		}
	}
	return best
}

func segmentsCross(a0, a1, b0, b1 ink.Point) bool {
	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.Cross(d2)
	if denom == 0 {
		return false
	}
	w := b0.Sub(a0)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
