package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

func newTestBoard(els ...state.Element) *state.Board {
	b := state.NewBoard()
	for _, el := range els {
		b.Insert(el)
	}
	return b
}

func TestEraseBisectsRectangle(t *testing.T) {
	rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(100, 100)}
	board := newTestBoard(rect)

	// Vertical swipe through the middle, overshooting both edges.
	sweep := []ink.Point{ink.Pt(50, -30), ink.Pt(50, 130)}
	res := NewEngine().Erase(board, sweep, 20, ink.BrushCircle, nil)

	assert.Equal(t, 1, res.Split)
	assert.Equal(t, 0, res.Failed)

	remnants := board.Elements()
	require.Len(t, remnants, 2, "the rectangle must split into two halves")
	for _, el := range remnants {
		poly, ok := el.(*state.PolygonShape)
		require.True(t, ok)
		assert.NotEqual(t, "r", poly.ID)

		// Each remnant stays on its own side of the erased band.
		min, max := poly.Bounds()
		onLeft := max.X < 50
		onRight := min.X > 50
		assert.True(t, onLeft || onRight)
	}
}

func TestEraseStrokeWholeEvenInPreciseMode(t *testing.T) {
	stroke := strokeElement("s", ink.Pt(0, 50), ink.Pt(100, 50))
	board := newTestBoard(stroke)

	sweep := []ink.Point{ink.Pt(50, 0), ink.Pt(50, 100)}
	res := NewEngine().Erase(board, sweep, 20, ink.BrushCircle, nil)

	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 0, res.Split)
	assert.Zero(t, board.Len(), "strokes are never subtracted, only removed whole")
}

func TestEraseMissesDisjointElements(t *testing.T) {
	rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(10, 10)}
	stroke := strokeElement("s", ink.Pt(0, 200), ink.Pt(10, 200))
	board := newTestBoard(rect, stroke)

	sweep := []ink.Point{ink.Pt(100, 100), ink.Pt(110, 100)}
	res := NewEngine().Erase(board, sweep, 20, ink.BrushCircle, nil)

	assert.Equal(t, Result{}, res)
	assert.Equal(t, 2, board.Len())
}

func TestEraseTouchingSweepLeavesUncutShapeIntact(t *testing.T) {
	// The sweep's bounds overlap the rectangle but the swept region itself
	// never reaches it, so the boolean reports no change.
	rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(10, 10)}
	board := newTestBoard(rect)

	sweep := []ink.Point{ink.Pt(14, 14), ink.Pt(18, 2)}
	res := NewEngine().Erase(board, sweep, 10, ink.BrushCircle, nil)

	assert.Equal(t, Result{}, res)
	require.Equal(t, 1, board.Len())
	assert.Equal(t, "r", board.Elements()[0].ElementID())
}

func TestEraseUnsupportedTargetFallsBack(t *testing.T) {
	img := &state.ImageRef{ID: "img", Min: ink.Pt(0, 0), Max: ink.Pt(50, 50), Name: "photo"}
	board := newTestBoard(img)

	var notices []string
	notify := func(msg string) { notices = append(notices, msg) }

	sweep := []ink.Point{ink.Pt(25, 25), ink.Pt(30, 25)}
	res := NewEngine().Erase(board, sweep, 20, ink.BrushCircle, notify)

	assert.Equal(t, 1, res.Fallback)
	assert.Zero(t, board.Len())
	assert.Len(t, notices, 1, "exactly one notice per gesture")
}

func TestEraseNoticeOncePerGesture(t *testing.T) {
	imgA := &state.ImageRef{ID: "a", Min: ink.Pt(0, 0), Max: ink.Pt(20, 20)}
	imgB := &state.ImageRef{ID: "b", Min: ink.Pt(30, 0), Max: ink.Pt(50, 20)}
	board := newTestBoard(imgA, imgB)

	var notices []string
	notify := func(msg string) { notices = append(notices, msg) }

	sweep := []ink.Point{ink.Pt(0, 10), ink.Pt(50, 10)}
	res := NewEngine().Erase(board, sweep, 10, ink.BrushCircle, notify)

	assert.Equal(t, 2, res.Fallback)
	assert.Len(t, notices, 1)
}

func TestEraseSwallowsFullyCoveredShape(t *testing.T) {
	rect := &state.RectShape{ID: "r", Min: ink.Pt(45, 45), Max: ink.Pt(55, 55)}
	board := newTestBoard(rect)

	sweep := []ink.Point{ink.Pt(20, 50), ink.Pt(80, 50)}
	res := NewEngine().Erase(board, sweep, 60, ink.BrushCircle, nil)

	assert.Equal(t, 1, res.Removed)
	assert.Zero(t, board.Len())
}

func TestEraseEmptySweepIsNoOp(t *testing.T) {
	rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(10, 10)}
	board := newTestBoard(rect)

	res := NewEngine().Erase(board, nil, 20, ink.BrushCircle, nil)
	assert.Equal(t, Result{}, res)
	assert.Equal(t, 1, board.Len())
}

func TestSweepTouchesStrokeClosedInterior(t *testing.T) {
	loop := &ink.Stroke{Points: []ink.Point{
		ink.Pt(0, 0), ink.Pt(100, 0), ink.Pt(100, 100), ink.Pt(0, 100), ink.Pt(0, 0),
	}}

	// Sweep entirely inside the loop, far from its boundary.
	inside := []ink.Point{ink.Pt(50, 50), ink.Pt(52, 50)}
	assert.True(t, sweepTouchesStroke(inside, 5, loop))

	outside := []ink.Point{ink.Pt(150, 50), ink.Pt(152, 50)}
	assert.False(t, sweepTouchesStroke(outside, 5, loop))
}

func TestEraseDenseStraightSweepBisects(t *testing.T) {
	// Real pointer cadence delivers samples every few units; a straight drag
	// must still carve one clean band, not fail on slab-against-remnant
	// contacts.
	cases := []struct {
		name  string
		step  float32
		width float32
	}{
		{"step2 width10", 2, 10},
		{"step3 width20", 3, 20},
		{"step5 width30", 5, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(100, 100)}
			board := newTestBoard(rect)

			var sweep []ink.Point
			for y := float32(-30); y <= 130; y += tc.step {
				sweep = append(sweep, ink.Pt(50, y))
			}
			res := NewEngine().Erase(board, sweep, tc.width, ink.BrushCircle, nil)

			assert.Equal(t, 1, res.Split)
			assert.Equal(t, 0, res.Failed)
			assert.Equal(t, 2, board.Len(), "the rectangle must split into two halves")
		})
	}
}

func TestEraseDenseJitteredSweepBisects(t *testing.T) {
	// Hand wobble well inside the straightening tolerance collapses to a
	// single chord just like an exactly straight drag.
	rect := &state.RectShape{ID: "r", Min: ink.Pt(0, 0), Max: ink.Pt(100, 100)}
	board := newTestBoard(rect)

	var sweep []ink.Point
	wob := float32(0.2)
	for y := float32(-30); y <= 130; y += 2 {
		sweep = append(sweep, ink.Pt(50+wob, y))
		wob = -wob
	}
	res := NewEngine().Erase(board, sweep, 10, ink.BrushCircle, nil)

	assert.Equal(t, 1, res.Split)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 2, board.Len())
}

func TestSlabsMergeStraightRuns(t *testing.T) {
	var path []ink.Point
	for i := 0; i <= 50; i++ {
		path = append(path, ink.Pt(float32(i)*3, 0))
	}
	slabs := Slabs(path, 20, ink.BrushCircle)
	require.Len(t, slabs, 1, "collinear samples collapse into one slab")
	assert.True(t, pointInRing(ink.Pt(75, 0), slabs[0]))
	assert.True(t, pointInRing(ink.Pt(75, 9), slabs[0]))
	assert.False(t, pointInRing(ink.Pt(75, 11), slabs[0]))
}

func TestSlabsRadiusInflationBounded(t *testing.T) {
	// A long zigzag wiggles far beyond the straightening tolerance, so every
	// segment emits its own slab. The anti-degeneracy inflation must not
	// accumulate across them.
	var path []ink.Point
	for i := 0; i < 300; i++ {
		y := float32(0)
		if i%2 == 1 {
			y = 8
		}
		path = append(path, ink.Pt(float32(i)*10, y))
	}
	slabs := Slabs(path, 20, ink.BrushCircle)
	require.Len(t, slabs, 299)
	for _, slab := range slabs {
		for _, v := range slab {
			assert.LessOrEqual(t, polylineDistance(path, v), float32(10*1.01))
		}
	}
}

func TestSlabsCoverPath(t *testing.T) {
	path := []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(10, 10)}
	slabs := Slabs(path, 8, ink.BrushCircle)
	require.Len(t, slabs, 2, "one slab per moving segment")

	for _, slab := range slabs {
		assert.GreaterOrEqual(t, len(slab), 3)
	}
	// The path's own points must fall inside their slabs.
	assert.True(t, pointInRing(ink.Pt(5, 0), slabs[0]))
	assert.True(t, pointInRing(ink.Pt(10, 5), slabs[1]))
}

func TestSlabsStationaryGestureUsesBrushFootprint(t *testing.T) {
	slabs := Slabs([]ink.Point{ink.Pt(5, 5), ink.Pt(5, 5)}, 10, ink.BrushSquare)
	require.Len(t, slabs, 1)
	assert.True(t, pointInRing(ink.Pt(5, 5), slabs[0]))
	assert.False(t, pointInRing(ink.Pt(12, 5), slabs[0]))
}

func TestSweepBoundsPadded(t *testing.T) {
	min, max := SweepBounds([]ink.Point{ink.Pt(0, 0), ink.Pt(10, 0)}, 20)
	assert.Less(t, min.X, float32(-9.9))
	assert.Greater(t, max.X, float32(19.9))
	assert.Less(t, min.Y, float32(-9.9))
	assert.Greater(t, max.Y, float32(9.9))
}
