package erase

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/ink"
)

func square(x0, y0, x1, y1 float32) []ink.Point {
	return []ink.Point{ink.Pt(x0, y0), ink.Pt(x1, y0), ink.Pt(x1, y1), ink.Pt(x0, y1)}
}

func absArea(ring []ink.Point) float32 {
	return math32.Abs(ringArea(ring))
}

func totalArea(rings [][]ink.Point) float32 {
	var sum float32
	for _, r := range rings {
		sum += absArea(r)
	}
	return sum
}

func TestSubtractDisjointLeavesSubject(t *testing.T) {
	subj := square(0, 0, 10, 10)
	clip := square(20, 20, 30, 30)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.False(t, changed)
	require.Len(t, out, 1)
	assert.InDelta(t, 100, absArea(out[0]), 1e-2)
}

func TestSubtractEdgeOverlapCutsArea(t *testing.T) {
	subj := square(0, 0, 10, 10)
	// Covers the right half with slack beyond every subject edge it crosses.
	clip := square(5, -1, 12, 11)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, out, 1)
	assert.InDelta(t, 50, absArea(out[0]), 0.1)

	// Nothing of the result may remain inside the clip.
	for _, p := range out[0] {
		assert.LessOrEqual(t, p.X, float32(5)+1e-3)
	}
}

func TestSubtractCornerBite(t *testing.T) {
	subj := square(0, 0, 10, 10)
	clip := square(7, 7, 13, 13)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, out, 1)
	assert.InDelta(t, 100-9, absArea(out[0]), 0.1)
}

func TestSubtractBisection(t *testing.T) {
	subj := square(0, 0, 100, 100)
	// A vertical band clean through the middle.
	clip := square(45, -5, 55, 105)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, out, 2, "a band through the middle must split the subject")
	assert.InDelta(t, 45*100, absArea(out[0]), 1)
	assert.InDelta(t, 45*100, absArea(out[1]), 1)
}

func TestSubtractInteriorClipKeyholes(t *testing.T) {
	subj := square(0, 0, 10, 10)
	clip := square(4, 4, 6, 6)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, out, 1, "the hole is carried by a keyhole bridge, not a second ring")
	assert.InDelta(t, 100-4, absArea(out[0]), 0.5)
}

func TestSubtractSwallowedSubject(t *testing.T) {
	subj := square(4, 4, 6, 6)
	clip := square(0, 0, 10, 10)

	out, changed, err := Subtract(subj, clip)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, out)
}

func TestSubtractCollinearContactFails(t *testing.T) {
	subj := square(0, 0, 10, 10)
	// Shares the whole right edge of the subject.
	clip := square(10, 0, 20, 10)

	_, _, err := Subtract(subj, clip)
	assert.ErrorIs(t, err, ErrBooleanFailed)
}

func TestSubtractRejectsDegenerateRings(t *testing.T) {
	_, _, err := Subtract([]ink.Point{ink.Pt(0, 0), ink.Pt(1, 1)}, square(0, 0, 5, 5))
	assert.Error(t, err)

	// Zero-area subject.
	_, _, err = Subtract([]ink.Point{ink.Pt(0, 0), ink.Pt(5, 0), ink.Pt(10, 0)}, square(0, 0, 5, 5))
	assert.Error(t, err)
}

func TestSubtractSequentialSlabsMatchUnion(t *testing.T) {
	subj := square(0, 0, 100, 100)
	// Two overlapping bands; applying them in sequence must keep carving.
	bandA := square(20, -5, 40, 105)
	bandB := square(35, -5, 60, 105)

	first, changed, err := Subtract(subj, bandA)
	require.NoError(t, err)
	require.True(t, changed)

	var final [][]ink.Point
	for _, ring := range first {
		out, _, err := Subtract(ring, bandB)
		require.NoError(t, err)
		final = append(final, out...)
	}

	// Remaining area: the left strip [0,20] and right strip [60,100].
	assert.InDelta(t, (20+40)*100, totalArea(final), 5)
	for _, ring := range final {
		for _, p := range ring {
			inBand := p.X > 20+1e-3 && p.X < 60-1e-3
			assert.False(t, inBand, "no remnant vertex may sit inside the erased bands")
		}
	}
}
