package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

func strokeElement(id string, pts ...ink.Point) *state.StrokeElement {
	return &state.StrokeElement{Stroke: &ink.Stroke{ID: id, Points: pts, BaseWidth: 2}}
}

func TestHitElementAtExactRadius(t *testing.T) {
	el := strokeElement("s", ink.Pt(0, 0), ink.Pt(10, 0))

	assert.True(t, HitElement(ink.Pt(5, 5), 5, el), "contact at exactly the radius counts")
	assert.False(t, HitElement(ink.Pt(5, 5.01), 5, el))
}

func TestHitElementSinglePointStroke(t *testing.T) {
	el := strokeElement("dot", ink.Pt(3, 3))

	assert.True(t, HitElement(ink.Pt(6, 7), 5, el))
	assert.False(t, HitElement(ink.Pt(9, 11), 5, el))
}

func TestHitElementClosedStrokeInterior(t *testing.T) {
	ring := strokeElement("ring",
		ink.Pt(0, 0), ink.Pt(100, 0), ink.Pt(100, 100), ink.Pt(0, 100), ink.Pt(0, 0))

	// Deep inside the loop, far from every boundary segment.
	assert.True(t, HitElement(ink.Pt(50, 50), 5, ring))
}

func TestHitElementOpenStrokeInteriorMisses(t *testing.T) {
	// Same shape but not closed: the middle of the C must not hit.
	c := strokeElement("c",
		ink.Pt(0, 0), ink.Pt(100, 0), ink.Pt(100, 100), ink.Pt(0, 100))

	assert.False(t, HitElement(ink.Pt(50, 50), 5, c))
}

func TestHitElementRectOutline(t *testing.T) {
	rect := &state.RectShape{ID: "r", Min: ink.Pt(10, 10), Max: ink.Pt(30, 30)}

	assert.True(t, HitElement(ink.Pt(20, 20), 1, rect), "inside the shape")
	assert.True(t, HitElement(ink.Pt(8, 20), 3, rect), "within radius of the boundary")
	assert.False(t, HitElement(ink.Pt(0, 0), 3, rect))
}

func TestHitsFiltersCandidates(t *testing.T) {
	near := strokeElement("near", ink.Pt(0, 0), ink.Pt(10, 0))
	far := strokeElement("far", ink.Pt(200, 200), ink.Pt(210, 200))

	hits := Hits(ink.Pt(5, 2), 5, []state.Element{near, far})
	assert.Len(t, hits, 1)
	assert.Equal(t, "near", hits[0].ElementID())
}

func TestPointSegmentDistance(t *testing.T) {
	// Projection inside the segment.
	assert.InDelta(t, 5, pointSegmentDistance(ink.Pt(5, 5), ink.Pt(0, 0), ink.Pt(10, 0)), 1e-4)
	// Projection clamped to an endpoint.
	assert.InDelta(t, 5, pointSegmentDistance(ink.Pt(-3, 4), ink.Pt(0, 0), ink.Pt(10, 0)), 1e-4)
	// Zero-length segment degenerates to point distance.
	assert.InDelta(t, 5, pointSegmentDistance(ink.Pt(3, 4), ink.Pt(0, 0), ink.Pt(0, 0)), 1e-4)
}

func TestPointInRing(t *testing.T) {
	square := []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(10, 10), ink.Pt(0, 10)}

	assert.True(t, pointInRing(ink.Pt(5, 5), square))
	assert.False(t, pointInRing(ink.Pt(15, 5), square))
	assert.False(t, pointInRing(ink.Pt(-1, -1), square))
}
