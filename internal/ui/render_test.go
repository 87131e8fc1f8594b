package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/ink"
	"InkBoard/internal/state"
)

func TestRenderPrimitivesWidthModulatedSegments(t *testing.T) {
	vp := state.NewViewport()
	fill := ink.FillOutline{
		Spine:  []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 0)},
		Widths: []float32{2, 4, 6},
		Color:  color.NRGBA{A: 255},
	}

	objects := renderPrimitives([]ink.Primitive{fill}, vp, false)
	require.Len(t, objects, 2, "one line per spine segment")

	first := objects[0].(*canvas.Line)
	second := objects[1].(*canvas.Line)
	assert.Equal(t, float32(3), first.StrokeWidth, "segment width is the mean of its endpoints")
	assert.Equal(t, float32(5), second.StrokeWidth)
}

func TestRenderPrimitivesAppliesZoom(t *testing.T) {
	vp := state.NewViewport()
	vp.ZoomBy(2)

	line := ink.StrokeLine{
		Points: []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0)},
		Width:  3,
		Color:  color.NRGBA{A: 255},
	}
	objects := renderPrimitives([]ink.Primitive{line}, vp, false)
	require.Len(t, objects, 1)
	seg := objects[0].(*canvas.Line)
	assert.Equal(t, float32(6), seg.StrokeWidth)
	assert.Equal(t, float32(20), seg.Position2.X)
}

func TestRenderPrimitivesDashedProducesGaps(t *testing.T) {
	vp := state.NewViewport()
	line := ink.StrokeLine{
		Points: []ink.Point{ink.Pt(0, 0), ink.Pt(30, 0)},
		Width:  2,
		Dash:   []float32{5, 5},
		Color:  color.NRGBA{A: 255},
	}
	objects := renderPrimitives([]ink.Primitive{line}, vp, false)
	assert.Len(t, objects, 3, "30 units of a 10-unit cycle draw three dashes")
}

func TestRenderPrimitivesFadesMarkedElements(t *testing.T) {
	vp := state.NewViewport()
	dot := ink.Dot{Center: ink.Pt(5, 5), Diameter: 4, Color: color.NRGBA{A: 255}}

	solid := renderPrimitives([]ink.Primitive{dot}, vp, false)[0].(*canvas.Circle)
	faded := renderPrimitives([]ink.Primitive{dot}, vp, true)[0].(*canvas.Circle)

	assert.Less(t, faded.FillColor.(color.NRGBA).A, solid.FillColor.(color.NRGBA).A)
}

func TestRingRowSpansInsideSquare(t *testing.T) {
	square := []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(10, 10), ink.Pt(0, 10)}

	spans := ringRowSpans(square, 5)
	require.Len(t, spans, 1)
	assert.InDelta(t, 0, spans[0][0], 1e-4)
	assert.InDelta(t, 10, spans[0][1], 1e-4)

	assert.Empty(t, ringRowSpans(square, 15), "rows outside the polygon have no spans")
}
