package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianSmoothEndpointsPinned(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 8), Pt(20, -3), Pt(30, 12), Pt(40, 1)}
	out := GaussianSmooth(pts, 1.2)

	assert.Len(t, out, len(pts))
	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[len(pts)-1], out[len(out)-1])
}

func TestGaussianSmoothReducesZigzag(t *testing.T) {
	var pts []Point
	for i := 0; i < 11; i++ {
		y := float32(0)
		if i%2 == 1 {
			y = 10
		}
		pts = append(pts, Pt(float32(i*5), y))
	}

	out := GaussianSmooth(pts, 1.2)

	// Interior points pull toward the midline of the zigzag.
	for i := 2; i < len(out)-2; i++ {
		rawDev := absf(pts[i].Y - 5)
		smoothDev := absf(out[i].Y - 5)
		assert.Less(t, smoothDev, rawDev, "point %d should flatten", i)
	}
}

func TestGaussianSmoothShortInputPassesThrough(t *testing.T) {
	single := []Point{Pt(3, 4)}
	assert.Equal(t, single, GaussianSmooth(single, 1.2))

	pair := []Point{Pt(0, 0), Pt(5, 5)}
	assert.Equal(t, pair, GaussianSmooth(pair, 1.2))
}

func TestGaussianSmoothZeroSigmaPassesThrough(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 7), Pt(2, 0)}
	assert.Equal(t, pts, GaussianSmooth(pts, 0))
}

func TestReflectIndex(t *testing.T) {
	assert.Equal(t, 1, reflectIndex(-1, 5))
	assert.Equal(t, 2, reflectIndex(-2, 5))
	assert.Equal(t, 3, reflectIndex(5, 5))
	assert.Equal(t, 2, reflectIndex(6, 5))
	assert.Equal(t, 0, reflectIndex(0, 1))
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
