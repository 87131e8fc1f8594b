package ink

import "github.com/chewxy/math32"

// GaussianSmooth applies one Gaussian smoothing pass to a finalized point
// sequence. It runs once, on pointer-up, before a stroke is committed.
//
// The first and last points are returned exactly as given so the stroke
// stays pinned to where the gesture started and ended. Near either end the
// kernel window reads mirror-reflected indices instead of running out of
// bounds, which piles the reflected weight onto the edge samples. Inputs
// shorter than 2 points pass through unchanged.
func GaussianSmooth(pts []Point, sigma float32) []Point {
	if len(pts) < 2 || sigma <= 0 {
		return pts
	}

	radius := int(math32.Ceil(2.5 * sigma))
	if radius < 1 {
		radius = 1
	}

	// Precompute the symmetric kernel once per pass.
	kernel := make([]float32, radius+1)
	for k := 0; k <= radius; k++ {
		kernel[k] = math32.Exp(-float32(k*k) / (2 * sigma * sigma))
	}

	out := make([]Point, len(pts))
	out[0] = pts[0]
	out[len(pts)-1] = pts[len(pts)-1]

	for i := 1; i < len(pts)-1; i++ {
		var sum Point
		var total float32
		for k := -radius; k <= radius; k++ {
			j := reflectIndex(i+k, len(pts))
			w := kernel[abs(k)]
			sum = sum.Add(pts[j].MulScalar(w))
			total += w
		}
		out[i] = sum.MulScalar(1 / total)
	}
	return out
}

// reflectIndex mirrors an out-of-range index around the nearest edge point,
// so -1 maps to 1 and n maps to n-2.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
