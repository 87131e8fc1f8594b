package ink

import "github.com/chewxy/math32"

// Point is a 2D point or vector in document space.
type Point struct {
	X, Y float32
}

// Pt is a convenience constructor.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// MulScalar returns the point scaled by s.
func (p Point) MulScalar(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar z component).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction,
// or the zero vector if p has no length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Lerp interpolates linearly from p (t=0) to q (t=1).
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rot90 returns the vector rotated 90 degrees counter-clockwise.
// Applied to a unit tangent this yields the unit normal.
func (p Point) Rot90() Point {
	return Point{X: -p.Y, Y: p.X}
}

// IsFinite reports whether both coordinates are real numbers.
func (p Point) IsFinite() bool {
	return !math32.IsNaN(p.X) && !math32.IsInf(p.X, 0) &&
		!math32.IsNaN(p.Y) && !math32.IsInf(p.Y, 0)
}
