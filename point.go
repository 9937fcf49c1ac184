package sketch

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the direction of the vector in radians, as atan2(y, x).
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// MaxPressure is the device pressure reported for maximum force.
const MaxPressure = 1024

// PenPoint is one sample of pen input: a position and the device pressure
// in [0, MaxPressure].
type PenPoint struct {
	Pos      Point
	Pressure uint32
}

// NewPenPoint returns a PenPoint with pressure clamped to MaxPressure.
func NewPenPoint(x, y float64, pressure uint32) PenPoint {
	return PenPoint{Pos: Pt(x, y), Pressure: min(pressure, MaxPressure)}
}

// PressureFactor returns the pressure normalized to [0, 1].
func (p PenPoint) PressureFactor() float64 {
	return float64(min(p.Pressure, MaxPressure)) / MaxPressure
}

// Equal reports whether p and q have identical position and pressure.
func (p PenPoint) Equal(q PenPoint) bool {
	return p.Pos == q.Pos && p.Pressure == q.Pressure
}
