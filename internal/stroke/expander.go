// Package stroke expands polylines into filled outlines with round caps and
// round joins.
//
// A stroke becomes a single closed FILL path:
//   - the forward offset path runs along one side of the polyline
//   - a round cap turns around the last point
//   - the backward offset path is appended reversed
//   - a round cap turns around the first point and closes the path
//
// Joins are arcs on the outer side of each turn; the inner side is a
// straight line through the vertex. Arcs are cubic Béziers of at most a
// quarter turn each.
package stroke

import "math"

// Point is a position in the coordinate space of the polyline.
type Point struct {
	X, Y float64
}

// Add returns p offset by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Element is one command of an outline.
type Element interface {
	isElement()
}

// MoveTo starts a subpath.
type MoveTo struct{ Point Point }

// LineTo draws a straight edge.
type LineTo struct{ Point Point }

// CubicTo draws a cubic Bézier edge.
type CubicTo struct{ Control1, Control2, Point Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// Sink receives outline commands in float32 coordinates.
// golang.org/x/image/vector.Rasterizer satisfies it.
type Sink interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Emit sends outline to s, translated by (dx, dy).
func Emit(s Sink, outline []Element, dx, dy float64) {
	f := func(p Point) (float32, float32) { return float32(p.X + dx), float32(p.Y + dy) }
	for _, el := range outline {
		switch el := el.(type) {
		case MoveTo:
			s.MoveTo(f(el.Point))
		case LineTo:
			s.LineTo(f(el.Point))
		case CubicTo:
			bx, by := f(el.Control1)
			cx, cy := f(el.Control2)
			px, py := f(el.Point)
			s.CubeTo(bx, by, cx, cy, px, py)
		case Close:
			s.ClosePath()
		}
	}
}

// defaultTolerance is the distance, in pixels, below which a join is drawn
// as a straight connection instead of an arc.
const defaultTolerance = 0.25

// Expander converts polylines to outlines. An Expander reuses its buffers
// and is not safe for concurrent use.
type Expander struct {
	width     float64
	tolerance float64

	forward  builder
	backward builder
	output   builder

	startPt   Point
	startNorm Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2 // normal at lastPt, scaled to the radius

	joinThresh float64
}

// NewExpander returns an Expander for strokes of the given width.
func NewExpander(width float64) *Expander {
	return &Expander{width: width, tolerance: defaultTolerance}
}

// SetWidth changes the stroke width used by subsequent calls to Expand.
func (e *Expander) SetWidth(width float64) {
	if width > 0 {
		e.width = width
	}
}

// SetTolerance sets the join tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline of the stroke through pts. Repeated points are
// skipped; a polyline whose points all coincide becomes a disc. An empty
// polyline has no outline.
//
// The returned slice is reused by the next call to Expand.
func (e *Expander) Expand(pts []Point) []Element {
	e.reset()
	if len(pts) == 0 {
		return nil
	}

	e.startPt = pts[0]
	e.lastPt = pts[0]
	for _, p := range pts[1:] {
		if p == e.lastPt {
			continue
		}
		tangent := p.Sub(e.lastPt)
		e.join(tangent)
		e.lastTan = tangent
		e.line(tangent, p)
	}

	if e.forward.empty() {
		e.dot(pts[0])
	} else {
		e.finish()
	}
	return e.output.elements
}

func (e *Expander) reset() {
	e.forward.reset()
	e.backward.reset()
	e.output.reset()
	e.startPt = Point{}
	e.startNorm = Vec2{}
	e.lastPt = Point{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
	e.joinThresh = 2 * e.tolerance / e.width
}

func (e *Expander) normal(tangent Vec2) Vec2 {
	return tangent.Perp().Scale(0.5 * e.width / tangent.Length())
}

// join connects the segment starting at lastPt with direction tangent to
// the previous one.
func (e *Expander) join(tangent Vec2) {
	norm := e.normal(tangent)
	p0 := e.lastPt

	if e.forward.empty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startNorm = norm
		return
	}

	cross := e.lastTan.Cross(tangent)
	dot := e.lastTan.Dot(tangent)

	// Nearly straight: connect both sides so the outline stays continuous.
	if dot > 0 && math.Abs(cross) < math.Hypot(cross, dot)*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	lastNorm := e.normal(e.lastTan)
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(p0.Add(norm))
		e.arc(&e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.arc(&e.backward, p0, lastNorm, angle)
	}
}

func (e *Expander) line(tangent Vec2, p1 Point) {
	norm := e.normal(tangent)
	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish joins the two sides with round caps and closes the outline.
func (e *Expander) finish() {
	e.output.append(&e.forward)
	e.arc(&e.output, e.lastPt, e.lastNorm.Neg(), math.Pi)
	e.appendReversed(&e.backward)
	e.arc(&e.output, e.startPt, e.startNorm, math.Pi)
	e.output.close()
}

func (e *Expander) dot(c Point) {
	r := Vec2{X: 0.5 * e.width}
	e.output.moveTo(c.Add(r))
	e.arc(&e.output, c, r, 2*math.Pi)
	e.output.close()
}

// arc appends the arc around center that starts at center+norm and sweeps
// angle radians. The builder's current point must be center+norm.
func (e *Expander) arc(out *builder, center Point, norm Vec2, angle float64) {
	n := max(1, int(math.Ceil(math.Abs(angle)/(math.Pi/2))))
	step := angle / float64(n)
	a := norm.Angle()
	r := norm.Length()
	for i := 0; i < n; i++ {
		arcSegment(out, center, r, a, a+step)
		a += step
	}
}

// arcSegment appends a cubic approximating the arc from a0 to a1, which
// must be at most a quarter turn apart.
func arcSegment(out *builder, center Point, r, a0, a1 float64) {
	da := a1 - a0
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := Point{X: center.X + r*cos0, Y: center.Y + r*sin0}
	p2 := Point{X: center.X + r*cos1, Y: center.Y + r*sin1}
	c1 := Point{X: p1.X - alpha*r*sin0, Y: p1.Y + alpha*r*cos0}
	c2 := Point{X: p2.X + alpha*r*sin1, Y: p2.Y - alpha*r*cos1}

	out.cubicTo(c1, c2, p2)
}

// appendReversed appends b to the output walking backwards. The output's
// current point must already be the end of b.
func (e *Expander) appendReversed(b *builder) {
	els := b.elements
	for i := len(els) - 1; i >= 1; i-- {
		prev := endPoint(els[i-1])
		switch el := els[i].(type) {
		case LineTo:
			e.output.lineTo(prev)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, prev)
		}
	}
}

func endPoint(el Element) Point {
	switch el := el.(type) {
	case MoveTo:
		return el.Point
	case LineTo:
		return el.Point
	case CubicTo:
		return el.Point
	}
	return Point{}
}

type builder struct {
	elements []Element
}

func (b *builder) reset()      { b.elements = b.elements[:0] }
func (b *builder) empty() bool { return len(b.elements) == 0 }

func (b *builder) moveTo(p Point) { b.elements = append(b.elements, MoveTo{Point: p}) }
func (b *builder) lineTo(p Point) { b.elements = append(b.elements, LineTo{Point: p}) }
func (b *builder) close()         { b.elements = append(b.elements, Close{}) }

func (b *builder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (b *builder) append(other *builder) {
	b.elements = append(b.elements, other.elements...)
}
