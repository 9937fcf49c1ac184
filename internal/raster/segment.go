// Package raster composites anti-aliased strokes into RGBA buffers.
//
// Outlines come from the stroke package. Coverage is computed by
// golang.org/x/image/vector on a rasterizer sized to the stroke's clipped
// bounding box, so the cost of a stroke is proportional to the area it
// touches rather than to the surface size.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/internal/stroke"
)

// marginExtra is added to half the stroke width when a segment's bounds are
// computed. It covers anti-aliasing spread and rounding.
const marginExtra = 2

// Segment is a round-capped line segment in buffer coordinates.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
}

// Margin returns the distance the endpoint bounding box is grown by:
// ceil(width/2) + 2.
func Margin(width float64) int {
	return int(math.Ceil(width/2)) + marginExtra
}

// Bounds returns the bounding box of the two endpoints expanded by
// Margin(Width) on each side.
func (s Segment) Bounds() image.Rectangle {
	return PolylineBounds([]stroke.Point{{X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}}, s.Width)
}

// PolylineBounds returns the bounding box of pts expanded by Margin(width)
// on each side. It is empty for no points.
func PolylineBounds(pts []stroke.Point, width float64) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	m := Margin(width)
	return image.Rect(
		int(math.Floor(lo.X))-m,
		int(math.Floor(lo.Y))-m,
		int(math.Ceil(hi.X))+m,
		int(math.Ceil(hi.Y))+m,
	)
}

// PointRect returns the single-pixel rectangle containing (x, y).
func PointRect(x, y float64) image.Rectangle {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	return image.Rect(px, py, px+1, py+1)
}

// Painter draws strokes. The zero value is ready to use. A Painter reuses
// its coverage and outline buffers between calls and is not safe for
// concurrent use.
type Painter struct {
	z  vector.Rasterizer
	ex *stroke.Expander
}

// Stroke composites s onto dst using src and op. With xdraw.Over the color
// is blended over existing content. With xdraw.Src the destination under
// the segment is replaced, which is how a transparent src erases.
//
// Stroke returns the part of dst that was touched; it is empty when the
// segment lies entirely outside dst.
func (p *Painter) Stroke(dst *image.RGBA, s Segment, src color.Color, op xdraw.Op) image.Rectangle {
	pts := [2]stroke.Point{{X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}}
	return p.Polyline(dst, pts[:], s.Width, src, op)
}

// Polyline composites the stroke through pts, with round caps and round
// joins, onto dst. It returns the touched part of dst like Stroke.
func (p *Painter) Polyline(dst *image.RGBA, pts []stroke.Point, width float64, src color.Color, op xdraw.Op) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	area := PolylineBounds(pts, width).Intersect(dst.Bounds())
	if area.Empty() {
		return image.Rectangle{}
	}

	if p.ex == nil {
		p.ex = stroke.NewExpander(width)
	} else {
		p.ex.SetWidth(width)
	}
	outline := p.ex.Expand(pts)

	p.z.Reset(area.Dx(), area.Dy())
	p.z.DrawOp = op
	stroke.Emit(&p.z, outline, -float64(area.Min.X), -float64(area.Min.Y))
	p.z.Draw(dst, area, image.NewUniform(src), image.Point{})
	return area
}
