package sketch

import (
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/internal/stroke"
)

// VectorLayer keeps strokes as point lists and rasterizes them only when
// drawn. Every segment is black, with a width of pressure*15/1024 + 1
// pixels taken from its first point. Consecutive segments of equal width
// are stroked as one polyline with round joins. The mode, width and color
// passed to AddPoint are recorded but do not affect rendering.
type VectorLayer struct {
	id            uuid.UUID
	name          string
	width, height int
	log           strokeLog

	cache   *image.RGBA
	stale   bool
	painter raster.Painter
	run     []stroke.Point
}

// NewVectorLayer creates an empty vector layer with the given extent.
func NewVectorLayer(width, height int, name string) (*VectorLayer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sketch: vector layer %q: %w", name, ErrInvalidDimensions)
	}
	if int64(width)*int64(height) > MaxSurfacePixels {
		return nil, fmt.Errorf("sketch: vector layer %q: %w", name, ErrSurfaceTooLarge)
	}
	return &VectorLayer{id: uuid.New(), name: name, width: width, height: height}, nil
}

// LegacyWidth returns the width of a vector segment starting at p.
func LegacyWidth(p PenPoint) int {
	return int(min(p.Pressure, MaxPressure))*15/MaxPressure + 1
}

func (*VectorLayer) layer() {}

func (l *VectorLayer) ID() uuid.UUID             { return l.id }
func (l *VectorLayer) Name() string              { return l.name }
func (l *VectorLayer) SetName(name string)       { l.name = name }
func (l *VectorLayer) Kind() LayerKind           { return KindVector }
func (l *VectorLayer) Size() (width, height int) { return l.width, l.height }

// AddPoint appends p to the open stroke. Without an open stroke, or when p
// repeats the previous point, it does nothing and returns an empty
// rectangle. Otherwise it returns the area the new segment covers.
func (l *VectorLayer) AddPoint(p PenPoint, _ DrawMode, maxWidth float64, c color.Color) image.Rectangle {
	s := l.log.open()
	if s == nil {
		return image.Rectangle{}
	}
	n := len(s.Points)
	if !s.add(p, ModePen, maxWidth, c) {
		return image.Rectangle{}
	}
	l.stale = true
	if n == 0 {
		return raster.PointRect(p.Pos.X, p.Pos.Y)
	}
	return l.segment(s.Points[n-1], p).Bounds()
}

func (l *VectorLayer) Clear() {
	l.log.reset()
	l.stale = true
}

func (l *VectorLayer) StartNewStroke() { l.log.begin() }

func (l *VectorLayer) EndStroke() { l.log.end() }

func (l *VectorLayer) Strokes() []Stroke { return l.log.snapshot() }

// Draw rasterizes all strokes, reusing the previous rasterization when no
// point has been added since, and composites the result onto dst.
func (l *VectorLayer) Draw(dst xdraw.Image, opacity float64) {
	blend.DrawOpacity(dst, l.raster(), opacity)
}

func (l *VectorLayer) AverageColor() color.NRGBA {
	c, _ := blend.AverageColor(l.raster())
	return c
}

func (l *VectorLayer) segment(a, b PenPoint) raster.Segment {
	return raster.Segment{
		X0: a.Pos.X, Y0: a.Pos.Y,
		X1: b.Pos.X, Y1: b.Pos.Y,
		Width: float64(LegacyWidth(a)),
	}
}

func (l *VectorLayer) raster() *image.RGBA {
	if l.cache == nil {
		l.cache = image.NewRGBA(image.Rect(0, 0, l.width, l.height))
		l.stale = true
	}
	if !l.stale {
		return l.cache
	}
	clear(l.cache.Pix)
	for _, s := range l.log.strokes {
		l.drawStroke(s.Points)
	}
	l.stale = false
	return l.cache
}

// drawStroke draws pts as polylines, one per run of segments that share a
// width. A single point draws nothing.
func (l *VectorLayer) drawStroke(pts []PenPoint) {
	for i := 0; i+1 < len(pts); {
		w := LegacyWidth(pts[i])
		j := i + 1
		for j+1 < len(pts) && LegacyWidth(pts[j]) == w {
			j++
		}
		l.run = l.run[:0]
		for _, p := range pts[i : j+1] {
			l.run = append(l.run, stroke.Point{X: p.Pos.X, Y: p.Pos.Y})
		}
		l.painter.Polyline(l.cache, l.run, float64(w), color.Black, xdraw.Over)
		i = j
	}
}
