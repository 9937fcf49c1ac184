package sketch

import (
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// LayerKind distinguishes the layer variants.
type LayerKind int

const (
	// KindRaster is a pixel layer backed by a Surface.
	KindRaster LayerKind = iota
	// KindVector is the legacy polyline layer.
	KindVector
)

// String returns the kind name.
func (k LayerKind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindVector:
		return "vector"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// Layer is one entry of a Stack. The set of implementations is closed:
// *RasterLayer and *VectorLayer.
type Layer interface {
	// ID returns an identifier that is stable for the layer's lifetime.
	ID() uuid.UUID
	Name() string
	SetName(name string)
	Kind() LayerKind
	// Size returns the layer extent in world pixels.
	Size() (width, height int)

	// Draw composites the layer onto dst at the world origin.
	Draw(dst xdraw.Image, opacity float64)

	// AddPoint extends the current stroke and returns the dirty world
	// rectangle. An empty rectangle means nothing changed.
	AddPoint(p PenPoint, mode DrawMode, maxWidth float64, c color.Color) image.Rectangle
	Clear()
	StartNewStroke()
	EndStroke()
	// Strokes returns a copy of the recorded strokes, oldest first. Raster
	// layers keep only the newest MaxRasterStrokes.
	Strokes() []Stroke

	// AverageColor returns the mean color of the painted content, or
	// opaque white for an empty layer.
	AverageColor() color.NRGBA

	layer()
}

// MaxRasterStrokes is the number of most recent strokes a RasterLayer
// keeps in its record. The pixels hold the full history.
const MaxRasterStrokes = 64

// RasterLayer paints strokes into a Surface as they arrive.
type RasterLayer struct {
	id      uuid.UUID
	name    string
	surface *Surface
	log     strokeLog
}

// NewRasterLayer allocates a transparent raster layer.
func NewRasterLayer(width, height int, name string) (*RasterLayer, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("sketch: raster layer %q: %w", name, err)
	}
	return &RasterLayer{
		id:      uuid.New(),
		name:    name,
		surface: s,
		log:     strokeLog{limit: MaxRasterStrokes},
	}, nil
}

func (*RasterLayer) layer() {}

func (l *RasterLayer) ID() uuid.UUID       { return l.id }
func (l *RasterLayer) Name() string        { return l.name }
func (l *RasterLayer) SetName(name string) { l.name = name }
func (l *RasterLayer) Kind() LayerKind     { return KindRaster }

// Surface returns the layer's pixel buffer.
func (l *RasterLayer) Surface() *Surface { return l.surface }

func (l *RasterLayer) Size() (width, height int) {
	b := l.surface.Bounds()
	return b.Dx(), b.Dy()
}

func (l *RasterLayer) Draw(dst xdraw.Image, opacity float64) {
	l.surface.Draw(dst, opacity)
}

// AddPoint draws the segment from the previous point to p and records p.
// Points arriving outside StartNewStroke/EndStroke open a stroke of their
// own.
func (l *RasterLayer) AddPoint(p PenPoint, mode DrawMode, maxWidth float64, c color.Color) image.Rectangle {
	s := l.log.open()
	if s == nil {
		l.log.begin()
		s = l.log.open()
	}
	s.add(p, mode, maxWidth, c)
	return l.surface.AddPoint(p, mode, maxWidth, c)
}

// Clear erases all pixels and drops the stroke record.
func (l *RasterLayer) Clear() {
	l.surface.Clear()
	l.log.reset()
}

func (l *RasterLayer) StartNewStroke() {
	l.surface.StartNewStroke()
	l.log.begin()
}

func (l *RasterLayer) EndStroke() {
	l.surface.StartNewStroke()
	l.log.end()
}

func (l *RasterLayer) Strokes() []Stroke { return l.log.snapshot() }

func (l *RasterLayer) AverageColor() color.NRGBA { return l.surface.AverageColor() }
