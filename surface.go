package sketch

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
)

// MaxSurfacePixels bounds the area of a single surface (64 megapixels,
// 256 MiB of RGBA).
const MaxSurfacePixels = 1 << 26

// DrawMode selects how stroke segments affect a surface.
type DrawMode int

const (
	// ModePen composites the pen color over existing content.
	ModePen DrawMode = iota
	// ModeEraser replaces the pixels under the segment with transparency.
	ModeEraser
)

// String returns the mode name.
func (m DrawMode) String() string {
	switch m {
	case ModePen:
		return "pen"
	case ModeEraser:
		return "eraser"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// Surface is the pixel buffer of a raster layer together with the cursor,
// the last point added to the current stroke.
//
// Pixels are premultiplied RGBA. World coordinates map one to one onto
// buffer pixels with the origin at the top-left corner.
type Surface struct {
	img *image.RGBA

	cursor    PenPoint
	hasCursor bool

	painter raster.Painter
}

// NewSurface allocates a fully transparent surface.
// It returns ErrInvalidDimensions if width or height is not positive and
// ErrSurfaceTooLarge if the area exceeds MaxSurfacePixels.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if int64(width)*int64(height) > MaxSurfacePixels {
		return nil, ErrSurfaceTooLarge
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Bounds returns the surface rectangle, (0,0)-(width,height).
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image returns the backing buffer. Writes to it are visible to the surface.
func (s *Surface) Image() *image.RGBA { return s.img }

// Cursor returns the last point of the current stroke. The second result is
// false when no stroke is in progress or the stroke has no points yet.
func (s *Surface) Cursor() (PenPoint, bool) { return s.cursor, s.hasCursor }

// EffectiveWidth returns the width of a segment from a to b: maxWidth scaled
// by the average pressure factor of both endpoints, never below 1.
func EffectiveWidth(a, b PenPoint, maxWidth float64) float64 {
	return math.Max(1, maxWidth*(a.PressureFactor()+b.PressureFactor())/2)
}

// AddPoint extends the current stroke to p and returns the dirty rectangle
// in world coordinates.
//
// The first point of a stroke only sets the cursor and reports the
// single-pixel rectangle at p. A point identical to the cursor is dropped
// and reports an empty rectangle. Otherwise a round-capped segment from the
// cursor to p is drawn. The returned rectangle is the bounding box of both
// endpoints grown by ceil(width/2)+2; it is not clipped to the surface.
func (s *Surface) AddPoint(p PenPoint, mode DrawMode, maxWidth float64, c color.Color) image.Rectangle {
	if !s.hasCursor {
		s.cursor, s.hasCursor = p, true
		return raster.PointRect(p.Pos.X, p.Pos.Y)
	}
	if p.Equal(s.cursor) {
		return image.Rectangle{}
	}

	seg := raster.Segment{
		X0: s.cursor.Pos.X, Y0: s.cursor.Pos.Y,
		X1: p.Pos.X, Y1: p.Pos.Y,
		Width: EffectiveWidth(s.cursor, p, maxWidth),
	}
	if mode == ModeEraser {
		s.painter.Stroke(s.img, seg, color.Transparent, xdraw.Src)
	} else {
		s.painter.Stroke(s.img, seg, opaque(c), xdraw.Over)
	}

	s.cursor = p
	return seg.Bounds()
}

// StartNewStroke forgets the cursor so that the next AddPoint does not
// connect to the previous stroke.
func (s *Surface) StartNewStroke() {
	s.hasCursor = false
	s.cursor = PenPoint{}
}

// Clear makes every pixel fully transparent. The cursor is kept.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Draw composites the surface onto dst at the world origin. Opacity 1 or
// more is a plain source-over copy; lower values scale the source alpha.
func (s *Surface) Draw(dst xdraw.Image, opacity float64) {
	blend.DrawOpacity(dst, s.img, opacity)
}

// AverageColor returns the mean color of all non-transparent pixels, or
// opaque white when nothing has been painted.
func (s *Surface) AverageColor() color.NRGBA {
	c, _ := blend.AverageColor(s.img)
	return c
}

// opaque drops the alpha of c; pen colors are always fully opaque.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
