package sketch

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch/internal/raster"
)

// Renderer composites a Stack through a View into a screen-sized back
// buffer.
//
// Rendering is a two step process. Layers are first composited bottom to
// top into a canvas-sized world buffer, which is then resampled into the
// screen buffer with the view matrix over the background color. While a
// view gesture is in progress resampling uses nearest-neighbour
// interpolation; otherwise it uses Catmull-Rom.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	view  *View
	stack *Stack

	world      *image.RGBA
	worldValid bool
	screen     *image.RGBA

	background   color.RGBA
	transforming bool

	painter raster.Painter
}

// NewRenderer creates a renderer for the view's client area and the
// stack's canvas. The default background is opaque white.
func NewRenderer(view *View, stack *Stack, opts ...RendererOption) *Renderer {
	cw, ch := stack.CanvasSize()
	sw, sh := view.ClientSize()
	r := &Renderer{
		view:       view,
		stack:      stack,
		world:      image.NewRGBA(image.Rect(0, 0, max(cw, 0), max(ch, 0))),
		screen:     image.NewRGBA(image.Rect(0, 0, max(sw, 0), max(sh, 0))),
		background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Image returns the screen buffer as last rendered.
func (r *Renderer) Image() *image.RGBA { return r.screen }

// Background returns the color the screen is cleared to.
func (r *Renderer) Background() color.RGBA { return r.background }

// SetTransforming marks whether a view gesture is in progress, which
// selects the fast interpolator.
func (r *Renderer) SetTransforming(on bool) { r.transforming = on }

// Transforming reports whether the fast interpolator is selected.
func (r *Renderer) Transforming() bool { return r.transforming }

// Resize reallocates the screen buffer and resizes the view's client
// area. The screen content is lost until the next Render.
func (r *Renderer) Resize(width, height int) {
	r.view.Resize(width, height)
	r.screen = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

// Render recomposites every layer and redraws the whole screen.
func (r *Renderer) Render() *image.RGBA {
	r.composeWorld(r.world.Bounds())
	r.present(r.screen.Bounds())
	return r.screen
}

// RenderRegion recomposites the layers within worldDirty and redraws the
// part of the screen that covers it. It returns that screen rectangle,
// which is empty when the region is off screen.
func (r *Renderer) RenderRegion(worldDirty image.Rectangle) image.Rectangle {
	if !r.worldValid {
		r.composeWorld(r.world.Bounds())
	} else {
		r.composeWorld(worldDirty)
	}

	area := r.view.Matrix().TransformRect(worldDirty).Intersect(r.screen.Bounds())
	if area.Empty() {
		return image.Rectangle{}
	}
	r.present(area)
	return area
}

// Preview draws the segment from a to b, given in world coordinates,
// straight into the screen buffer with the same width rule the layers use.
// The width is scaled by the zoom and is at least one screen pixel. The
// eraser previews with the background color. Preview returns the touched
// screen rectangle.
func (r *Renderer) Preview(a, b PenPoint, mode DrawMode, maxWidth float64, c color.Color) image.Rectangle {
	m := r.view.Matrix()
	sa, sb := m.TransformPoint(a.Pos), m.TransformPoint(b.Pos)
	w := math.Max(1, EffectiveWidth(a, b, maxWidth)*r.view.Zoom())

	src := opaque(c)
	if mode == ModeEraser {
		src = r.background
	}
	return r.painter.Stroke(r.screen, raster.Segment{
		X0: sa.X, Y0: sa.Y, X1: sb.X, Y1: sb.Y, Width: w,
	}, src, xdraw.Over)
}

func (r *Renderer) composeWorld(area image.Rectangle) {
	area = area.Intersect(r.world.Bounds())
	if area.Empty() {
		return
	}
	dst := r.world.SubImage(area).(*image.RGBA)
	xdraw.Draw(dst, area, image.Transparent, image.Point{}, xdraw.Src)
	r.stack.Draw(dst)
	if area == r.world.Bounds() {
		r.worldValid = true
	}
}

func (r *Renderer) present(area image.Rectangle) {
	dst := r.screen.SubImage(area).(*image.RGBA)
	xdraw.Draw(dst, area, image.NewUniform(r.background), image.Point{}, xdraw.Src)
	if r.world.Bounds().Empty() {
		return
	}
	m := r.view.Matrix()
	if m.IsIdentity() {
		xdraw.Draw(dst, area, r.world, area.Min, xdraw.Over)
		return
	}
	r.interpolator().Transform(dst, m.Aff3(), r.world, r.world.Bounds(), xdraw.Over, nil)
}

func (r *Renderer) interpolator() xdraw.Interpolator {
	if r.transforming {
		return xdraw.NearestNeighbor
	}
	return xdraw.CatmullRom
}
