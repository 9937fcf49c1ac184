package sketch

import (
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Default tool settings of a new Stack.
const (
	DefaultPenWidth     = 5
	DefaultEraserWidth  = 20
	DefaultHoverOpacity = 0.05
)

// eraserColor is passed to layers in eraser mode. Raster layers ignore it
// and erase to transparency.
var eraserColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Stack is the ordered set of layers of a canvas, bottom first, together
// with the global tool settings.
//
// Once a layer has been added the stack is never empty: DeleteActiveLayer
// refuses to remove the last layer. The active index is either -1, before
// the first layer is added, or a valid index. The hovered layer is tracked
// by ID, so it stays hovered while layers below it are removed; while a
// layer is hovered every other layer is drawn dimmed.
//
// Stack is not safe for concurrent use.
type Stack struct {
	width, height int

	layers  []Layer
	active  int
	hovered uuid.UUID // uuid.Nil when no layer is hovered

	mode         DrawMode
	penWidth     int
	eraserWidth  int
	penColor     color.NRGBA
	hoverOpacity float64
}

// NewStack creates an empty stack for a canvas of the given size in world
// pixels. Add a layer before drawing.
func NewStack(width, height int, opts ...StackOption) *Stack {
	s := &Stack{
		width:        width,
		height:       height,
		active:       -1,
		mode:         ModePen,
		penWidth:     DefaultPenWidth,
		eraserWidth:  DefaultEraserWidth,
		penColor:     color.NRGBA{A: 0xff},
		hoverOpacity: DefaultHoverOpacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanvasSize returns the canvas size the stack was created with.
func (s *Stack) CanvasSize() (width, height int) { return s.width, s.height }

// AddLayer appends a transparent raster layer and makes it active.
// Allocation failures are returned and leave the stack unchanged.
func (s *Stack) AddLayer(width, height int, name string) (Layer, error) {
	l, err := NewRasterLayer(width, height, name)
	if err != nil {
		Logger().Warn("layer allocation failed", "name", name, "width", width, "height", height, "err", err)
		return nil, err
	}
	s.push(l)
	return l, nil
}

// AddRasterLayer appends a canvas-sized raster layer named "Layer N",
// where N is the new layer count, and makes it active.
func (s *Stack) AddRasterLayer() (Layer, error) {
	return s.AddLayer(s.width, s.height, fmt.Sprintf("Layer %d", len(s.layers)+1))
}

// AddVectorLayer appends a canvas-sized vector layer and makes it active.
func (s *Stack) AddVectorLayer(name string) (Layer, error) {
	l, err := NewVectorLayer(s.width, s.height, name)
	if err != nil {
		Logger().Warn("layer allocation failed", "name", name, "err", err)
		return nil, err
	}
	s.push(l)
	return l, nil
}

func (s *Stack) push(l Layer) {
	s.layers = append(s.layers, l)
	s.active = len(s.layers) - 1
	Logger().Debug("layer added", "name", l.Name(), "kind", l.Kind(), "index", s.active)
}

// DeleteActiveLayer removes the active layer. It does nothing when one
// layer or none is left. The layer above the removed one becomes active,
// or the new top layer if the top was removed.
func (s *Stack) DeleteActiveLayer() {
	if len(s.layers) <= 1 || !s.valid(s.active) {
		return
	}
	i := s.active
	removed := s.layers[i]
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.active = min(i, len(s.layers)-1)

	if removed.ID() == s.hovered {
		s.hovered = uuid.Nil
	}
	Logger().Debug("layer deleted", "name", removed.Name(), "index", i, "active", s.active)
}

// RenameLayer sets the name of layer i. Out of range indices are ignored.
func (s *Stack) RenameLayer(i int, name string) {
	if !s.valid(i) {
		return
	}
	old := s.layers[i].Name()
	s.layers[i].SetName(name)
	Logger().Debug("layer renamed", "index", i, "from", old, "to", name)
}

// Len returns the number of layers.
func (s *Stack) Len() int { return len(s.layers) }

// Layer returns layer i, or nil if i is out of range.
func (s *Stack) Layer(i int) Layer {
	if !s.valid(i) {
		return nil
	}
	return s.layers[i]
}

// Layers returns the layers bottom first. The slice is a copy; the layers
// are shared.
func (s *Stack) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// ActiveIndex returns the index of the active layer, or -1.
func (s *Stack) ActiveIndex() int { return s.active }

// ActiveLayer returns the active layer, or nil when the stack is empty.
func (s *Stack) ActiveLayer() Layer { return s.Layer(s.active) }

// SetActiveLayer makes layer i active. Out of range indices are ignored.
func (s *Stack) SetActiveLayer(i int) {
	if s.valid(i) {
		s.active = i
	}
}

// IndexOf returns the index of the layer with the given ID, or -1.
func (s *Stack) IndexOf(id uuid.UUID) int {
	for i, l := range s.layers {
		if l.ID() == id {
			return i
		}
	}
	return -1
}

// HoveredIndex returns the hovered layer index, or -1.
func (s *Stack) HoveredIndex() int { return s.IndexOf(s.hovered) }

// SetHoveredLayer sets the layer to isolate in Draw. -1 turns the preview
// off; other out of range values are ignored.
func (s *Stack) SetHoveredLayer(i int) {
	if i != -1 && !s.valid(i) {
		return
	}
	id := uuid.Nil
	if i != -1 {
		id = s.layers[i].ID()
	}
	if id != s.hovered {
		Logger().Debug("hover changed", "from", s.HoveredIndex(), "to", i)
	}
	s.hovered = id
}

// Mode returns the current draw mode.
func (s *Stack) Mode() DrawMode { return s.mode }

// SetMode sets the draw mode used by AddPoint.
func (s *Stack) SetMode(m DrawMode) {
	if m == ModePen || m == ModeEraser {
		s.mode = m
	}
}

// PenWidth returns the maximum pen width.
func (s *Stack) PenWidth() int { return s.penWidth }

// SetPenWidth sets the maximum pen width. Values below 1 are ignored.
func (s *Stack) SetPenWidth(w int) {
	if w >= 1 {
		s.penWidth = w
	}
}

// EraserWidth returns the maximum eraser width.
func (s *Stack) EraserWidth() int { return s.eraserWidth }

// SetEraserWidth sets the maximum eraser width. Values below 1 are ignored.
func (s *Stack) SetEraserWidth(w int) {
	if w >= 1 {
		s.eraserWidth = w
	}
}

// PenColor returns the opaque pen color.
func (s *Stack) PenColor() color.NRGBA { return s.penColor }

// SetPenColor sets the pen color.
func (s *Stack) SetPenColor(r, g, b uint8) {
	s.penColor = color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// HoverOpacity returns the opacity of dimmed layers.
func (s *Stack) HoverOpacity() float64 { return s.hoverOpacity }

// CurrentToolWidth returns the pen or eraser width, depending on the mode.
func (s *Stack) CurrentToolWidth() int {
	if s.mode == ModeEraser {
		return s.eraserWidth
	}
	return s.penWidth
}

// CurrentToolColor returns the color AddPoint passes to the active layer:
// the pen color in pen mode and opaque white in eraser mode.
func (s *Stack) CurrentToolColor() color.NRGBA {
	if s.mode == ModeEraser {
		return eraserColor
	}
	return s.penColor
}

// AddPoint adds p, in world coordinates, to the stroke on the active layer
// using the current mode, width and color. It returns the dirty world
// rectangle, which is empty when there is no active layer.
func (s *Stack) AddPoint(p PenPoint) image.Rectangle {
	l := s.ActiveLayer()
	if l == nil {
		return image.Rectangle{}
	}
	return l.AddPoint(p, s.mode, float64(s.CurrentToolWidth()), s.CurrentToolColor())
}

// StartNewStroke begins a stroke on the active layer.
func (s *Stack) StartNewStroke() {
	if l := s.ActiveLayer(); l != nil {
		l.StartNewStroke()
	}
}

// EndStroke seals the stroke on the active layer.
func (s *Stack) EndStroke() {
	if l := s.ActiveLayer(); l != nil {
		l.EndStroke()
	}
}

// Clear erases the active layer.
func (s *Stack) Clear() {
	if l := s.ActiveLayer(); l != nil {
		l.Clear()
	}
}

// Draw composites all layers onto dst, bottom first. While a layer is
// hovered, every other layer is drawn at HoverOpacity.
func (s *Stack) Draw(dst xdraw.Image) {
	for _, l := range s.layers {
		opacity := 1.0
		if s.hovered != uuid.Nil && l.ID() != s.hovered {
			opacity = s.hoverOpacity
		}
		l.Draw(dst, opacity)
	}
}

func (s *Stack) valid(i int) bool { return i >= 0 && i < len(s.layers) }
