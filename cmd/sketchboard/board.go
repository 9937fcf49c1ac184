package main

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

// board is the drawing area. It implements sketch.Host on top of a fyne
// raster and translates fyne input into the engine's pointer and key
// streams.
type board struct {
	widget.BaseWidget

	view     *sketch.View
	stack    *sketch.Stack
	renderer *sketch.Renderer
	ctl      *sketch.Controller

	win    fyne.Window // parent of the color picker; may be nil
	raster *canvas.Raster
	keys   keySet
	cursor desktop.Cursor
	scale  float32 // raster pixels per fyne unit
	full   bool    // full recomposite due on next raster draw
	sized  bool    // the raster has reported a real size
	down   bool

	onChange func()
}

var _ fyne.Widget = (*board)(nil)
var _ fyne.Draggable = (*board)(nil)
var _ fyne.Focusable = (*board)(nil)
var _ desktop.Mouseable = (*board)(nil)
var _ desktop.Keyable = (*board)(nil)
var _ desktop.Cursorable = (*board)(nil)
var _ sketch.Host = (*board)(nil)

func newBoard(win fyne.Window, stack *sketch.Stack) *board {
	b := &board{
		win:    win,
		stack:  stack,
		keys:   keySet{},
		cursor: desktop.CrosshairCursor,
		scale:  1,
		full:   true,
	}
	// The real client size is only known at the first raster draw.
	b.view = sketch.NewView(1, 1)
	b.renderer = sketch.NewRenderer(b.view, stack)
	b.ctl = sketch.NewController(b.view, stack, b.renderer, b)

	b.raster = canvas.NewRaster(b.draw)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b
}

// draw is the raster generator. It resizes the engine to the raster's
// pixel size and recomposites only when a full redraw was requested. The
// first real size recentres the view; later resizes keep the camera.
func (b *board) draw(w, h int) image.Image {
	if cw, ch := b.view.ClientSize(); cw != w || ch != h {
		b.renderer.Resize(w, h)
		if !b.sized {
			b.sized = true
			b.view.Reset()
		}
		b.full = true
	}
	if size := b.Size(); size.Width > 0 {
		b.scale = float32(w) / size.Width
	}
	if b.full {
		b.full = false
		b.renderer.Render()
	}
	return b.renderer.Image()
}

func (b *board) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

// sketch.Host

func (b *board) Redraw() {
	b.full = true
	b.raster.Refresh()
	if b.onChange != nil {
		b.onChange()
	}
}

func (b *board) Present(image.Rectangle) { b.raster.Refresh() }

// Capture and Release are no-ops: fyne keeps delivering drag events to the
// widget a drag started on.
func (b *board) Capture() {}
func (b *board) Release() {}

func (b *board) SetCursor(c sketch.Cursor) {
	switch c {
	case sketch.CursorCrosshair:
		b.cursor = desktop.CrosshairCursor
	case sketch.CursorHand:
		b.cursor = desktop.PointerCursor
	case sketch.CursorResizeHorizontal:
		b.cursor = desktop.HResizeCursor
	default:
		b.cursor = desktop.DefaultCursor
	}
}

func (b *board) Cursor() desktop.Cursor { return b.cursor }

// pointer input

func (b *board) event(pos fyne.Position, contact bool) sketch.PointerEvent {
	e := sketch.PointerEvent{
		Pos:     sketch.Pt(float64(pos.X*b.scale), float64(pos.Y*b.scale)),
		Contact: contact,
	}
	if contact {
		// Mice report no pressure.
		e.Pressure = sketch.MaxPressure
		e.Buttons = sketch.ButtonPrimary
	}
	return e
}

func (b *board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
	b.down = true
	b.ctl.OnPointerDown(b.event(e.Position, true))
}

func (b *board) Dragged(e *fyne.DragEvent) {
	if b.down {
		b.ctl.OnPointerUpdate(b.event(e.Position, true))
	}
}

func (b *board) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.release(e.Position)
	}
}

func (b *board) DragEnd() { b.release(fyne.Position{}) }

func (b *board) release(pos fyne.Position) {
	if !b.down {
		return
	}
	b.down = false
	b.ctl.OnPointerUp(b.event(pos, false))
}

// keyboard input

func (b *board) FocusGained()            {}
func (b *board) TypedRune(rune)          {}
func (b *board) TypedKey(*fyne.KeyEvent) {}

// FocusLost drops held modifiers; their key-up events go elsewhere.
func (b *board) FocusLost() {
	b.keys = keySet{}
	b.ctl.UpdateTool(b.keys)
}

func (b *board) KeyDown(e *fyne.KeyEvent) {
	if b.keys.press(e.Name) {
		b.ctl.UpdateTool(b.keys)
		return
	}
	b.command(e.Name)
}

func (b *board) KeyUp(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyH {
		b.stack.SetHoveredLayer(-1)
		b.Redraw()
		return
	}
	if b.keys.release(e.Name) {
		b.ctl.UpdateTool(b.keys)
	}
}

// command handles the single-key shortcuts that are not tool modifiers.
func (b *board) command(k fyne.KeyName) {
	switch k {
	case fyne.KeyE:
		b.stack.SetMode(sketch.ModeEraser)
		b.ctl.UpdateTool(b.keys)
	case fyne.KeyQ:
		b.stack.SetMode(sketch.ModePen)
		b.ctl.UpdateTool(b.keys)
	case fyne.KeyC:
		b.pickColor()
		return
	case fyne.KeyX:
		b.stack.Clear()
	case fyne.KeyN:
		if _, err := b.stack.AddRasterLayer(); err != nil {
			sketch.Logger().Warn("new layer", "err", err)
		}
	case fyne.KeyDelete, fyne.KeyBackspace:
		b.stack.DeleteActiveLayer()
	case fyne.KeyTab:
		b.stack.SetActiveLayer((b.stack.ActiveIndex() + 1) % b.stack.Len())
	case fyne.KeyH:
		b.stack.SetHoveredLayer(b.stack.ActiveIndex())
	case fyne.KeyLeftBracket:
		b.setWidth(-1)
	case fyne.KeyRightBracket:
		b.setWidth(1)
	case fyne.KeyHome:
		b.view.Reset()
	default:
		return
	}
	b.Redraw()
}

// pickColor opens a color picker for the pen color.
func (b *board) pickColor() {
	if b.win == nil {
		return
	}
	d := dialog.NewColorPicker("Pen color", "", b.setPenColor, b.win)
	d.Advanced = true
	d.Show()
	// The advanced picker only exists once shown.
	d.SetColor(b.stack.PenColor())
}

// setPenColor sets the pen color, ignoring alpha, and switches to the pen.
func (b *board) setPenColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.stack.SetPenColor(n.R, n.G, n.B)
	b.stack.SetMode(sketch.ModePen)
	b.ctl.UpdateTool(b.keys)
	b.Redraw()
}

func (b *board) setWidth(delta int) {
	if b.stack.Mode() == sketch.ModeEraser {
		b.stack.SetEraserWidth(b.stack.EraserWidth() + delta)
	} else {
		b.stack.SetPenWidth(b.stack.PenWidth() + delta)
	}
}

// keySet tracks the held tool modifier keys.
type keySet map[sketch.Key]bool

// press records k if it is a modifier and reports whether it was one.
func (s keySet) press(k fyne.KeyName) bool {
	key, ok := modifier(k)
	if ok {
		s[key] = true
	}
	return ok
}

func (s keySet) release(k fyne.KeyName) bool {
	key, ok := modifier(k)
	if ok {
		delete(s, key)
	}
	return ok
}

func (s keySet) IsKeyDown(k sketch.Key) bool { return s[k] }

func modifier(k fyne.KeyName) (sketch.Key, bool) {
	switch k {
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return sketch.KeyControl, true
	case fyne.KeySpace:
		return sketch.KeySpace, true
	case fyne.KeyR:
		return sketch.KeyR, true
	}
	return 0, false
}
