package sketch

// strokeTool draws into the active layer. PenTool and EraserTool differ only
// in the mode they select.
type strokeTool struct {
	mode     DrawMode
	view     *View
	stack    *Stack
	renderer *Renderer
	host     Host

	down bool
	last PenPoint
}

// PenTool paints with the pen color.
type PenTool struct{ strokeTool }

// EraserTool erases to transparency.
type EraserTool struct{ strokeTool }

// NewPenTool returns a pen tool drawing into stack.
func NewPenTool(view *View, stack *Stack, renderer *Renderer, host Host) *PenTool {
	return &PenTool{strokeTool{mode: ModePen, view: view, stack: stack, renderer: renderer, host: host}}
}

// NewEraserTool returns an eraser tool drawing into stack.
func NewEraserTool(view *View, stack *Stack, renderer *Renderer, host Host) *EraserTool {
	return &EraserTool{strokeTool{mode: ModeEraser, view: view, stack: stack, renderer: renderer, host: host}}
}

func (t *strokeTool) worldPoint(e PointerEvent) PenPoint {
	w := t.view.ScreenToWorld(e.Pos)
	return NewPenPoint(w.X, w.Y, e.Pressure)
}

// OnPointerDown selects the tool's mode and starts a stroke at the pointer.
func (t *strokeTool) OnPointerDown(e PointerEvent) {
	t.stack.SetMode(t.mode)
	t.stack.StartNewStroke()
	p := t.worldPoint(e)
	t.stack.AddPoint(p)
	t.last = p
	t.down = true
}

// OnPointerUpdate extends the stroke and previews the new segment on
// screen. Motion without a preceding down is ignored.
func (t *strokeTool) OnPointerUpdate(e PointerEvent) {
	if !t.down {
		return
	}
	p := t.worldPoint(e)
	if p.Equal(t.last) {
		return
	}
	t.stack.AddPoint(p)
	r := t.renderer.Preview(t.last, p, t.mode, float64(t.stack.CurrentToolWidth()), t.stack.PenColor())
	if !r.Empty() {
		t.host.Present(r)
	}
	t.last = p
}

// OnPointerUp ends the stroke and requests a full redraw.
func (t *strokeTool) OnPointerUp(PointerEvent) {
	if !t.down {
		return
	}
	t.down = false
	t.stack.EndStroke()
	t.host.Redraw()
}

func (t *strokeTool) SetCursor() { t.host.SetCursor(CursorCrosshair) }
