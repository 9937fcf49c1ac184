package sketch

// viewTool holds what the camera tools share: the pointer capture and the
// renderer's interpolation flag for the duration of a gesture.
type viewTool struct {
	view     *View
	renderer *Renderer
	host     Host

	down  bool
	start Point
}

func (t *viewTool) begin(e PointerEvent) {
	t.down = true
	t.start = e.Pos
	t.host.Capture()
	t.renderer.SetTransforming(true)
}

func (t *viewTool) finish() {
	if !t.down {
		return
	}
	t.down = false
	t.host.Release()
	t.renderer.SetTransforming(false)
	t.host.Redraw()
}

// PanTool drags the canvas.
type PanTool struct{ viewTool }

// NewPanTool returns a pan tool acting on view.
func NewPanTool(view *View, renderer *Renderer, host Host) *PanTool {
	return &PanTool{viewTool{view: view, renderer: renderer, host: host}}
}

func (t *PanTool) OnPointerDown(e PointerEvent) {
	t.view.PanStart(e.Pos)
	t.begin(e)
}

func (t *PanTool) OnPointerUpdate(e PointerEvent) {
	if !t.down {
		return
	}
	t.view.PanUpdate(e.Pos)
	t.host.Redraw()
}

func (t *PanTool) OnPointerUp(PointerEvent) { t.finish() }

func (t *PanTool) SetCursor() { t.host.SetCursor(CursorHand) }

// ZoomTool zooms with horizontal drag, anchored at the press position.
type ZoomTool struct{ viewTool }

// NewZoomTool returns a zoom tool acting on view.
func NewZoomTool(view *View, renderer *Renderer, host Host) *ZoomTool {
	return &ZoomTool{viewTool{view: view, renderer: renderer, host: host}}
}

func (t *ZoomTool) OnPointerDown(e PointerEvent) {
	t.view.ZoomStart()
	t.begin(e)
}

func (t *ZoomTool) OnPointerUpdate(e PointerEvent) {
	if !t.down {
		return
	}
	t.view.ZoomUpdate(e.Pos, t.start)
	t.host.Redraw()
}

func (t *ZoomTool) OnPointerUp(PointerEvent) { t.finish() }

func (t *ZoomTool) SetCursor() { t.host.SetCursor(CursorResizeHorizontal) }

// RotateTool rotates the view around the screen centre.
type RotateTool struct{ viewTool }

// NewRotateTool returns a rotate tool acting on view.
func NewRotateTool(view *View, renderer *Renderer, host Host) *RotateTool {
	return &RotateTool{viewTool{view: view, renderer: renderer, host: host}}
}

func (t *RotateTool) OnPointerDown(e PointerEvent) {
	t.view.RotateStart()
	t.begin(e)
}

func (t *RotateTool) OnPointerUpdate(e PointerEvent) {
	if !t.down {
		return
	}
	t.view.RotateUpdate(e.Pos, t.start)
	t.host.Redraw()
}

func (t *RotateTool) OnPointerUp(PointerEvent) { t.finish() }

func (t *RotateTool) SetCursor() { t.host.SetCursor(CursorArrow) }
