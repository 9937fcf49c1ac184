package sketch

// Controller owns one tool of every type and forwards the pointer stream
// to the active one.
//
// Beyond lookup and forwarding the Controller does one thing: tool changes
// requested while the pointer is down take effect at the next pointer-up,
// so a gesture always starts and ends on the same tool. A pen stroke is
// never left open by a switch to pan, and a pan never starts from a stale
// anchor.
type Controller struct {
	tools  [len(toolNames)]Tool
	stack  *Stack
	active ToolType

	contact  bool
	pending  ToolType
	deferred bool
}

// NewController creates all tools. The pen is active initially.
func NewController(view *View, stack *Stack, renderer *Renderer, host Host) *Controller {
	c := &Controller{stack: stack}
	c.tools[ToolPen] = NewPenTool(view, stack, renderer, host)
	c.tools[ToolEraser] = NewEraserTool(view, stack, renderer, host)
	c.tools[ToolPan] = NewPanTool(view, renderer, host)
	c.tools[ToolZoom] = NewZoomTool(view, renderer, host)
	c.tools[ToolRotate] = NewRotateTool(view, renderer, host)
	c.SetTool(ToolPen)
	return c
}

// Tool returns the active tool type.
func (c *Controller) Tool() ToolType { return c.active }

// Active returns the active tool.
func (c *Controller) Active() Tool { return c.tools[c.active] }

// SetTool activates tool t and applies its cursor. Unknown types are
// ignored. While the pointer is down the change is deferred.
func (c *Controller) SetTool(t ToolType) {
	if t < 0 || int(t) >= len(c.tools) {
		return
	}
	if c.contact {
		c.pending, c.deferred = t, true
		return
	}
	if t != c.active {
		Logger().Debug("tool switched", "from", c.active, "to", t)
	}
	c.active = t
	c.tools[t].SetCursor()
}

// UpdateTool selects the tool implied by the held keys: Ctrl+Space zooms,
// Space pans, R rotates. With none of these held the pen or eraser is
// selected according to the stack's draw mode. Call it on every key-down
// and key-up.
func (c *Controller) UpdateTool(keys KeyState) {
	c.SetTool(c.toolFor(keys))
}

func (c *Controller) toolFor(keys KeyState) ToolType {
	space := keys.IsKeyDown(KeySpace)
	switch {
	case space && keys.IsKeyDown(KeyControl):
		return ToolZoom
	case space:
		return ToolPan
	case keys.IsKeyDown(KeyR):
		return ToolRotate
	case c.stack.Mode() == ModeEraser:
		return ToolEraser
	default:
		return ToolPen
	}
}

// OnPointerDown forwards e to the active tool.
func (c *Controller) OnPointerDown(e PointerEvent) {
	c.contact = true
	c.tools[c.active].OnPointerDown(e)
}

// OnPointerUpdate forwards e to the active tool.
func (c *Controller) OnPointerUpdate(e PointerEvent) {
	c.tools[c.active].OnPointerUpdate(e)
}

// OnPointerUp forwards e to the active tool, then applies a deferred tool
// change.
func (c *Controller) OnPointerUp(e PointerEvent) {
	c.tools[c.active].OnPointerUp(e)
	c.contact = false
	if c.deferred {
		c.deferred = false
		c.SetTool(c.pending)
	}
}
