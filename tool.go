package sketch

import (
	"fmt"
	"image"
)

// ToolType identifies one of the tools owned by a Controller.
type ToolType int

const (
	ToolPen ToolType = iota
	ToolEraser
	ToolPan
	ToolZoom
	ToolRotate
)

var toolNames = [...]string{"pen", "eraser", "pan", "zoom", "rotate"}

// String returns the tool name.
func (t ToolType) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("ToolType(%d)", int(t))
}

// Cursor is the pointer shape a tool asks the host to show.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorCrosshair
	CursorHand
	CursorResizeHorizontal
)

// Buttons is a bit set of pressed pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// PointerEvent is one sample of the pointer stream in screen coordinates.
// Pressure is in [0, MaxPressure]; hosts without pressure report
// MaxPressure while in contact.
type PointerEvent struct {
	Pos      Point
	Pressure uint32
	Contact  bool
	Buttons  Buttons
}

// Host is the window the engine draws into.
type Host interface {
	// Redraw requests a full recomposite and presentation.
	Redraw()
	// Present shows the given screen rectangle of the renderer's buffer
	// without recompositing.
	Present(r image.Rectangle)
	// Capture routes all pointer events to the drawing area, even outside
	// it, until Release.
	Capture()
	Release()
	SetCursor(c Cursor)
}

// Key names a modifier key consulted by Controller.UpdateTool.
type Key int

const (
	KeyControl Key = iota
	KeySpace
	KeyR
)

// KeyState reports which keys are held.
type KeyState interface {
	IsKeyDown(k Key) bool
}

// Tool handles the pointer stream while it is active.
type Tool interface {
	OnPointerDown(e PointerEvent)
	OnPointerUpdate(e PointerEvent)
	OnPointerUp(e PointerEvent)
	// SetCursor asks the host for the tool's cursor.
	SetCursor()
}
