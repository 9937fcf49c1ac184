package sketch

import "math"

// Zoom limits and the default zoom gesture response.
const (
	MinZoom                = 0.1
	MaxZoom                = 10.0
	DefaultZoomSensitivity = 0.005
)

// ViewState is the camera: the world point at the centre of the screen,
// the uniform zoom factor and the rotation in degrees.
type ViewState struct {
	Center   Point
	Zoom     float64
	Rotation float64
}

// View maps between screen (device pixel) space and world (canvas) space.
//
// The forward mapping is, in application order: translate by -Center,
// scale by Zoom, rotate by Rotation about the origin, translate to the
// centre of the client area. Rotation and zoom therefore pivot around the
// point currently being viewed.
//
// Pan updates are incremental. Zoom and rotate updates are computed from
// the state snapshotted at the start of the gesture, so long gestures do
// not accumulate rounding error.
//
// View is not safe for concurrent use.
type View struct {
	state        ViewState
	clientWidth  int
	clientHeight int

	start   ViewState // snapshot taken by ZoomStart / RotateStart
	panLast Point

	opts viewOptions
}

// NewView creates a view for a client area of the given size, centred on
// the middle of that area at zoom 1 and no rotation.
func NewView(clientWidth, clientHeight int, opts ...ViewOption) *View {
	v := &View{
		clientWidth:  clientWidth,
		clientHeight: clientHeight,
		opts:         defaultViewOptions(),
	}
	for _, opt := range opts {
		opt(&v.opts)
	}
	v.Reset()
	return v
}

// Reset recentres the view on the middle of the client area with zoom 1
// and no rotation.
func (v *View) Reset() {
	v.state = ViewState{
		Center: v.screenCenter(),
		Zoom:   v.clampZoom(1),
	}
	v.start = v.state
}

// Resize updates the client area size. The camera state is kept.
func (v *View) Resize(clientWidth, clientHeight int) {
	v.clientWidth = clientWidth
	v.clientHeight = clientHeight
}

// ClientSize returns the client area size in device pixels.
func (v *View) ClientSize() (width, height int) {
	return v.clientWidth, v.clientHeight
}

// State returns the current camera state.
func (v *View) State() ViewState { return v.state }

// SetState replaces the camera state. Zoom is clamped to the view's limits.
func (v *View) SetState(s ViewState) {
	s.Zoom = v.clampZoom(s.Zoom)
	v.state = s
	v.start = s
}

// Center returns the world point at the centre of the screen.
func (v *View) Center() Point { return v.state.Center }

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 { return v.state.Zoom }

// Rotation returns the current rotation in degrees.
func (v *View) Rotation() float64 { return v.state.Rotation }

func (v *View) screenCenter() Point {
	return Pt(float64(v.clientWidth)/2, float64(v.clientHeight)/2)
}

func (v *View) clampZoom(z float64) float64 {
	return math.Min(math.Max(z, v.opts.minZoom), v.opts.maxZoom)
}

// Matrix returns the world to screen transformation.
func (v *View) Matrix() Matrix {
	sc := v.screenCenter()
	return Translate(sc.X, sc.Y).
		Multiply(Rotate(radians(v.state.Rotation))).
		Multiply(Scale(v.state.Zoom, v.state.Zoom)).
		Multiply(Translate(-v.state.Center.X, -v.state.Center.Y))
}

// WorldToScreen maps a world point to screen space.
func (v *View) WorldToScreen(p Point) Point {
	return v.Matrix().TransformPoint(p)
}

// ScreenToWorld maps a screen point to world space.
func (v *View) ScreenToWorld(p Point) Point {
	return v.Matrix().Invert().TransformPoint(p)
}

// PanStart records the pointer position a pan gesture starts from.
func (v *View) PanStart(p Point) {
	v.panLast = p
}

// PanUpdate moves the view so the content follows the pointer. The screen
// delta since the previous update is undone by the rotation and scaled by
// the zoom before it is subtracted from the centre.
func (v *View) PanUpdate(p Point) {
	d := p.Sub(v.panLast).Rotate(-radians(v.state.Rotation)).Div(v.state.Zoom)
	v.state.Center = v.state.Center.Sub(d)
	v.panLast = p
}

// RotateStart snapshots the rotation as the gesture baseline.
func (v *View) RotateStart() {
	v.start.Rotation = v.state.Rotation
}

// RotateUpdate sets the rotation to the baseline plus the angle swept by
// the pointer around the screen centre since sessionStart.
func (v *View) RotateUpdate(current, sessionStart Point) {
	sc := v.screenCenter()
	delta := current.Sub(sc).Angle() - sessionStart.Sub(sc).Angle()
	v.state.Rotation = v.start.Rotation + degrees(delta)
}

// ZoomStart snapshots the zoom factor as the gesture baseline.
func (v *View) ZoomStart() {
	v.start.Zoom = v.state.Zoom
	v.start.Center = v.state.Center
}

// ZoomUpdate sets the zoom from the horizontal pointer displacement since
// sessionStart, zoom = baseline * e^(dx*k), and moves the centre so that
// the world point under sessionStart stays where it is on screen.
func (v *View) ZoomUpdate(current, sessionStart Point) {
	dx := current.X - sessionStart.X
	newZoom := v.clampZoom(v.start.Zoom * math.Exp(dx*v.opts.sensitivity))

	anchor := v.ScreenToWorld(sessionStart)
	ratio := v.state.Zoom / newZoom
	v.state.Center = anchor.Add(v.state.Center.Sub(anchor).Mul(ratio))
	v.state.Zoom = newZoom
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
