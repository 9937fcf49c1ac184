package sketch

import "image/color"

// ViewOption configures a View during creation.
//
// Example:
//
//	v := sketch.NewView(800, 600, sketch.WithZoomSensitivity(0.01))
type ViewOption func(*viewOptions)

type viewOptions struct {
	sensitivity float64
	minZoom     float64
	maxZoom     float64
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		sensitivity: DefaultZoomSensitivity,
		minZoom:     MinZoom,
		maxZoom:     MaxZoom,
	}
}

// WithZoomSensitivity sets the exponential response constant k used by
// ZoomUpdate: zoom = baseline * e^(dx*k). Non-positive values are ignored.
func WithZoomSensitivity(k float64) ViewOption {
	return func(o *viewOptions) {
		if k > 0 {
			o.sensitivity = k
		}
	}
}

// WithZoomLimits narrows the zoom range. Limits outside [MinZoom, MaxZoom]
// or with lo > hi are ignored, so zoom can never reach zero.
func WithZoomLimits(lo, hi float64) ViewOption {
	return func(o *viewOptions) {
		if lo < MinZoom || hi > MaxZoom || lo > hi {
			return
		}
		o.minZoom, o.maxZoom = lo, hi
	}
}

// StackOption configures a Stack during creation.
type StackOption func(*Stack)

// WithPenWidth sets the initial maximum pen width.
func WithPenWidth(w int) StackOption {
	return func(s *Stack) { s.SetPenWidth(w) }
}

// WithEraserWidth sets the initial maximum eraser width.
func WithEraserWidth(w int) StackOption {
	return func(s *Stack) { s.SetEraserWidth(w) }
}

// WithPenColor sets the initial pen color.
func WithPenColor(r, g, b uint8) StackOption {
	return func(s *Stack) { s.SetPenColor(r, g, b) }
}

// WithHoverOpacity sets the opacity used for layers that are not hovered
// while a hover preview is active. Values outside [0, 1] are ignored.
func WithHoverOpacity(opacity float64) StackOption {
	return func(s *Stack) {
		if opacity >= 0 && opacity <= 1 {
			s.hoverOpacity = opacity
		}
	}
}

// RendererOption configures a Renderer during creation.
type RendererOption func(*Renderer)

// WithBackground sets the color the screen is cleared to before the
// layers are composited. Eraser previews paint with this color.
func WithBackground(c color.Color) RendererOption {
	return func(r *Renderer) {
		r.background = color.RGBAModel.Convert(c).(color.RGBA)
	}
}
