// Package sketch is the engine of a pressure-sensitive layered painting
// canvas with an independent pan, zoom and rotate camera.
//
// # Overview
//
// A Stack holds the layers of a canvas and the global tool settings. Each
// raster layer owns a Surface, a premultiplied RGBA buffer that strokes are
// composited into as points arrive. A View maps between screen space
// (device pixels) and world space (canvas pixels). A Controller routes the
// pointer stream of a host window to one of five tools, and a Renderer
// composites the stack through the view into a screen back buffer.
//
// # Quick Start
//
//	view := sketch.NewView(800, 600)
//	stack := sketch.NewStack(1920, 1080)
//	if _, err := stack.AddRasterLayer(); err != nil {
//		return err
//	}
//	renderer := sketch.NewRenderer(view, stack)
//	ctl := sketch.NewController(view, stack, renderer, host)
//
//	// From the host's event loop:
//	ctl.UpdateTool(keys)           // on every key down and up
//	ctl.OnPointerDown(ev)          // and OnPointerUpdate, OnPointerUp
//	screen := renderer.Render()    // when host.Redraw is requested
//
// # Strokes
//
// Consecutive points of a stroke are joined by round-capped segments whose
// width is the tool's maximum width scaled by the mean pressure of the two
// endpoints, and never less than one pixel. Every AddPoint returns the
// world rectangle it may have changed so hosts can redraw only that area.
// The eraser replaces pixels with transparency instead of painting white.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left in both spaces
//   - X increases right, Y increases down
//   - View rotation is in degrees, positive is clockwise on screen
//
// # Tools
//
// The tool is chosen from held keys, highest priority first: Ctrl+Space
// zooms, Space pans, R rotates; otherwise the pen or eraser is used as the
// stack's draw mode selects. A change requested during a drag is applied
// when the pointer is released.
//
// # Concurrency
//
// All types are meant to be driven from a single event loop and are not
// safe for concurrent use. Only SetLogger and Logger may be called from
// any goroutine.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
