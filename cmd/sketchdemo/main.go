// Command sketchdemo replays a scripted painting session through the sketch
// engine and writes the final screen to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/sketch"
)

// headless is a Host without a window. It only counts requests; the
// screen is rendered once at the end.
type headless struct {
	redraws  int
	presents int
}

func (h *headless) Redraw()                 { h.redraws++ }
func (h *headless) Present(image.Rectangle) { h.presents++ }
func (h *headless) Capture()                {}
func (h *headless) Release()                {}
func (h *headless) SetCursor(sketch.Cursor) {}

type keys map[sketch.Key]bool

func (k keys) IsKeyDown(key sketch.Key) bool { return k[key] }

func main() {
	var (
		width   = flag.Int("width", 800, "screen width")
		height  = flag.Int("height", 600, "screen height")
		canvasW = flag.Int("canvas-width", 1024, "canvas width")
		canvasH = flag.Int("canvas-height", 768, "canvas height")
		output  = flag.String("output", "sketch.png", "output file")
		verbose = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	view := sketch.NewView(*width, *height)
	stack := sketch.NewStack(*canvasW, *canvasH, sketch.WithPenWidth(12))
	if _, err := stack.AddRasterLayer(); err != nil {
		log.Fatalf("Failed to create layer: %v", err)
	}
	host := &headless{}
	renderer := sketch.NewRenderer(view, stack)
	ctl := sketch.NewController(view, stack, renderer, host)

	cx, cy := float64(*width)/2, float64(*height)/2

	// Background layer: a pressure ramp spiral.
	stack.SetPenColor(30, 90, 200)
	drag(ctl, spiral(cx, cy, 220, 3, 240))

	// Second layer: a red wave, then an eraser pass across it.
	if _, err := stack.AddRasterLayer(); err != nil {
		log.Fatalf("Failed to create layer: %v", err)
	}
	stack.SetPenColor(220, 40, 40)
	drag(ctl, wave(cx-300, cy, 600, 60, 200))

	stack.SetMode(sketch.ModeEraser)
	ctl.UpdateTool(keys{})
	drag(ctl, line(cx, cy-150, cx, cy+150, 50))
	stack.SetMode(sketch.ModePen)
	ctl.UpdateTool(keys{})

	// Zoom in around a point left of centre, then rotate a little.
	ctl.UpdateTool(keys{sketch.KeyControl: true, sketch.KeySpace: true})
	drag(ctl, line(cx-100, cy, cx, cy, 10))
	ctl.UpdateTool(keys{sketch.KeyR: true})
	drag(ctl, []sketch.PointerEvent{
		{Pos: sketch.Pt(cx+200, cy), Contact: true},
		{Pos: sketch.Pt(cx+200, cy+60), Contact: true},
	})
	ctl.UpdateTool(keys{})

	for i, l := range stack.Layers() {
		sketch.Logger().Info("layer", "index", i, "name", l.Name(), "strokes", len(l.Strokes()), "average", l.AverageColor())
	}

	img := renderer.Render()
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	s := view.State()
	log.Printf("Sketch saved to %s (%dx%d), zoom %.2f, rotation %.1f, %d redraws, %d previews\n",
		*output, *width, *height, s.Zoom, s.Rotation, host.redraws, host.presents)
}

func drag(ctl *sketch.Controller, evs []sketch.PointerEvent) {
	if len(evs) == 0 {
		return
	}
	ctl.OnPointerDown(evs[0])
	for _, e := range evs[1:] {
		ctl.OnPointerUpdate(e)
	}
	last := evs[len(evs)-1]
	last.Contact = false
	ctl.OnPointerUp(last)
}

func line(x0, y0, x1, y1 float64, n int) []sketch.PointerEvent {
	evs := make([]sketch.PointerEvent, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		evs = append(evs, sketch.PointerEvent{
			Pos:      sketch.Pt(x0+(x1-x0)*t, y0+(y1-y0)*t),
			Pressure: sketch.MaxPressure,
			Contact:  true,
		})
	}
	return evs
}

func wave(x, y, length, amp float64, n int) []sketch.PointerEvent {
	evs := make([]sketch.PointerEvent, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		evs = append(evs, sketch.PointerEvent{
			Pos:      sketch.Pt(x+length*t, y+amp*math.Sin(t*4*math.Pi)),
			Pressure: uint32(sketch.MaxPressure * (0.3 + 0.7*math.Abs(math.Sin(t*math.Pi)))),
			Contact:  true,
		})
	}
	return evs
}

func spiral(cx, cy, radius, turns float64, n int) []sketch.PointerEvent {
	evs := make([]sketch.PointerEvent, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		a := t * turns * 2 * math.Pi
		evs = append(evs, sketch.PointerEvent{
			Pos:      sketch.Pt(cx+radius*t*math.Cos(a), cy+radius*t*math.Sin(a)),
			Pressure: uint32(sketch.MaxPressure * t),
			Contact:  true,
		})
	}
	return evs
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
