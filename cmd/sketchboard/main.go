// Command sketchboard is a desktop painting window built on the sketch
// engine.
//
// Drag to paint. Hold Space to pan, Ctrl+Space to zoom and R to rotate.
// E and Q switch between eraser and pen, C picks the pen color, [ and ]
// change the tool width, N adds a layer, Delete removes the active one,
// Tab cycles layers, H isolates the active layer while held, X clears it
// and Home resets the view.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/sketch"
)

func main() {
	var (
		canvasW = flag.Int("canvas-width", 1920, "canvas width")
		canvasH = flag.Int("canvas-height", 1080, "canvas height")
		verbose = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	stack := sketch.NewStack(*canvasW, *canvasH)
	if _, err := stack.AddRasterLayer(); err != nil {
		log.Fatalf("Failed to create layer: %v", err)
	}

	a := app.New()
	w := a.NewWindow("sketchboard")

	b := newBoard(w, stack)
	status := widget.NewLabel("")
	b.onChange = func() { status.SetText(statusLine(b)) }
	b.onChange()

	w.SetContent(container.NewBorder(nil, status, nil, nil, b))
	w.Resize(fyne.NewSize(1024, 720))
	w.Canvas().Focus(b)
	w.ShowAndRun()
}

func statusLine(b *board) string {
	s := b.stack
	l := s.ActiveLayer()
	v := b.view.State()
	return fmt.Sprintf("%s (%d/%d)  %s %dpx  zoom %.2f  rotation %.0f°",
		l.Name(), s.ActiveIndex()+1, s.Len(), s.Mode(), s.CurrentToolWidth(), v.Zoom, v.Rotation)
}
