package raster

import (
	"image"
	"image/color"
	"testing"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sketch/internal/stroke"
)

func TestSegmentBounds(t *testing.T) {
	tests := []struct {
		name string
		s    Segment
		want image.Rectangle
	}{
		{"diagonal width 7.5", Segment{10, 10, 20, 20, 7.5}, image.Rect(4, 4, 26, 26)},
		{"reversed endpoints", Segment{20, 20, 10, 10, 7.5}, image.Rect(4, 4, 26, 26)},
		{"width 1", Segment{0, 0, 5, 0, 1}, image.Rect(-3, -3, 8, 3)},
		{"fractional", Segment{1.5, 2.5, 3.2, 2.5, 2}, image.Rect(-2, -1, 7, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	for _, tt := range []struct {
		width float64
		want  int
	}{
		{1, 3}, {2, 3}, {7.5, 6}, {10, 7}, {20, 12},
	} {
		if got := Margin(tt.width); got != tt.want {
			t.Errorf("Margin(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPointRect(t *testing.T) {
	if got, want := PointRect(3.7, -0.2), image.Rect(3, -1, 4, 0); got != want {
		t.Errorf("PointRect = %v, want %v", got, want)
	}
}

func TestStrokeOver(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	var p Painter
	touched := p.Stroke(dst, Segment{5, 10, 30, 10, 4}, color.Black, xdraw.Over)

	if touched.Empty() {
		t.Fatal("Stroke reported no touched area")
	}
	if a := dst.RGBAAt(15, 10).A; a < 250 {
		t.Errorf("alpha on the segment = %d, want ~255", a)
	}
	if a := dst.RGBAAt(15, 3).A; a != 0 {
		t.Errorf("alpha away from the segment = %d, want 0", a)
	}
	// Round cap: the pixel just past the end within the radius is covered,
	// the corner of the square cap region is not.
	if a := dst.RGBAAt(31, 10).A; a == 0 {
		t.Error("round cap missing past the end point")
	}
	if a := dst.RGBAAt(32, 12).A; a > 64 {
		t.Errorf("alpha at cap corner = %d, want mostly uncovered", a)
	}
}

func TestStrokeSrcErases(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{255, 0, 0, 255}), image.Point{}, xdraw.Src)

	var p Painter
	p.Stroke(dst, Segment{5, 10, 30, 10, 6}, color.Transparent, xdraw.Src)

	if a := dst.RGBAAt(15, 10).A; a > 5 {
		t.Errorf("alpha under eraser = %d, want ~0", a)
	}
	if c := dst.RGBAAt(15, 1); c != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel outside eraser = %v, want untouched red", c)
	}
}

func TestStrokeOutsideBuffer(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var p Painter
	if got := p.Stroke(dst, Segment{100, 100, 120, 120, 3}, color.Black, xdraw.Over); !got.Empty() {
		t.Errorf("touched = %v, want empty", got)
	}
}

func TestStrokeClipsToBuffer(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var p Painter
	got := p.Stroke(dst, Segment{-5, 5, 5, 5, 2}, color.Black, xdraw.Over)
	if !got.In(dst.Bounds()) {
		t.Errorf("touched %v escapes buffer %v", got, dst.Bounds())
	}
	if a := dst.RGBAAt(2, 5).A; a < 250 {
		t.Errorf("alpha inside visible part = %d, want ~255", a)
	}
}

func TestPolylineBounds(t *testing.T) {
	pts := []stroke.Point{{X: 10, Y: 10}, {X: 30, Y: 4.5}, {X: 20, Y: 20}}
	if got, want := PolylineBounds(pts, 4), image.Rect(6, 0, 34, 24); got != want {
		t.Errorf("PolylineBounds = %v, want %v", got, want)
	}
	if got := PolylineBounds(nil, 4); !got.Empty() {
		t.Errorf("PolylineBounds(nil) = %v, want empty", got)
	}
}

func TestPolylineRoundJoin(t *testing.T) {
	// mirror flips a point or pixel row vertically inside a 35px buffer.
	tests := []struct {
		name   string
		mirror bool
	}{
		{"turn towards +y", false},
		{"turn towards -y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy := func(y float64) float64 {
				if tt.mirror {
					return 35 - y
				}
				return y
			}
			py := func(y int) int {
				if tt.mirror {
					return 34 - y
				}
				return y
			}

			dst := image.NewRGBA(image.Rect(0, 0, 35, 35))
			var p Painter
			pts := []stroke.Point{{X: 5, Y: fy(5)}, {X: 30, Y: fy(5)}, {X: 30, Y: fy(30)}}
			p.Polyline(dst, pts, 6, color.Black, xdraw.Over)

			for _, c := range []struct {
				x, y    int
				covered bool
			}{
				{31, 4, true},  // outer side of the join
				{28, 7, true},  // inner side of the join
				{15, 5, true},  // first leg
				{30, 20, true}, // second leg
				{34, 1, false}, // beyond the round join
				{20, 20, false},
			} {
				a := dst.RGBAAt(c.x, py(c.y)).A
				if c.covered && a < 200 {
					t.Errorf("alpha at (%d,%d) = %d, want covered", c.x, py(c.y), a)
				}
				if !c.covered && a != 0 {
					t.Errorf("alpha at (%d,%d) = %d, want 0", c.x, py(c.y), a)
				}
			}
		})
	}
}

func TestPolylineEmpty(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var p Painter
	if got := p.Polyline(dst, nil, 3, color.Black, xdraw.Over); !got.Empty() {
		t.Errorf("touched = %v, want empty", got)
	}
}

func TestPolylineSinglePointIsDot(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	var p Painter
	p.Polyline(dst, []stroke.Point{{X: 10, Y: 10}}, 6, color.Black, xdraw.Over)
	if a := dst.RGBAAt(10, 10).A; a < 250 {
		t.Errorf("alpha at the dot = %d, want ~255", a)
	}
	if a := dst.RGBAAt(10, 15).A; a != 0 {
		t.Errorf("alpha outside the dot = %d, want 0", a)
	}
}
