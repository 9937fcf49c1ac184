package sketch

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const viewEpsilon = 1e-6

func near(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestNewViewCentered(t *testing.T) {
	v := NewView(800, 600)
	s := v.State()
	if s.Center != Pt(400, 300) || s.Zoom != 1 || s.Rotation != 0 {
		t.Errorf("NewView state = %+v, want center (400,300), zoom 1, rotation 0", s)
	}
	// The identity camera maps the client area onto itself.
	if got := v.ScreenToWorld(Pt(10, 20)); !near(got, Pt(10, 20), viewEpsilon) {
		t.Errorf("ScreenToWorld(10,20) = %v, want (10,20)", got)
	}
}

func TestMatrixApplicationOrder(t *testing.T) {
	v := NewView(200, 100)
	v.SetState(ViewState{Center: Pt(50, 50), Zoom: 2, Rotation: 90})

	// The view centre always lands on the screen centre.
	if got := v.WorldToScreen(Pt(50, 50)); !near(got, Pt(100, 50), viewEpsilon) {
		t.Errorf("WorldToScreen(center) = %v, want (100,50)", got)
	}
	// One world unit right of the centre: scaled by 2, rotated 90 degrees
	// clockwise on a y-down screen, so it ends up 2 pixels below.
	if got := v.WorldToScreen(Pt(51, 50)); !near(got, Pt(100, 52), viewEpsilon) {
		t.Errorf("WorldToScreen(center+x) = %v, want (100,52)", got)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := NewView(1024, 768)
	for i := 0; i < 500; i++ {
		v.SetState(ViewState{
			Center:   Pt(rng.Float64()*4000-2000, rng.Float64()*4000-2000),
			Zoom:     MinZoom + rng.Float64()*(MaxZoom-MinZoom),
			Rotation: rng.Float64()*1440 - 720,
		})
		p := Pt(rng.Float64()*3000-1000, rng.Float64()*3000-1000)
		got := v.WorldToScreen(v.ScreenToWorld(p))
		if !near(got, p, 1e-6) {
			t.Fatalf("state %+v: WorldToScreen(ScreenToWorld(%v)) = %v", v.State(), p, got)
		}
	}
}

func TestInverseMatchesGonum(t *testing.T) {
	v := NewView(640, 480)
	v.SetState(ViewState{Center: Pt(123, -45), Zoom: 3.7, Rotation: 33})
	m := v.Matrix()

	a := mat.NewDense(3, 3, []float64{
		m.A, m.B, m.C,
		m.D, m.E, m.F,
		0, 0, 1,
	})
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		t.Fatalf("gonum Inverse: %v", err)
	}

	got := m.Invert()
	want := Matrix{
		A: inv.At(0, 0), B: inv.At(0, 1), C: inv.At(0, 2),
		D: inv.At(1, 0), E: inv.At(1, 1), F: inv.At(1, 2),
	}
	for i, d := range []float64{got.A - want.A, got.B - want.B, got.C - want.C, got.D - want.D, got.E - want.E, got.F - want.F} {
		if math.Abs(d) > 1e-9 {
			t.Fatalf("coefficient %d differs: got %+v, want %+v", i, got, want)
		}
	}
}

func TestPanFollowsPointer(t *testing.T) {
	tests := []struct {
		name  string
		state ViewState
	}{
		{"identity", ViewState{Center: Pt(400, 300), Zoom: 1}},
		{"zoomed", ViewState{Center: Pt(400, 300), Zoom: 4}},
		{"rotated", ViewState{Center: Pt(10, 10), Zoom: 0.5, Rotation: 135}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(800, 600)
			v.SetState(tt.state)

			start := Pt(100, 100)
			grabbed := v.ScreenToWorld(start)
			v.PanStart(start)
			v.PanUpdate(Pt(130, 90))
			v.PanUpdate(Pt(160, 140))

			// The world point that was grabbed stays under the pointer.
			if got := v.WorldToScreen(grabbed); !near(got, Pt(160, 140), viewEpsilon) {
				t.Errorf("grabbed point on screen = %v, want (160,140)", got)
			}
		})
	}
}

func TestPanScalesByZoom(t *testing.T) {
	v := NewView(800, 600)
	v.SetState(ViewState{Center: Pt(0, 0), Zoom: 2})
	v.PanStart(Pt(0, 0))
	v.PanUpdate(Pt(10, 0))
	if got := v.Center(); !near(got, Pt(-5, 0), viewEpsilon) {
		t.Errorf("center after 10px pan at zoom 2 = %v, want (-5,0)", got)
	}
}

func TestRotateSessionRelative(t *testing.T) {
	v := NewView(200, 200)
	v.SetState(ViewState{Center: Pt(100, 100), Zoom: 1, Rotation: 10})
	v.RotateStart()

	start := Pt(200, 100) // angle 0 around the screen centre
	v.RotateUpdate(Pt(150, 150), start)
	v.RotateUpdate(Pt(100, 200), start) // 90 degrees

	if got := v.Rotation(); math.Abs(got-100) > viewEpsilon {
		t.Errorf("Rotation = %v, want 100", got)
	}

	// Returning to the start point restores the baseline exactly.
	v.RotateUpdate(start, start)
	if got := v.Rotation(); math.Abs(got-10) > viewEpsilon {
		t.Errorf("Rotation after returning = %v, want 10", got)
	}
}

func TestZoomExponentialResponse(t *testing.T) {
	v := NewView(800, 600)
	v.ZoomStart()
	start := Pt(400, 300)
	v.ZoomUpdate(Pt(600, 300), start)

	if got, want := v.Zoom(), math.E; math.Abs(got-want) > 1e-9 {
		t.Errorf("Zoom after 200px drag = %v, want %v", got, want)
	}
}

func TestZoomClamped(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want float64
	}{
		{"far right", 5000, MaxZoom},
		{"far left", -5000, MinZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(800, 600)
			v.ZoomStart()
			v.ZoomUpdate(Pt(400+tt.dx, 300), Pt(400, 300))
			if got := v.Zoom(); got != tt.want {
				t.Errorf("Zoom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZoomAnchorsSessionStart(t *testing.T) {
	v := NewView(800, 600)
	v.SetState(ViewState{Center: Pt(250, 125), Zoom: 1.5, Rotation: 30})

	start := Pt(620, 80)
	before := v.ScreenToWorld(start)

	v.ZoomStart()
	for _, x := range []float64{650, 700, 560, 300, 900} {
		v.ZoomUpdate(Pt(x, 120), start)
		if after := v.ScreenToWorld(start); !near(after, before, 1e-6) {
			t.Fatalf("after update to x=%v, ScreenToWorld(start) = %v, want %v", x, after, before)
		}
	}
}

func TestWithZoomOptions(t *testing.T) {
	v := NewView(100, 100, WithZoomSensitivity(0.01), WithZoomLimits(0.5, 2))
	v.ZoomStart()
	v.ZoomUpdate(Pt(150, 50), Pt(50, 50)) // e^(100*0.01) = e > 2
	if got := v.Zoom(); got != 2 {
		t.Errorf("Zoom = %v, want clamp at 2", got)
	}

	// Limits that would allow zero are rejected.
	v = NewView(100, 100, WithZoomLimits(0, 5))
	v.SetState(ViewState{Zoom: 0})
	if got := v.Zoom(); got != MinZoom {
		t.Errorf("Zoom = %v, want %v", got, MinZoom)
	}
}

func TestResetAndResize(t *testing.T) {
	v := NewView(100, 100)
	v.SetState(ViewState{Center: Pt(5, 5), Zoom: 3, Rotation: 45})
	v.Resize(300, 200)
	v.Reset()
	if got := v.State(); got != (ViewState{Center: Pt(150, 100), Zoom: 1}) {
		t.Errorf("state after Resize+Reset = %+v", got)
	}
	if w, h := v.ClientSize(); w != 300 || h != 200 {
		t.Errorf("ClientSize = %dx%d, want 300x200", w, h)
	}
}
