package sketch

import (
	"image"
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate(10, 0) * Scale(2, 2): scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 2)
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	const epsilon = 1e-9

	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(5, -7)},
		{"scale", Scale(0.1, 0.1)},
		{"rotate", Rotate(1.234)},
		{"composite", Translate(400, 300).Multiply(Rotate(math.Pi / 3)).Multiply(Scale(2.5, 2.5)).Multiply(Translate(-12, 40))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.m.Invert())
			id := Identity()
			for _, d := range []float64{got.A - id.A, got.B - id.B, got.C - id.C, got.D - id.D, got.E - id.E, got.F - id.F} {
				if math.Abs(d) > epsilon {
					t.Fatalf("m * m^-1 = %+v, want identity", got)
				}
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	got := Translate(100, 100).TransformVector(Pt(3, 4))
	if got != Pt(3, 4) {
		t.Errorf("TransformVector = %v, want (3,4)", got)
	}
}

func TestTransformRect(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		r    image.Rectangle
		want image.Rectangle
	}{
		{"identity", Identity(), image.Rect(1, 2, 3, 4), image.Rect(1, 2, 3, 4)},
		{"scale", Scale(2, 3), image.Rect(1, 1, 2, 2), image.Rect(2, 3, 4, 6)},
		{"translate fractional", Translate(0.5, 0.5), image.Rect(0, 0, 2, 2), image.Rect(0, 0, 3, 3)},
		{"rotate 90", Rotate(math.Pi / 2), image.Rect(0, 0, 10, 5), image.Rect(-5, 0, 0, 10)},
		{"empty", Scale(2, 2), image.Rectangle{}, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformRect(tt.r); got != tt.want {
				t.Errorf("TransformRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestAff3Layout(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a := m.Aff3()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if a[i] != want {
			t.Errorf("Aff3()[%d] = %v, want %v", i, a[i], want)
		}
	}
}
