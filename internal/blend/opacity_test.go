package blend

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDrawOpacity(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		wantA   uint8
	}{
		{"opaque", 1, 255},
		{"above one", 1.5, 255},
		{"half", 0.5, 128},
		{"five percent", 0.05, 13},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
			src := solid(4, 4, color.RGBA{0, 0, 255, 255})
			DrawOpacity(dst, src, tt.opacity)

			got := dst.RGBAAt(1, 1).A
			if d := int(got) - int(tt.wantA); d < -1 || d > 1 {
				t.Errorf("alpha = %d, want %d", got, tt.wantA)
			}
		})
	}
}

func TestDrawOpacityOver(t *testing.T) {
	dst := solid(2, 2, color.RGBA{255, 255, 255, 255})
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})

	DrawOpacity(dst, src, 1)

	if got := dst.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("painted pixel = %v, want black", got)
	}
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("transparent source changed destination to %v", got)
	}
}

func TestAverageColor(t *testing.T) {
	t.Run("empty is white", func(t *testing.T) {
		got, ok := AverageColor(image.NewRGBA(image.Rect(0, 0, 8, 8)))
		if ok || got != (color.NRGBA{255, 255, 255, 255}) {
			t.Errorf("AverageColor = %v, %v; want white, false", got, ok)
		}
	})

	t.Run("mean of painted pixels", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
		img.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})
		got, ok := AverageColor(img)
		if !ok || got != (color.NRGBA{127, 0, 127, 255}) {
			t.Errorf("AverageColor = %v, %v; want {127 0 127 255}, true", got, ok)
		}
	})

	t.Run("unpremultiplies", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.SetRGBA(0, 0, color.RGBA{64, 0, 0, 128}) // 50% red
		got, _ := AverageColor(img)
		if got.R < 126 || got.R > 128 || got.G != 0 || got.B != 0 {
			t.Errorf("AverageColor = %v, want ~{127 0 0 255}", got)
		}
	})
}
