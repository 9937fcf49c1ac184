// Package blend composites layer buffers and summarizes their content.
//
// All buffers are *image.RGBA, i.e. premultiplied alpha with 8 bits per
// channel, matching the standard library's image/draw conventions.
package blend

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// DrawOpacity composites src onto dst with source-over, aligning src's
// bounds with the same coordinates in dst. When opacity is below 1 every
// source alpha is scaled by opacity through a uniform mask. Non-positive
// opacity draws nothing.
func DrawOpacity(dst xdraw.Image, src image.Image, opacity float64) {
	r := src.Bounds()
	switch {
	case opacity <= 0:
		return
	case opacity >= 1:
		xdraw.Draw(dst, r, src, r.Min, xdraw.Over)
	default:
		mask := image.NewUniform(color.Alpha16{A: uint16(math.Round(opacity * 0xffff))})
		xdraw.DrawMask(dst, r, src, r.Min, mask, image.Point{}, xdraw.Over)
	}
}

// AverageColor returns the mean unpremultiplied color of all pixels in img
// whose alpha is non-zero, as an opaque color. The second result is false,
// and the color opaque white, when every pixel is fully transparent.
func AverageColor(img *image.RGBA) (color.NRGBA, bool) {
	var sumR, sumG, sumB, n uint64

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*4 : x*4+4]
			a := uint64(px[3])
			if a == 0 {
				continue
			}
			// Unpremultiply with rounding.
			sumR += (uint64(px[0])*255 + a/2) / a
			sumG += (uint64(px[1])*255 + a/2) / a
			sumB += (uint64(px[2])*255 + a/2) / a
			n++
		}
	}

	if n == 0 {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false
	}
	return color.NRGBA{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
		A: 0xff,
	}, true
}
