package ttesting

import (
	"image"
	"image/color"
)

// SolidImage returns a w*h RGBA image filled with c.
func SolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// PatternImage returns a w*h RGBA image whose pixels encode their own
// coordinates and seed, so misplaced rows show up in pixel comparisons.
func PatternImage(w, h int, seed uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: seed, A: 0xFF})
		}
	}
	return img
}
