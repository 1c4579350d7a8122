package textures

import (
	"image"
	"image/draw"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	ErrNoImages      = errors.New("textures: no images to stitch")
	ErrWidthMismatch = errors.New("textures: images to stitch differ in width")
)

// Stitch stacks images vertically, top to bottom in the order given, into a
// new RGBA sheet. The sheet is as wide as the first image and as tall as all
// images together; row r of image i lands at row r plus the summed heights of
// images 0..i-1. Every image must be as wide as the first one.
func Stitch(imgs []image.Image) (*image.RGBA, error) {
	if len(imgs) == 0 {
		return nil, ErrNoImages
	}

	width := imgs[0].Bounds().Dx()
	height := 0
	for i, img := range imgs {
		if w := img.Bounds().Dx(); w != width {
			return nil, errors.Wrapf(ErrWidthMismatch, "image %d is %d pixels wide, want %d", i, w, width)
		}
		height += img.Bounds().Dy()
	}

	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for i, img := range imgs {
		glog.V(3).Infof("stitching image %d at row %d", i, y)
		b := img.Bounds()
		dst := image.Rect(0, y, width, y+b.Dy())
		draw.Draw(sheet, dst, img, b.Min, draw.Src)
		y += b.Dy()
	}
	return sheet, nil
}
