package convert

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FlattenWhite composites img onto an opaque white canvas of the same
// dimensions, using the alpha channel as the blend mask. Fully transparent
// pixels become pure white. The input image is not mutated.
func FlattenWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}
