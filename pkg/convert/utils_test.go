package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"imgconv/pkg/raster"
)

// rasterFromImage routes a test image through the real decode path so tests
// exercise the same mode classification the service uses.
func rasterFromImage(t *testing.T, img image.Image) *raster.Raster {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Error encoding test image: %v", err)
	}

	r, err := raster.DecodeBytes("test.png", buf.Bytes())
	if err != nil {
		t.Fatalf("Error decoding test image: %v", err)
	}
	return r
}

func solidNRGBA(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
