package convert

import (
	"bytes"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"imgconv/pkg/raster"
)

const (
	// Letter page dimensions in points.
	letterWidthPt  = 612.0
	letterHeightPt = 792.0

	// pdfPageFill scales the image to 80% of the page's limiting
	// dimension, preserving aspect ratio.
	pdfPageFill = 0.8
)

// pdfPlacement computes the drawn size and centered position of an image on
// a Letter page.
func pdfPlacement(imgWidth, imgHeight int) (x, y, w, h float64) {
	scale := math.Min(letterWidthPt/float64(imgWidth), letterHeightPt/float64(imgHeight)) * pdfPageFill
	w = float64(imgWidth) * scale
	h = float64(imgHeight) * scale
	x = (letterWidthPt - w) / 2
	y = (letterHeightPt - h) / 2
	return x, y, w, h
}

func encodePDF(r *raster.Raster) ([]byte, error) {
	pngBytes, err := pngSource(r)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	// Pin the embedded dates so identical inputs produce identical bytes.
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	x, y, w, h := pdfPlacement(r.Width, r.Height)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("source", opts, bytes.NewReader(pngBytes))
	pdf.ImageOptions("source", x, y, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &EncodeError{Format: "pdf", Err: err}
	}
	return buf.Bytes(), nil
}
