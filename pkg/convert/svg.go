package convert

import (
	"bytes"
	"encoding/base64"

	svg "github.com/ajstarks/svgo"

	"imgconv/pkg/raster"
)

// encodeSVG wraps the raster in an SVG document: the PNG bytes are base64
// encoded and embedded as a single image element at (0,0), with the canvas
// sized to the image's pixel dimensions. This is an embedding wrapper, not
// vectorization.
func encodeSVG(r *raster.Raster) ([]byte, error) {
	pngBytes, err := pngSource(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.Width, r.Height)
	canvas.Image(0, 0, r.Width, r.Height,
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(pngBytes))
	canvas.End()

	return buf.Bytes(), nil
}
