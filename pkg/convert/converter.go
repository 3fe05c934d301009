// Package convert produces output bytes in one of the supported target
// formats (JPEG, PNG, SVG, PDF, DOCX) from a decoded raster image. A single
// conversion is synchronous and CPU-bound, with no shared state between
// conversions.
package convert

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"imgconv/pkg/raster"
)

const (
	// jpegQuality matches the service contract: quality 95 on a 1-100
	// scale, no chroma subsampling override.
	jpegQuality = 95
)

// Result is the outcome of a successful conversion. OutputBytes is a fully
// valid encoding of the source image in the target container.
type Result struct {
	OutputBytes []byte
	OutputPath  string
}

// Encode converts the decoded image into target format bytes. The input
// raster is never mutated.
func Encode(r *raster.Raster, target Format) ([]byte, error) {
	switch target {
	case JPEG:
		return encodeJPEG(r)
	case PNG:
		return encodePNG(r)
	case SVG:
		return encodeSVG(r)
	case PDF:
		return encodePDF(r)
	case DOCX:
		return encodeDOCX(r)
	default:
		return nil, &EncodeError{Format: target.String(), Err: ErrUnsupportedFormat}
	}
}

// Convert encodes the image and writes the result to destPath. The write
// goes through a temporary file in the destination directory so that a
// failed conversion leaves no partial output behind.
func Convert(r *raster.Raster, target Format, destPath string) (Result, error) {
	out, err := Encode(r, target)
	if err != nil {
		return Result{}, err
	}

	if err := writeFileAtomic(destPath, out); err != nil {
		return Result{}, fmt.Errorf("write %s output: %w", target, err)
	}

	return Result{OutputBytes: out, OutputPath: destPath}, nil
}

func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".convert-*")
	if err != nil {
		return err
	}

	if _, err = tmp.Write(content); err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func encodeJPEG(r *raster.Raster) ([]byte, error) {
	img := r.Img
	// JPEG has no transparency. Alpha and palette sources are flattened
	// onto white first, everything else is encoded as is.
	if r.Mode.HasAlpha() || r.Mode == raster.ModeIndexed {
		img = FlattenWhite(img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, &EncodeError{Format: "jpeg", Err: err}
	}
	return buf.Bytes(), nil
}

func encodePNG(r *raster.Raster) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Img); err != nil {
		return nil, &EncodeError{Format: "png", Err: err}
	}
	return buf.Bytes(), nil
}

// pngSource re-encodes the raster as PNG bytes in memory. The document
// formats (SVG, PDF, DOCX) all embed the image this way.
func pngSource(r *raster.Raster) ([]byte, error) {
	return encodePNG(r)
}
