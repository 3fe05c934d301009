// Package raster decodes uploaded files into an in-memory raster
// representation and classifies their color mode. Supported source
// containers are PNG, JPEG, GIF, BMP, TIFF and WEBP.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type ColorMode int

const (
	ModeRGB ColorMode = iota
	ModeRGBA
	ModeGrayscale
	ModeIndexed
	ModeCMYK
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeRGBA:
		return "rgba"
	case ModeGrayscale:
		return "grayscale"
	case ModeIndexed:
		return "indexed"
	case ModeCMYK:
		return "cmyk"
	default:
		return "unknown"
	}
}

// HasAlpha reports whether the mode can carry transparency that must be
// flattened before encoding into an opaque container.
func (m ColorMode) HasAlpha() bool {
	return m == ModeRGBA
}

// Raster is a decoded source image. It is owned by the conversion request
// that decoded it and is never shared between requests.
type Raster struct {
	Width  int
	Height int
	Mode   ColorMode
	// Format is the source container name reported by the registered
	// decoder, e.g. "png" or "webp".
	Format string

	Img image.Image
}

// DecodeError indicates that a byte stream is not a valid raster image in
// any supported format, or is truncated or corrupt. The caller is
// responsible for removing the invalid source file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var supportedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".tif":  {},
	".webp": {},
}

// SupportedExt reports whether the file name carries an extension of a
// supported source container.
func SupportedExt(name string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Decode reads and decodes the raster image at path. It has no side effects
// beyond reading the file.
func Decode(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	defer f.Close()

	return decode(path, f)
}

// DecodeBytes decodes an in-memory byte stream. The name is only used for
// error reporting.
func DecodeBytes(name string, data []byte) (*Raster, error) {
	return decode(name, bytes.NewReader(data))
}

func decode(name string, r io.Reader) (*Raster, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	bounds := img.Bounds()
	return &Raster{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mode:   classifyMode(img),
		Format: format,
		Img:    img,
	}, nil
}

func classifyMode(img image.Image) ColorMode {
	switch img.(type) {
	case *image.Paletted:
		return ModeIndexed
	case *image.Gray, *image.Gray16:
		return ModeGrayscale
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeRGB
	default:
		// NRGBA, RGBA and their 16-bit variants all carry an alpha channel.
		return ModeRGBA
	}
}
