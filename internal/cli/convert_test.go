package cli

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"imgconv/pkg/convert"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 80, G: 90, B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.png")
	writeTestPNG(t, source)

	output := filepath.Join(dir, "out.pdf")
	err := ConvertFile(convertOpts{sourceImage: source, outputFile: output, format: "pdf"})
	if err != nil {
		t.Fatalf("Error converting file: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Error reading output: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		t.Error("Expected PDF output")
	}
}

func TestConvertFileDefaultsOutputPath(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.png")
	writeTestPNG(t, source)

	if err := ConvertFile(convertOpts{sourceImage: source, format: "svg"}); err != nil {
		t.Fatalf("Error converting file: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "source.svg")); err != nil {
		t.Errorf("Expected default output next to source: %v", err)
	}
}

func TestConvertFileUnsupportedFormat(t *testing.T) {
	err := ConvertFile(convertOpts{sourceImage: "whatever.png", format: "tiff"})
	if !errors.Is(err, convert.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
