package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imgconv/pkg/raster"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"jpeg", JPEG, false},
		{"jpg", JPEG, false},
		{"JPEG", JPEG, false},
		{"png", PNG, false},
		{"svg", SVG, false},
		{"pdf", PDF, false},
		{"DOCX", DOCX, false},
		{" png ", PNG, false},
		{"bmp", 0, true},
		{"txt", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnsupportedFormat, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", tt.input, err)
		} else if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestEncodeJPEGOpaqueSource(t *testing.T) {
	src := solidNRGBA(32, 32, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	r := rasterFromImage(t, src)

	out, err := Encode(r, JPEG)
	if err != nil {
		t.Fatalf("Error encoding JPEG: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Error decoding JPEG output: %v", err)
	}

	if _, hasAlpha := decoded.(*image.NRGBA); hasAlpha {
		t.Error("JPEG output decoded to an alpha-carrying image")
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 32 {
		t.Errorf("Expected 32x32 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	cr, cg, cb, _ := decoded.At(16, 16).RGBA()
	assertNear(t, "r", int(cr>>8), 200, 10)
	assertNear(t, "g", int(cg>>8), 100, 10)
	assertNear(t, "b", int(cb>>8), 50, 10)
}

func TestEncodeJPEGTransparentBecomesWhite(t *testing.T) {
	src := solidNRGBA(32, 32, color.NRGBA{})
	r := rasterFromImage(t, src)

	if !r.Mode.HasAlpha() {
		t.Fatalf("Expected test source to classify as alpha-carrying, got %s", r.Mode)
	}

	out, err := Encode(r, JPEG)
	if err != nil {
		t.Fatalf("Error encoding JPEG: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Error decoding JPEG output: %v", err)
	}

	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}} {
		cr, cg, cb, _ := decoded.At(p.X, p.Y).RGBA()
		assertNear(t, "r", int(cr>>8), 255, 2)
		assertNear(t, "g", int(cg>>8), 255, 2)
		assertNear(t, "b", int(cb>>8), 255, 2)
	}
}

func TestEncodePNGPreservesModeAndDimensions(t *testing.T) {
	src := solidNRGBA(20, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 100})
	r := rasterFromImage(t, src)

	out, err := Encode(r, PNG)
	if err != nil {
		t.Fatalf("Error encoding PNG: %v", err)
	}

	decoded, err := raster.DecodeBytes("out.png", out)
	if err != nil {
		t.Fatalf("Error decoding PNG output: %v", err)
	}
	if decoded.Width != 20 || decoded.Height != 10 {
		t.Errorf("Expected 20x10 output, got %dx%d", decoded.Width, decoded.Height)
	}
	if decoded.Mode != r.Mode {
		t.Errorf("Expected mode %s to be preserved, got %s", r.Mode, decoded.Mode)
	}
}

func TestEncodeSVGCanvasAndSingleImageElement(t *testing.T) {
	r := rasterFromImage(t, solidNRGBA(100, 50, color.NRGBA{R: 9, G: 9, B: 9, A: 255}))

	out, err := Encode(r, SVG)
	if err != nil {
		t.Fatalf("Error encoding SVG: %v", err)
	}

	svg := string(out)
	if !strings.Contains(svg, `width="100"`) || !strings.Contains(svg, `height="50"`) {
		t.Errorf("Expected canvas dimensions 100x50 in SVG output:\n%s", svg)
	}
	if count := strings.Count(svg, "<image"); count != 1 {
		t.Errorf("Expected exactly one image element, found %d", count)
	}
	if !strings.Contains(svg, "data:image/png;base64,") {
		t.Error("Expected embedded base64 PNG data URI in SVG output")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	r := rasterFromImage(t, solidNRGBA(24, 24, color.NRGBA{R: 60, G: 70, B: 80, A: 255}))

	for _, target := range []Format{JPEG, PNG, SVG, PDF} {
		first, err := Encode(r, target)
		if err != nil {
			t.Fatalf("Error encoding %s: %v", target, err)
		}
		second, err := Encode(r, target)
		if err != nil {
			t.Fatalf("Error re-encoding %s: %v", target, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("%s output is not byte-for-byte reproducible", target)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	r := rasterFromImage(t, solidNRGBA(8, 8, color.NRGBA{A: 255}))

	_, err := Encode(r, Format(42))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Errorf("Expected EncodeError, got %T", err)
	}
}

func TestConvertWritesDestination(t *testing.T) {
	r := rasterFromImage(t, solidNRGBA(16, 16, color.NRGBA{R: 5, A: 255}))
	dest := filepath.Join(t.TempDir(), "out.png")

	result, err := Convert(r, PNG, dest)
	if err != nil {
		t.Fatalf("Error converting: %v", err)
	}
	if result.OutputPath != dest {
		t.Errorf("Expected output path %s, got %s", dest, result.OutputPath)
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Error reading destination: %v", err)
	}
	if !bytes.Equal(written, result.OutputBytes) {
		t.Error("Destination content does not match returned output bytes")
	}
}

func TestConvertLeavesNoPartialOutputOnFailure(t *testing.T) {
	r := rasterFromImage(t, solidNRGBA(8, 8, color.NRGBA{A: 255}))
	dir := t.TempDir()

	_, err := Convert(r, Format(42), filepath.Join(dir, "out.bin"))
	if err == nil {
		t.Fatal("Expected conversion to fail for unknown format")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files in destination dir after failure, found %d", len(entries))
	}
}

func assertNear(t *testing.T, channel string, got, want, tolerance int) {
	t.Helper()
	if got < want-tolerance || got > want+tolerance {
		t.Errorf("Expected %s channel near %d (±%d), got %d", channel, want, tolerance, got)
	}
}
