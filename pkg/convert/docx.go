package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"

	"imgconv/pkg/raster"
)

const (
	docxHeading = "Converted Image"

	// docxMaxInches bounds the displayed image size in the document.
	docxMaxInches = 6.0
)

// docxDisplaySize fits the image into a 6 inch bounding box, preserving
// aspect ratio: the larger pixel dimension is displayed at 6in, the other is
// scaled proportionally.
func docxDisplaySize(imgWidth, imgHeight int) (widthIn, heightIn float64) {
	if imgWidth > imgHeight {
		widthIn = docxMaxInches
		heightIn = docxMaxInches * float64(imgHeight) / float64(imgWidth)
	} else {
		heightIn = docxMaxInches
		widthIn = docxMaxInches * float64(imgWidth) / float64(imgHeight)
	}
	return widthIn, heightIn
}

func encodeDOCX(r *raster.Raster) ([]byte, error) {
	pngBytes, err := pngSource(r)
	if err != nil {
		return nil, err
	}

	// godocx reads pictures and writes documents through the filesystem,
	// so the intermediate PNG and the document itself go through a scratch
	// directory that is removed when encoding finishes.
	scratch, err := os.MkdirTemp("", "imgconv-docx-")
	if err != nil {
		return nil, fmt.Errorf("create docx scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	picPath := filepath.Join(scratch, "image.png")
	if err := os.WriteFile(picPath, pngBytes, 0o644); err != nil {
		return nil, fmt.Errorf("write docx image: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, &EncodeError{Format: "docx", Err: err}
	}

	if _, err := doc.AddHeading(docxHeading, 0); err != nil {
		return nil, &EncodeError{Format: "docx", Err: err}
	}

	widthIn, heightIn := docxDisplaySize(r.Width, r.Height)
	if _, err := doc.AddPicture(picPath, units.Inch(widthIn), units.Inch(heightIn)); err != nil {
		return nil, &EncodeError{Format: "docx", Err: err}
	}

	docPath := filepath.Join(scratch, "out.docx")
	if err := doc.SaveTo(docPath); err != nil {
		return nil, &EncodeError{Format: "docx", Err: err}
	}

	out, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("read docx output: %w", err)
	}
	return out, nil
}
