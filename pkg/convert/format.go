package convert

import (
	"strings"
)

// Format is the closed set of supported target formats. Conversion dispatch
// switches exhaustively over it, unknown targets never reach an encoder.
type Format int

const (
	JPEG Format = iota
	PNG
	SVG
	PDF
	DOCX
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	case DOCX:
		return "docx"
	default:
		return "unknown"
	}
}

// Ext returns the file extension for outputs in this format, without the
// leading dot.
func (f Format) Ext() string {
	if f == JPEG {
		return "jpg"
	}
	return f.String()
}

// ParseFormat maps a user-supplied format name to a Format. Matching is
// case-insensitive and accepts both "jpg" and "jpeg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	case "docx":
		return DOCX, nil
	default:
		return 0, &EncodeError{Format: s, Err: ErrUnsupportedFormat}
	}
}
