package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Formats lists the bitmap formats Encode accepts.
var Formats = []string{"png", "webp"}

// IsFormat reports whether Encode supports format.
func IsFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Encode writes img to w as PNG or lossless WebP.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// ContentType returns the MIME type of a format Encode accepts.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
