package debugdraw

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an image format a plot can be encoded to.
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

const ErrorUnknownFormat = "error: unknown image format"

// ErrUnknownFormat is returned when encoding to a format other than PNG or WebP.
var ErrUnknownFormat = errors.New(ErrorUnknownFormat)

// FormatFromPath returns the image format matching the path's file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch Format(ext) {
	case FormatPNG, FormatWebP:
		return Format(ext), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes the image to w in the given format. WebP images are encoded losslessly.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes the image to the file at the given path, picking the format from the path's extension.
func Save(path string, img image.Image) error {

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}

	return f.Close()

}
