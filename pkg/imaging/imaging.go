// Package imaging serializes rendered pixel buffers to image files.
// PPM is the native output format; PNG, TIFF and BMP are provided for
// convenience via the standard library and golang.org/x/image encoders.
package imaging

import (
	"bufio"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-terrain-raster/pkg/renderer"
)

// Format identifies an output image encoding.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
)

// FormatFromPath derives the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	default:
		return "", errors.New("unsupported image extension").
			WithTag("path", path).
			WithTag("extension", ext)
	}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM, FormatPNG, FormatTIFF, FormatBMP:
		return Format(strings.ToLower(name)), nil
	default:
		return "", errors.New("unsupported image format").WithTag("format", name)
	}
}

// Encode writes the image to w in the given format.
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return errors.New("unsupported image format").WithTag("format", format)
	}
}

// WriteFile encodes the image to path, picking the format from the file
// extension. The file is only kept on success; a failed encode removes
// it so no partial image is left behind.
func WriteFile(path string, img *renderer.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating output file failed").
			WithTag("path", path).
			Wrap(err)
	}

	buf := bufio.NewWriter(f)
	if err := Encode(buf, img, format); err != nil {
		f.Close()
		os.Remove(path)
		return errors.New("encoding image failed").
			WithTag("path", path).
			WithTag("format", format).
			Wrap(err)
	}

	if err := buf.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return errors.New("writing output file failed").WithTag("path", path).Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.New("closing output file failed").WithTag("path", path).Wrap(err)
	}
	return nil
}
