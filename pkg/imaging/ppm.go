package imaging

import (
	"fmt"
	"io"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/df07/go-terrain-raster/pkg/renderer"
)

// WritePPM writes the image as binary PPM (P6): an ASCII header with
// dimensions and maximum channel value, followed by raw RGB bytes in
// row-major order, top row first.
func WritePPM(w io.Writer, img *renderer.Image) error {
	if img == nil || len(img.Pix) == 0 {
		return errors.New("nothing to write: empty image")
	}
	if len(img.Pix) != img.Width*img.Height*3 {
		return errors.New("pixel buffer does not match dimensions").
			WithTag("width", img.Width).
			WithTag("height", img.Height).
			WithTag("bytes", len(img.Pix))
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return errors.New("writing ppm header failed").Wrap(err)
	}
	if _, err := w.Write(img.Pix); err != nil {
		return errors.New("writing ppm pixels failed").Wrap(err)
	}
	return nil
}
