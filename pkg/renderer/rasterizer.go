package renderer

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-terrain-raster/pkg/geometry"
)

// Config contains rasterization settings.
type Config struct {
	Width    int                     // Output width in pixels; height follows the mesh aspect ratio
	Workers  int                     // Parallel row workers (0 = CPU count)
	QuadTree geometry.QuadTreeConfig // Spatial index tuning (zero value = defaults)
}

// Stats summarizes a completed render.
type Stats struct {
	Triangles     int           // Triangles indexed in the quadtree
	Width, Height int           // Output dimensions
	CoveredPixels int64         // Pixels covered by some triangle
	Elapsed       time.Duration // Wall time for index build plus pixel loop
}

// Image is a row-major, top-to-bottom RGB pixel buffer. Row 0 is the
// northern edge of the terrain. It implements image.Image so stdlib and
// x/image encoders can consume it directly.
type Image struct {
	Width, Height int
	Pix           []uint8 // len = Width * Height * 3
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.Width, img.Height) }

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	i := (y*img.Width + x) * 3
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255}
}

// RGBAt returns the pixel at (x, y) as a Color.
func (img *Image) RGBAt(x, y int) Color {
	i := (y*img.Width + x) * 3
	return Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// Render rasterizes a mesh into a shaded, colorized RGB image.
//
// An empty mesh renders to nothing: the image is nil and the error is
// nil. A mesh with no horizontal extent is unrenderable and returns an
// error. Pixels not covered by any triangle are black. The output is
// deterministic: the same mesh and config produce byte-identical
// buffers regardless of worker count.
func Render(mesh *geometry.Mesh, config Config) (*Image, Stats, error) {
	var stats Stats
	if len(mesh.Points) == 0 {
		return nil, stats, nil
	}
	if config.Width <= 0 {
		return nil, stats, errors.New("output width must be positive").
			WithTag("width", config.Width)
	}

	start := time.Now()

	bounds, _ := mesh.Bounds()
	minZ, maxZ, _ := mesh.ZRange()

	rangeX := bounds.MaxX - bounds.MinX
	rangeY := bounds.MaxY - bounds.MinY
	if rangeX <= 0 || rangeY <= 0 {
		return nil, stats, errors.New("mesh bounds span no area").
			WithTag("range_x", rangeX).
			WithTag("range_y", rangeY)
	}

	height := int(math.Round(float64(config.Width) * rangeY / rangeX))
	if height < 1 {
		return nil, stats, errors.New("computed image height is zero").
			WithTag("width", config.Width).
			WithTag("aspect", rangeY/rangeX)
	}

	qtConfig := config.QuadTree
	if qtConfig == (geometry.QuadTreeConfig{}) {
		qtConfig = geometry.DefaultQuadTreeConfig()
	}
	index := geometry.NewQuadTreeWithConfig(bounds, qtConfig)
	for _, t := range mesh.Triangles {
		index.Insert(t, mesh.Points)
	}

	img := &Image{
		Width:  config.Width,
		Height: height,
		Pix:    make([]uint8, config.Width*height*3),
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}

	pixelSizeX := rangeX / float64(config.Width)
	pixelSizeY := rangeY / float64(height)

	var covered atomic.Int64

	// The quadtree is complete and immutable from here on, so rows are
	// independent: each worker writes a disjoint slice of the buffer.
	var g errgroup.Group
	rowsPerWorker := (height + workers - 1) / workers
	for startRow := 0; startRow < height; startRow += rowsPerWorker {
		startRow := startRow
		endRow := min(startRow+rowsPerWorker, height)
		g.Go(func() error {
			covered.Add(renderRows(img, index, mesh, startRow, endRow, bounds, pixelSizeX, pixelSizeY, minZ, maxZ))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}

	stats = Stats{
		Triangles:     len(mesh.Triangles),
		Width:         config.Width,
		Height:        height,
		CoveredPixels: covered.Load(),
		Elapsed:       time.Since(start),
	}
	return img, stats, nil
}

// renderRows rasterizes rows [startRow, endRow) and returns the number
// of covered pixels it produced.
func renderRows(img *Image, index *geometry.QuadTree, mesh *geometry.Mesh,
	startRow, endRow int, bounds geometry.BoundingBox,
	pixelSizeX, pixelSizeY, minZ, maxZ float64) int64 {

	var covered int64

	for row := startRow; row < endRow; row++ {
		// Row 0 is the top of the image, so y runs south from maxY.
		y := bounds.MaxY - (float64(row)+0.5)*pixelSizeY
		offset := row * img.Width * 3

		for col := 0; col < img.Width; col++ {
			x := bounds.MinX + (float64(col)+0.5)*pixelSizeX

			var c Color
			if t, ok := index.Find(x, y, mesh.Points); ok {
				p1, p2, p3 := mesh.Vertices(t)
				if z, ok := geometry.InterpolateZ(x, y, p1, p2, p3); ok {
					c = ColorFor(z, minZ, maxZ)
					shade := ShadeFactor(p1, p2, p3)
					c.R = scaleChannel(c.R, shade)
					c.G = scaleChannel(c.G, shade)
					c.B = scaleChannel(c.B, shade)
					covered++
				}
			}

			img.Pix[offset] = c.R
			img.Pix[offset+1] = c.G
			img.Pix[offset+2] = c.B
			offset += 3
		}
	}

	return covered
}

func scaleChannel(c uint8, shade float64) uint8 {
	return uint8(math.Min(255, float64(c)*shade))
}
