package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"

	"github.com/df07/go-terrain-raster/pkg/geo"
	"github.com/df07/go-terrain-raster/pkg/geometry"
	"github.com/df07/go-terrain-raster/pkg/imaging"
	"github.com/df07/go-terrain-raster/pkg/renderer"
	"github.com/df07/go-terrain-raster/pkg/triangulate"
)

type options struct {
	input     string
	output    string
	width     int
	maxEdge   float64
	workers   int
	planar    bool
	quadDepth int
	quadCap   int
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "input", "", "Input data file with 'lat lon alt' records")
	flag.StringVar(&opts.output, "output", "output.ppm", "Output image path (.ppm, .png, .tiff or .bmp)")
	flag.IntVar(&opts.width, "width", 1024, "Output image width in pixels")
	flag.Float64Var(&opts.maxEdge, "max-edge", triangulate.DefaultMaxEdgeLength, "Maximum triangle edge length in meters (0 disables the filter)")
	flag.IntVar(&opts.workers, "workers", 0, "Parallel render workers (0 = CPU count)")
	flag.BoolVar(&opts.planar, "planar", false, "Skip geodetic projection, input coordinates are already planar")
	flag.IntVar(&opts.quadDepth, "quadtree-depth", 10, "Maximum quadtree depth")
	flag.IntVar(&opts.quadCap, "quadtree-capacity", 1500, "Quadtree leaf capacity before subdivision")
	logLevel := flag.String("log-level", logs.InfoLevel.String(), "Log level (debug|info|warning|error)")
	flag.Parse()

	logs.SetLevel(logs.ParseLevel(*logLevel))
	logs.Encoder = json.Marshal

	if opts.input == "" {
		fmt.Fprintln(os.Stderr, "missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}
	if opts.width <= 0 {
		fmt.Fprintln(os.Stderr, "-width must be a positive integer")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		logs.Error(err)
		os.Exit(1)
	}
}

func run(opts options) error {
	projection := geo.Lambert93()
	if opts.planar {
		projection = geo.Identity()
	}

	points, err := geo.LoadFile(opts.input, projection)
	if err != nil {
		return err
	}
	logs.WithTag("points", len(points)).
		WithTag("path", opts.input).
		Info("terrain records loaded")

	if len(points) == 0 {
		logs.Info("no input points, nothing to render")
		return nil
	}

	mesh, rejected, err := triangulate.Build(points, opts.maxEdge)
	if err != nil {
		return err
	}
	logs.WithTag("triangles", len(mesh.Triangles)).
		WithTag("rejected", rejected).
		Info("triangulation complete")

	img, stats, err := renderer.Render(mesh, renderer.Config{
		Width:   opts.width,
		Workers: opts.workers,
		QuadTree: geometry.QuadTreeConfig{
			MaxDepth:     opts.quadDepth,
			MaxTriangles: opts.quadCap,
		},
	})
	if err != nil {
		return err
	}
	if img == nil {
		logs.Info("empty mesh, no image produced")
		return nil
	}

	logs.WithTag("width", stats.Width).
		WithTag("height", stats.Height).
		WithTag("covered_pixels", stats.CoveredPixels).
		WithTag("elapsed", stats.Elapsed.String()).
		Info("render complete")

	if err := imaging.WriteFile(opts.output, img); err != nil {
		return err
	}
	logs.WithTag("path", opts.output).Info("image written")
	return nil
}
