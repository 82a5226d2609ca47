// Package server exposes terrain rendering over HTTP: a dataset is
// loaded and triangulated once at startup, then rendered on demand at
// the width and format each request asks for.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"

	"github.com/df07/go-terrain-raster/pkg/geo"
	"github.com/df07/go-terrain-raster/pkg/geometry"
	"github.com/df07/go-terrain-raster/pkg/imaging"
	"github.com/df07/go-terrain-raster/pkg/renderer"
	"github.com/df07/go-terrain-raster/pkg/triangulate"
)

// Config describes a render server.
type Config struct {
	DatasetPath   string  // Terrain records to serve
	Planar        bool    // Dataset is already projected
	MaxEdgeLength float64 // Triangulation edge filter
	MaxWidth      int     // Largest accepted render width (0 = DefaultMaxWidth)
}

// DefaultMaxWidth caps requested render widths; a render's cost grows
// quadratically with width.
const DefaultMaxWidth = 4096

// Server renders a fixed terrain mesh over HTTP.
type Server struct {
	mesh     *geometry.Mesh
	maxWidth int
}

// New loads and triangulates the configured dataset.
func New(config Config) (*Server, error) {
	projection := geo.Lambert93()
	if config.Planar {
		projection = geo.Identity()
	}

	points, err := geo.LoadFile(config.DatasetPath, projection)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("dataset contains no points").
			WithTag("path", config.DatasetPath)
	}

	maxEdge := config.MaxEdgeLength
	if maxEdge == 0 {
		maxEdge = triangulate.DefaultMaxEdgeLength
	}

	mesh, rejected, err := triangulate.Build(points, maxEdge)
	if err != nil {
		return nil, err
	}
	logs.WithTag("points", len(points)).
		WithTag("triangles", len(mesh.Triangles)).
		WithTag("rejected", rejected).
		Info("dataset loaded")

	meshTriangles.Set(float64(len(mesh.Triangles)))

	maxWidth := config.MaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	return &Server{mesh: mesh, maxWidth: maxWidth}, nil
}

// Handler returns the server's route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// handleRender serves GET /api/render?width=W&format=png|ppm|tiff|bmp.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	width := 1024
	if raw := r.URL.Query().Get("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "width must be a positive integer")
			return
		}
		width = parsed
	}
	if width > s.maxWidth {
		writeError(w, http.StatusBadRequest, "width exceeds server limit")
		return
	}

	format := imaging.FormatPNG
	if raw := r.URL.Query().Get("format"); raw != "" {
		parsed, err := imaging.ParseFormat(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unsupported format")
			return
		}
		format = parsed
	}

	start := time.Now()
	img, stats, err := renderer.Render(s.mesh, renderer.Config{Width: width})
	if err != nil {
		rendersTotal.WithLabelValues(string(format), "error").Inc()
		logs.Error(errors.New("render failed").WithTag("width", width).Wrap(err))
		writeError(w, http.StatusUnprocessableEntity, "mesh is not renderable")
		return
	}
	renderDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", contentType(format))
	if err := imaging.Encode(w, img, format); err != nil {
		// Headers are gone; all we can do is log and count it.
		rendersTotal.WithLabelValues(string(format), "error").Inc()
		logs.Error(errors.New("writing render response failed").Wrap(err))
		return
	}
	rendersTotal.WithLabelValues(string(format), "ok").Inc()

	logs.WithTag("width", stats.Width).
		WithTag("height", stats.Height).
		WithTag("format", format).
		WithTag("elapsed", stats.Elapsed.String()).
		Info("render served")
}

func contentType(format imaging.Format) string {
	switch format {
	case imaging.FormatPNG:
		return "image/png"
	case imaging.FormatTIFF:
		return "image/tiff"
	case imaging.FormatBMP:
		return "image/bmp"
	default:
		return "image/x-portable-pixmap"
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body, _ := json.Marshal(map[string]string{"error": message})
	w.Write(body)
}
