package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	formatLabel = "format"
	statusLabel = "status"
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "terrain_renders_total",
		Help: "The number of render requests served, by format and outcome.",
	}, []string{
		formatLabel,
		statusLabel,
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "terrain_render_duration_seconds",
		Help:    "Wall time spent rasterizing a render request.",
		Buckets: prometheus.DefBuckets,
	})

	meshTriangles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "terrain_mesh_triangles",
		Help: "The number of triangles in the loaded mesh.",
	})
)
