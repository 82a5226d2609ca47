// Package triangulate builds a triangle mesh over projected terrain
// points using Delaunay triangulation.
package triangulate

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/fogleman/delaunay"

	"github.com/df07/go-terrain-raster/pkg/geometry"
)

// DefaultMaxEdgeLength is the edge filter threshold in meters. Delaunay
// triangulation closes the convex hull over sparse regions with long
// skinny triangles that do not represent real surface; dropping any
// triangle with an edge beyond this length leaves holes there instead.
const DefaultMaxEdgeLength = 70.0

// Build triangulates the planar (x, y) positions of points into a mesh.
// Triangles with any edge longer than maxEdgeLength are discarded;
// a non-positive maxEdgeLength disables the filter. The returned count
// is the number of rejected triangles.
func Build(points []geometry.Point, maxEdgeLength float64) (*geometry.Mesh, int, error) {
	mesh := &geometry.Mesh{Points: points}
	if len(points) < 3 {
		return nil, 0, errors.New("not enough points to triangulate").
			WithTag("points", len(points))
	}

	coords := make([]delaunay.Point, len(points))
	for i, p := range points {
		coords[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	triangulation, err := delaunay.Triangulate(coords)
	if err != nil {
		return nil, 0, errors.New("delaunay triangulation failed").Wrap(err)
	}

	maxDistSq := maxEdgeLength * maxEdgeLength
	rejected := 0

	for i := 0; i+2 < len(triangulation.Triangles); i += 3 {
		t := geometry.Triangle{
			P1: triangulation.Triangles[i],
			P2: triangulation.Triangles[i+1],
			P3: triangulation.Triangles[i+2],
		}

		if maxEdgeLength > 0 {
			p1, p2, p3 := points[t.P1], points[t.P2], points[t.P3]
			if distSq(p1, p2) > maxDistSq || distSq(p2, p3) > maxDistSq || distSq(p3, p1) > maxDistSq {
				rejected++
				continue
			}
		}

		mesh.Triangles = append(mesh.Triangles, t)
	}

	return mesh, rejected, nil
}

// distSq is the squared planar distance, avoiding square roots in the
// edge-length comparison.
func distSq(a, b geometry.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
