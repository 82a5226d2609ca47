package geometry

import "github.com/df07/go-terrain-raster/pkg/core"

// Point is a projected terrain sample: X and Y are planar coordinates in
// meters, Z is the altitude in meters. Points are produced once by the
// projection step and never mutated afterwards.
type Point struct {
	X, Y, Z float64
}

// Vec3 converts the point to a core vector for normal/shading math.
func (p Point) Vec3() core.Vec3 {
	return core.NewVec3(p.X, p.Y, p.Z)
}

// Triangle references three vertices by index into a shared point slice.
// It owns no point data; the indices must stay valid for the lifetime of
// the owning mesh.
type Triangle struct {
	P1, P2, P3 int
}

// Mesh is a triangulated surface: a vertex slice plus index triangles.
// It is built once by the triangulation step and read-only afterwards.
type Mesh struct {
	Points    []Point
	Triangles []Triangle
}

// Bounds returns the axis-aligned bounding box of all mesh points.
// The second return value is false for an empty mesh.
func (m *Mesh) Bounds() (BoundingBox, bool) {
	if len(m.Points) == 0 {
		return BoundingBox{}, false
	}

	b := BoundingBox{
		MinX: m.Points[0].X, MinY: m.Points[0].Y,
		MaxX: m.Points[0].X, MaxY: m.Points[0].Y,
	}
	for _, p := range m.Points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b, true
}

// ZRange returns the minimum and maximum altitude over all mesh points.
// The third return value is false for an empty mesh.
func (m *Mesh) ZRange() (minZ, maxZ float64, ok bool) {
	if len(m.Points) == 0 {
		return 0, 0, false
	}

	minZ, maxZ = m.Points[0].Z, m.Points[0].Z
	for _, p := range m.Points[1:] {
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return minZ, maxZ, true
}

// Vertices returns the three corner points of a triangle.
func (m *Mesh) Vertices(t Triangle) (Point, Point, Point) {
	return m.Points[t.P1], m.Points[t.P2], m.Points[t.P3]
}
