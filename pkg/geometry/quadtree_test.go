package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridMesh builds an n x n cell grid over [0, n] x [0, n], two triangles
// per cell, with consistent counter-clockwise winding. Altitude is x+y.
func gridMesh(n int) *Mesh {
	mesh := &Mesh{}
	for row := 0; row <= n; row++ {
		for col := 0; col <= n; col++ {
			x, y := float64(col), float64(row)
			mesh.Points = append(mesh.Points, Point{X: x, Y: y, Z: x + y})
		}
	}

	idx := func(row, col int) int { return row*(n+1) + col }
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sw, se := idx(row, col), idx(row, col+1)
			nw, ne := idx(row+1, col), idx(row+1, col+1)
			mesh.Triangles = append(mesh.Triangles,
				Triangle{P1: sw, P2: se, P3: nw},
				Triangle{P1: se, P2: ne, P3: nw},
			)
		}
	}
	return mesh
}

func buildTree(mesh *Mesh, config QuadTreeConfig) *QuadTree {
	bounds, ok := mesh.Bounds()
	if !ok {
		panic("empty mesh")
	}
	qt := NewQuadTreeWithConfig(bounds, config)
	for _, t := range mesh.Triangles {
		qt.Insert(t, mesh.Points)
	}
	return qt
}

func TestQuadTree_FindRoundTrip(t *testing.T) {
	mesh := gridMesh(8)
	// Small capacity forces several subdivision levels
	qt := buildTree(mesh, QuadTreeConfig{MaxDepth: 10, MaxTriangles: 4})

	// Sample points strictly interior to some triangle; the result must
	// geometrically contain the query even if bbox duplication means it
	// is not the "original" triangle.
	for _, q := range []struct{ x, y float64 }{
		{0.3, 0.2}, {1.5, 1.4}, {4.25, 7.75}, {7.9, 0.1}, {3.333, 3.334},
	} {
		tri, ok := qt.Find(q.x, q.y, mesh.Points)
		require.True(t, ok, "no triangle found at (%v, %v)", q.x, q.y)
		p1, p2, p3 := mesh.Vertices(tri)
		assert.True(t, PointInTriangle(q.x, q.y, p1, p2, p3),
			"returned triangle does not contain (%v, %v)", q.x, q.y)
	}
}

func TestQuadTree_FindOutsideBounds(t *testing.T) {
	mesh := gridMesh(2)
	qt := buildTree(mesh, DefaultQuadTreeConfig())

	_, ok := qt.Find(-1, 1, mesh.Points)
	assert.False(t, ok)
	_, ok = qt.Find(1, 2.5, mesh.Points)
	assert.False(t, ok)
}

func TestQuadTree_LeafCapacityInvariant(t *testing.T) {
	mesh := gridMesh(10)
	config := QuadTreeConfig{MaxDepth: 3, MaxTriangles: 6}
	qt := buildTree(mesh, config)

	leaves := 0
	qt.walkLeaves(func(leaf *QuadTree) {
		leaves++
		if leaf.depth < config.MaxDepth {
			assert.LessOrEqual(t, len(leaf.triangles), config.MaxTriangles,
				"leaf at depth %d over capacity", leaf.depth)
		}
	})
	assert.Greater(t, leaves, 1, "expected the tree to subdivide")
}

func TestQuadTree_StraddlingTriangleDuplicated(t *testing.T) {
	// One fat triangle across the whole region plus enough slivers to
	// trigger subdivision: the fat triangle's bbox overlaps all four
	// quadrants, so the single-child descent must find it from any side.
	points := []Point{
		{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 5, Y: 10, Z: 0}, // fat
		{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.1}, {X: 0.15, Y: 0.2}, // sliver
	}
	fat := Triangle{P1: 0, P2: 1, P3: 2}
	sliver := Triangle{P1: 3, P2: 4, P3: 5}

	qt := NewQuadTreeWithConfig(
		BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
		QuadTreeConfig{MaxDepth: 4, MaxTriangles: 1},
	)
	qt.Insert(fat, points)
	qt.Insert(sliver, points) // second insert forces the root to split

	require.False(t, qt.isLeaf(), "root should have subdivided")

	// Probe locations inside the fat triangle in different quadrants
	for _, q := range []struct{ x, y float64 }{
		{2, 1},   // SW quadrant
		{8, 1},   // SE quadrant
		{4.5, 6}, // NW quadrant
		{5.5, 6}, // NE quadrant
	} {
		tri, ok := qt.Find(q.x, q.y, points)
		require.True(t, ok, "lost the straddling triangle at (%v, %v)", q.x, q.y)
		assert.Equal(t, fat, tri)
	}
}

func TestQuadTree_InsertIgnoresDisjointTriangle(t *testing.T) {
	points := []Point{{X: 20, Y: 20}, {X: 21, Y: 20}, {X: 20, Y: 21}}
	qt := NewQuadTree(BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	qt.Insert(Triangle{P1: 0, P2: 1, P3: 2}, points)

	assert.Empty(t, qt.triangles)
}

func TestQuadTree_InsertOrderIndependentResults(t *testing.T) {
	mesh := gridMesh(6)
	config := QuadTreeConfig{MaxDepth: 6, MaxTriangles: 3}

	forward := buildTree(mesh, config)

	reversed := NewQuadTreeWithConfig(mustBounds(mesh), config)
	for i := len(mesh.Triangles) - 1; i >= 0; i-- {
		reversed.Insert(mesh.Triangles[i], mesh.Points)
	}

	// Queries must agree on coverage regardless of insertion order.
	for _, q := range []struct{ x, y float64 }{
		{0.5, 0.5}, {3.2, 2.8}, {5.9, 5.9}, {2.5, 4.5},
	} {
		_, okA := forward.Find(q.x, q.y, mesh.Points)
		_, okB := reversed.Find(q.x, q.y, mesh.Points)
		assert.Equal(t, okA, okB)
	}
}

func mustBounds(m *Mesh) BoundingBox {
	b, ok := m.Bounds()
	if !ok {
		panic("empty mesh")
	}
	return b
}
