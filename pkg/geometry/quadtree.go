package geometry

// QuadTreeConfig controls when quadtree leaves subdivide.
type QuadTreeConfig struct {
	MaxDepth     int // Nodes at this depth never subdivide
	MaxTriangles int // Leaf capacity before subdivision
}

// DefaultQuadTreeConfig returns the default tuning: depth capped at 10,
// leaves holding up to 1500 triangles.
func DefaultQuadTreeConfig() QuadTreeConfig {
	return QuadTreeConfig{
		MaxDepth:     10,
		MaxTriangles: 1500,
	}
}

// QuadTree indexes mesh triangles by bounding box for fast point-location
// queries. A node is either a leaf storing triangles or an internal node
// owning exactly four children quartering its bounds (NW, NE, SW, SE).
//
// A triangle whose bounding box straddles a subdivision line is stored in
// every child it overlaps. Find relies on this duplication: it descends
// into a single child per level, which is only correct because Insert
// guarantees the covering triangle reached that child too. Changing the
// insertion test (say, to exact triangle-quadrant intersection) without
// widening Find to consult siblings breaks queries silently.
type QuadTree struct {
	bounds    BoundingBox
	depth     int
	config    QuadTreeConfig
	triangles []Triangle
	children  [4]*QuadTree // NW, NE, SW, SE; all nil for leaves
}

// NewQuadTree creates an empty quadtree over the given bounds with
// default tuning.
func NewQuadTree(bounds BoundingBox) *QuadTree {
	return NewQuadTreeWithConfig(bounds, DefaultQuadTreeConfig())
}

// NewQuadTreeWithConfig creates an empty quadtree with explicit tuning.
func NewQuadTreeWithConfig(bounds BoundingBox, config QuadTreeConfig) *QuadTree {
	return &QuadTree{bounds: bounds, config: config}
}

// Bounds returns the region covered by this node.
func (qt *QuadTree) Bounds() BoundingBox {
	return qt.bounds
}

func (qt *QuadTree) isLeaf() bool {
	return qt.children[0] == nil
}

// subdivide turns a leaf into an internal node with four empty children
// quartering its bounds at the midpoint.
func (qt *QuadTree) subdivide() {
	midX, midY := qt.bounds.Mid()

	child := func(b BoundingBox) *QuadTree {
		return &QuadTree{bounds: b, depth: qt.depth + 1, config: qt.config}
	}

	qt.children[0] = child(BoundingBox{qt.bounds.MinX, midY, midX, qt.bounds.MaxY}) // NW
	qt.children[1] = child(BoundingBox{midX, midY, qt.bounds.MaxX, qt.bounds.MaxY}) // NE
	qt.children[2] = child(BoundingBox{qt.bounds.MinX, qt.bounds.MinY, midX, midY}) // SW
	qt.children[3] = child(BoundingBox{midX, qt.bounds.MinY, qt.bounds.MaxX, midY}) // SE
}

// Insert adds a triangle to every node whose bounds intersect the
// triangle's bounding box. When a leaf exceeds its capacity it
// subdivides, redistributes its stored triangles into all four children
// and becomes permanently internal.
func (qt *QuadTree) Insert(t Triangle, points []Point) {
	if !qt.bounds.Intersects(TriangleBounds(t, points)) {
		return
	}

	if qt.isLeaf() && (len(qt.triangles) < qt.config.MaxTriangles || qt.depth >= qt.config.MaxDepth) {
		qt.triangles = append(qt.triangles, t)
		return
	}

	if qt.isLeaf() {
		qt.subdivide()
		for _, stored := range qt.triangles {
			for _, child := range qt.children {
				child.Insert(stored, points)
			}
		}
		qt.triangles = nil
	}

	for _, child := range qt.children {
		child.Insert(t, points)
	}
}

// Find returns the first stored triangle containing (x, y), edges
// included. The second return value is false when the point is outside
// the root bounds or falls in a gap between triangles.
func (qt *QuadTree) Find(x, y float64, points []Point) (Triangle, bool) {
	if !qt.bounds.Contains(x, y) {
		return Triangle{}, false
	}

	if qt.isLeaf() {
		for _, t := range qt.triangles {
			if PointInTriangle(x, y, points[t.P1], points[t.P2], points[t.P3]) {
				return t, true
			}
		}
		return Triangle{}, false
	}

	// Exactly one child can contain the point; descend into it only.
	midX, midY := qt.bounds.Mid()
	if x <= midX {
		if y >= midY {
			return qt.children[0].Find(x, y, points) // NW
		}
		return qt.children[2].Find(x, y, points) // SW
	}
	if y >= midY {
		return qt.children[1].Find(x, y, points) // NE
	}
	return qt.children[3].Find(x, y, points) // SE
}

// walkLeaves visits every leaf node, for invariant checks in tests.
func (qt *QuadTree) walkLeaves(visit func(*QuadTree)) {
	if qt.isLeaf() {
		visit(qt)
		return
	}
	for _, child := range qt.children {
		child.walkLeaves(visit)
	}
}
