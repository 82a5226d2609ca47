package geometry

// BoundingBox is a 2D axis-aligned bounding box, inclusive on all edges.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x, y) lies inside the box. Points exactly on
// an edge count as contained.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Intersects reports whether two boxes overlap. Boxes that only touch
// along an edge or at a corner count as intersecting.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(other.MinX > b.MaxX || other.MaxX < b.MinX ||
		other.MinY > b.MaxY || other.MaxY < b.MinY)
}

// Mid returns the center of the box.
func (b BoundingBox) Mid() (midX, midY float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// TriangleBounds computes the minimal bounding box of a triangle's three
// vertices.
func TriangleBounds(t Triangle, points []Point) BoundingBox {
	p1, p2, p3 := points[t.P1], points[t.P2], points[t.P3]

	return BoundingBox{
		MinX: min(p1.X, p2.X, p3.X),
		MinY: min(p1.Y, p2.Y, p3.Y),
		MaxX: max(p1.X, p2.X, p3.X),
		MaxY: max(p1.Y, p2.Y, p3.Y),
	}
}
