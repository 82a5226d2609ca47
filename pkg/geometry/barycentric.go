package geometry

import "math"

// degenerateEps bounds the barycentric determinant below which a triangle
// is treated as having no area. Interpolating across such a triangle
// would divide by ~0 and leak NaN/Inf into the output.
const degenerateEps = 1e-12

// PointInTriangle reports whether (px, py) lies inside the triangle
// p1-p2-p3, edges included. It uses the doubled-area barycentric form:
// the point is inside when s >= 0, t >= 0 and s+t <= 1.
func PointInTriangle(px, py float64, p1, p2, p3 Point) bool {
	area := 0.5 * (-p2.Y*p3.X + p1.Y*(-p2.X+p3.X) + p1.X*(p2.Y-p3.Y) + p2.X*p3.Y)
	if area == 0 {
		return false
	}

	s := 1.0 / (2.0 * area) * (p1.Y*p3.X - p1.X*p3.Y + (p3.Y-p1.Y)*px + (p1.X-p3.X)*py)
	t := 1.0 / (2.0 * area) * (p1.X*p2.Y - p1.Y*p2.X + (p1.Y-p2.Y)*px + (p2.X-p1.X)*py)

	return s >= 0 && t >= 0 && (1-s-t) >= 0
}

// InterpolateZ computes the altitude at (px, py) by barycentric
// interpolation over the triangle p1-p2-p3. The second return value is
// false when the triangle is degenerate (near-zero determinant); callers
// must treat that as "no coverage" for the queried location.
func InterpolateZ(px, py float64, p1, p2, p3 Point) (float64, bool) {
	det := (p2.Y-p3.Y)*(p1.X-p3.X) + (p3.X-p2.X)*(p1.Y-p3.Y)
	if math.Abs(det) < degenerateEps {
		return 0, false
	}

	lambda1 := ((p2.Y-p3.Y)*(px-p3.X) + (p3.X-p2.X)*(py-p3.Y)) / det
	lambda2 := ((p3.Y-p1.Y)*(px-p3.X) + (p1.X-p3.X)*(py-p3.Y)) / det
	lambda3 := 1.0 - lambda1 - lambda2

	return lambda1*p1.Z + lambda2*p2.Z + lambda3*p3.Z, true
}
