package renderer

import (
	"github.com/df07/go-terrain-raster/pkg/core"
	"github.com/df07/go-terrain-raster/pkg/geometry"
)

// Shading floor and diffuse span: a surface facing directly away from
// the light still receives 0.4 ambient, one facing it receives 1.0.
const (
	ambientShade = 0.4
	diffuseSpan  = 0.6
)

// lightDirection is the fixed hillshade light: azimuth 315 degrees
// (north-west), elevation 45 degrees, as the normalized approximation
// of (-0.5, 0.5, 0.7).
var lightDirection = core.NewVec3(-0.5, 0.5, 0.7).Normalize()

// ShadeFactor computes the directional shading multiplier for a triangle
// from its surface normal and the fixed light direction. Degenerate
// (zero-area) triangles yield the ambient floor. Winding order flips the
// normal's sign, so the mesh must wind consistently for coherent output.
func ShadeFactor(p1, p2, p3 geometry.Point) float64 {
	u := p2.Vec3().Subtract(p1.Vec3())
	v := p3.Vec3().Subtract(p1.Vec3())

	normal := u.Cross(v).Normalize()

	intensity := normal.Dot(lightDirection)
	if intensity < 0 {
		intensity = 0
	}

	return ambientShade + diffuseSpan*intensity
}
