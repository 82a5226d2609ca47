package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointInTriangle(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 1, Y: 0}
	p3 := Point{X: 0, Y: 1}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{name: "interior", x: 0.25, y: 0.25, expected: true},
		{name: "vertex", x: 0, y: 0, expected: true},
		{name: "on edge", x: 0.5, y: 0, expected: true},
		{name: "on hypotenuse", x: 0.5, y: 0.5, expected: true},
		{name: "outside", x: 0.75, y: 0.75, expected: false},
		{name: "far away", x: -3, y: 10, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PointInTriangle(tt.x, tt.y, p1, p2, p3))
		})
	}
}

func TestPointInTriangle_Degenerate(t *testing.T) {
	// Collinear vertices span no area; nothing is inside.
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 1, Y: 1}
	p3 := Point{X: 2, Y: 2}

	assert.False(t, PointInTriangle(1, 1, p1, p2, p3))
}

func TestInterpolateZ(t *testing.T) {
	p1 := Point{X: 0, Y: 0, Z: 10}
	p2 := Point{X: 2, Y: 0, Z: 20}
	p3 := Point{X: 0, Y: 2, Z: 30}

	// Vertices reproduce their own altitudes
	for _, p := range []Point{p1, p2, p3} {
		z, ok := InterpolateZ(p.X, p.Y, p1, p2, p3)
		require.True(t, ok)
		assert.InDelta(t, p.Z, z, 1e-9)
	}

	// Centroid averages them
	z, ok := InterpolateZ(2.0/3.0, 2.0/3.0, p1, p2, p3)
	require.True(t, ok)
	assert.InDelta(t, 20.0, z, 1e-9)

	// Edge midpoint averages its endpoints
	z, ok = InterpolateZ(1, 0, p1, p2, p3)
	require.True(t, ok)
	assert.InDelta(t, 15.0, z, 1e-9)
}

func TestInterpolateZ_DegenerateTriangle(t *testing.T) {
	p1 := Point{X: 0, Y: 0, Z: 1}
	p2 := Point{X: 1, Y: 1, Z: 2}
	p3 := Point{X: 2, Y: 2, Z: 3}

	z, ok := InterpolateZ(1, 1, p1, p2, p3)
	assert.False(t, ok)
	assert.False(t, math.IsNaN(z))
	assert.False(t, math.IsInf(z, 0))
}
