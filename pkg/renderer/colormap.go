package renderer

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

type colorStop struct {
	T float64
	C Color
}

// Haxby-like elevation gradient: deep blue through cyan, green, yellow,
// orange and red up to white. The exact stop values are part of the
// output contract; renders must be bit-reproducible.
var colorStops = []colorStop{
	{0.00, Color{0, 0, 128}},
	{0.10, Color{0, 0, 255}},
	{0.25, Color{0, 255, 255}},
	{0.40, Color{0, 255, 0}},
	{0.60, Color{255, 255, 0}},
	{0.80, Color{255, 128, 0}},
	{0.95, Color{255, 0, 0}},
	{1.00, Color{255, 255, 255}},
}

// ColorFor maps an altitude to a color by piecewise-linear interpolation
// between the gradient stops. z is normalized against [minZ, maxZ] and
// clamped to that range. A flat range (minZ == maxZ) maps everything to
// the first stop.
func ColorFor(z, minZ, maxZ float64) Color {
	t := 0.0
	if maxZ > minZ {
		t = (z - minZ) / (maxZ - minZ)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	for i := 0; i < len(colorStops)-1; i++ {
		lo, hi := colorStops[i], colorStops[i+1]
		if t >= lo.T && t <= hi.T {
			localT := (t - lo.T) / (hi.T - lo.T)
			return Color{
				R: lerpChannel(lo.C.R, hi.C.R, localT),
				G: lerpChannel(lo.C.G, hi.C.G, localT),
				B: lerpChannel(lo.C.B, hi.C.B, localT),
			}
		}
	}
	return colorStops[len(colorStops)-1].C
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}
