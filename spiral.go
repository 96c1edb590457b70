package signal

import "math"

// goldenAngle is π(3−√5), about 137.5°.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// spiralFill is the share of the shorter canvas side the fitted spiral spans
// from center to its outermost point.
const spiralFill = 0.45

// SpiralPoint returns the phyllotaxis position of index i around (cx, cy):
// angle i·goldenAngle, radius k·√i. Radius grows monotonically with i and
// distinct indices never coincide.
func SpiralPoint(i int, k, cx, cy float64) Vec2 {
	r := k * math.Sqrt(float64(i))
	a := float64(i) * goldenAngle
	return Vec2{cx + r*math.Cos(a), cy + r*math.Sin(a)}
}

// spiralSpacing returns k for n points. A positive k is used as-is;
// otherwise the spiral is fitted inside the canvas.
func spiralSpacing(k float64, n int, width, height float64) float64 {
	if k > 0 {
		return k
	}
	if n < 2 {
		return 0
	}
	return spiralFill * math.Min(width, height) / math.Sqrt(float64(n-1))
}

func layoutSpiral(points []Point, env LayoutEnv, pal Palette) {
	n := len(points)
	k := spiralSpacing(env.SpiralSpacing, n, env.Width, env.Height)
	cx, cy := env.Width/2, env.Height/2
	for i := range points {
		p := &points[i]
		p.Target = SpiralPoint(i, k, cx, cy)
		p.TargetColor = pal.At(float64(i) / float64(n))
	}
}
