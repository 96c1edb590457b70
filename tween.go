package signal

import "github.com/tanema/gween/ease"

// Ease maps linear progress t through fn over the unit interval. t is
// clamped to [0, 1]; a nil fn means ease.InOutCubic (4t³ below one half,
// the mirrored complement above).
func Ease(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		fn = ease.InOutCubic
	}
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// lerp linearly interpolates between a and b by t. Written as a weighted sum
// so that t=0 yields exactly a and t=1 exactly b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}

// lerpColor interpolates each channel independently.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// pointProgress returns the linear progress of point i of n at elapsed ms,
// and whether its delay has passed. Delays are spread evenly over budget.
func pointProgress(i, n int, elapsed, budget, duration float64) (float64, bool) {
	delay := 0.0
	if n > 0 {
		delay = float64(i) * (budget / float64(n))
	}
	if elapsed < delay {
		return 0, false
	}
	if duration <= 0 {
		return 1, true
	}
	return clamp01((elapsed - delay) / duration), true
}
