package signal

import (
	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween/ease"
)

// springSamples is the resolution of the precomputed spring curve.
const springSamples = 240

// SpringEasing returns an easing curve traced by a damped spring released
// from 0 toward 1 over the unit interval. A damping ratio below 1 overshoots
// and rings before landing; 1 is critically damped. The curve is sampled
// once, so calling it per point per frame is a table lookup.
//
// frequency is the angular frequency over the whole transition: around 8 to
// 12 settles visibly before the end.
func SpringEasing(frequency, damping float64) ease.TweenFunc {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	curve := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		curve[i] = pos
	}
	// Spread whatever distance the spring has left over the whole curve so
	// it ends exactly at 1.
	rest := 1 - curve[springSamples]
	for i := range curve {
		curve[i] += rest * float64(i) / springSamples
	}

	return func(t, b, c, d float32) float32 {
		x := float64(t / d)
		switch {
		case x <= 0:
			return b
		case x >= 1:
			return b + c
		}
		f := x * springSamples
		i := int(f)
		v := lerp(curve[i], curve[i+1], f-float64(i))
		return b + c*float32(v)
	}
}
