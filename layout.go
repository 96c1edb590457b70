package signal

// LayoutEnv is everything a layout needs besides the points themselves.
type LayoutEnv struct {
	Width, Height float64
	// ClockMs drives time-dependent layouts (the EKG spike).
	ClockMs float64
	// TextPixels are the ink samples for the text state, in scan order.
	TextPixels []Vec2
	// SpiralSpacing is k in radius = k·√i; zero fits the spiral to the canvas.
	SpiralSpacing float64
}

// ApplyLayout computes Target and TargetColor of every point for state s.
// Current and start fields are left alone; the driver owns those.
func ApplyLayout(s State, points []Point, env LayoutEnv) {
	pal := PaletteFor(s)
	switch s {
	case StateInitial, StateCircle:
		layoutSpiral(points, env, pal)
	case StateHexagon:
		layoutHexagon(points, env, pal)
	case StateWave:
		layoutWave(points, env, pal)
	case StateText:
		layoutText(points, env, pal)
	}
}

// offscreen is where surplus points park while the text state is shown.
var offscreen = Vec2{-100, -100}

// layoutText assigns point i to ink pixel i. Points beyond the pixel count
// are parked off-canvas and made fully transparent, so they stay in the
// arena for the next layout.
func layoutText(points []Point, env LayoutEnv, pal Palette) {
	pixels := env.TextPixels
	for i := range points {
		p := &points[i]
		if i < len(pixels) {
			p.Target = pixels[i]
			p.TargetColor = pal.At(float64(i) / float64(len(pixels)))
			continue
		}
		p.Target = offscreen
		p.TargetColor = ColorTransparent
	}
}
