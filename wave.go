package signal

import "math"

// WavePeriodMs is how long the spike takes to cross the canvas once.
const WavePeriodMs = 5000

const (
	waveMargin    = 0.05 // horizontal inset on both sides, share of width
	waveAmplitude = 0.3  // R peak height, share of canvas height
	waveReach     = 6.0  // segments over which the spike thickens the line
	waveThinLine  = 0.02 // idle line thickness, share of height
	waveThickLine = 0.08 // line thickness at the spike, share of height
)

// WavePoint is one sample of the EKG layout.
type WavePoint struct {
	Pos Vec2
	// Displacement is the upward offset from the baseline, in pixels,
	// before row stacking.
	Displacement float64
	// Intensity is 1 at the spike and falls to 0 waveReach segments away.
	Intensity float64
}

// WaveSegments returns the number of horizontal segments for a width:
// one per 10px, clamped to [50, 100].
func WaveSegments(width float64) int {
	return int(Range{50, 100}.Clamp(math.Floor(width / 10)))
}

// SpikePosition returns where the spike is, in segments, at clockMs.
func SpikePosition(clockMs float64, segments int) float64 {
	phase := math.Mod(clockMs, WavePeriodMs)
	if phase < 0 {
		phase += WavePeriodMs
	}
	return phase / WavePeriodMs * float64(segments)
}

// ekgShape returns the displacement, in units of the R peak, at distance d
// (in segments) from the spike. ripple is the baseline phase.
func ekgShape(d, ripple float64) float64 {
	switch {
	case d < 1: // R wave
		return 1 - d*d
	case d < 2: // S wave
		return -0.15 * math.Sin(math.Pi*(d-1))
	case d < 3.5: // T wave
		return 0.2 * math.Sin(math.Pi*(d-2)/1.5)
	default:
		return 0.02 * math.Sin(ripple)
	}
}

// WaveSample computes point i of n for the EKG layout at clockMs. It is a
// pure function of its arguments, so any frame can be replayed.
// Points wrap across segments; each wrap starts a new pseudo-row stacked
// around the baseline to give the line thickness.
func WaveSample(i, n int, clockMs, width, height float64) WavePoint {
	segments := WaveSegments(width)
	seg := i % segments
	row := i / segments
	rows := (n + segments - 1) / segments

	spike := SpikePosition(clockMs, segments)
	d := math.Abs(float64(seg) - spike)
	ripple := float64(seg)*0.7 + clockMs/400
	disp := ekgShape(d, ripple) * waveAmplitude * height

	intensity := math.Max(0, 1-d/waveReach)
	thickness := lerp(waveThinLine, waveThickLine, intensity) * height
	spacing := 0.0
	if rows > 1 {
		spacing = thickness / float64(rows-1)
	}
	offset := (float64(row) - float64(rows-1)/2) * spacing

	margin := width * waveMargin
	x := margin
	if segments > 1 {
		x += float64(seg) * (width - 2*margin) / float64(segments-1)
	}
	return WavePoint{
		Pos:          Vec2{x, height/2 - disp + offset},
		Displacement: disp,
		Intensity:    intensity,
	}
}

func layoutWave(points []Point, env LayoutEnv, pal Palette) {
	n := len(points)
	for i := range points {
		p := &points[i]
		wp := WaveSample(i, n, env.ClockMs, env.Width, env.Height)
		p.Target = wp.Pos
		p.TargetColor = pal.At(0.3 + 0.65*wp.Intensity)
	}
}
