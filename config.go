package signal

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Config controls point counts, timing, layouts and text for a Scene.
// Start from DefaultConfig or ClassicConfig and adjust fields as needed.
type Config struct {
	// Cycle is the ring of states the scene loops through.
	Cycle Cycle

	// FixedPoints, when positive, overrides the area-based point count.
	FixedPoints int
	// MinPoints and MaxPoints clamp the area-based point count.
	MinPoints, MaxPoints int
	// AreaPerPoint is the canvas area, in square pixels, budgeted per point.
	AreaPerPoint float64
	// SeedRadius is the radius of the seeding disk as a fraction of width.
	SeedRadius float64
	// SpiralSpacing is the k in radius = k·√i. Zero fits the spiral to the canvas.
	SpiralSpacing float64

	// Duration is how long each point takes to travel once its delay elapsed.
	Duration time.Duration
	// SmallDelayBudget and LargeDelayBudget are the total stagger spread
	// across all points, for sets below and at-or-above LargeSetThreshold.
	SmallDelayBudget time.Duration
	LargeDelayBudget time.Duration
	LargeSetThreshold int
	// Pause is the rest between settlement and the next transition.
	Pause time.Duration
	// Easing shapes per-point progress. Nil means ease.InOutCubic.
	Easing ease.TweenFunc
	// LiveWave keeps the EKG spike travelling after the wave state settled.
	LiveWave bool

	// PointRadius is the drawn radius of each point in pixels.
	PointRadius float64
	// Background is the clear color of every frame.
	Background Color

	// Text is the string rasterized for the text state.
	Text string
	// Raster controls font sizing, sampling and the fallback grid.
	Raster RasterOptions

	// Seed feeds the random generator used for seeding and the text
	// fallback. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the hexagon variant: area-scaled 6000–10000 points,
// a short 100ms cascade and a fully automatic cycle.
func DefaultConfig() Config {
	return Config{
		Cycle:             HexCycle,
		MinPoints:         6000,
		MaxPoints:         10000,
		AreaPerPoint:      40,
		SeedRadius:        0.4,
		Duration:          2000 * time.Millisecond,
		SmallDelayBudget:  800 * time.Millisecond,
		LargeDelayBudget:  100 * time.Millisecond,
		LargeSetThreshold: 5000,
		Pause:             1000 * time.Millisecond,
		Easing:            ease.InOutCubic,
		LiveWave:          true,
		PointRadius:       1.5,
		Background:        ColorWhite,
		Text:              "Finding the signal",
		Raster:            DefaultRasterOptions(),
	}
}

// ClassicConfig returns the simple variant: 2000 points, spiral spacing 6,
// an 800ms cascade and a click gate after the text state.
func ClassicConfig() Config {
	cfg := DefaultConfig()
	cfg.Cycle = ClassicCycle
	cfg.FixedPoints = 2000
	cfg.SeedRadius = 0.3
	cfg.SpiralSpacing = 6
	cfg.Pause = 1500 * time.Millisecond
	cfg.LiveWave = false
	cfg.PointRadius = 2
	cfg.Raster.FontSize = 90
	cfg.Raster.Density = 3
	return cfg
}

// delayBudget returns the stagger spread for a set of n points, in ms.
func (c *Config) delayBudget(n int) float64 {
	if c.LargeSetThreshold > 0 && n >= c.LargeSetThreshold {
		return msec(c.LargeDelayBudget)
	}
	return msec(c.SmallDelayBudget)
}

// msec converts a duration to fractional milliseconds.
func msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
