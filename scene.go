package signal

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object. It owns the point arena, the text samples,
// the driver and the pending-transition timer, and it implements
// ebiten.Game so it can be handed to Run or ebiten.RunGame directly.
//
// All methods must be called from a single goroutine (Ebitengine's game
// loop or a headless loop calling Advance).
type Scene struct {
	cfg    Config
	rng    *rand.Rand
	width  int
	height int

	points     []Point
	textPixels []Vec2
	raster     RasterResult

	driver    *Driver
	state     State
	next      delayTimer
	clickable bool
	settledAt float64

	clock   func() float64
	nowMs   float64
	epoch   time.Time
	showFPS bool
	fps     fpsOverlay
	debug   bool
	stats   debugStats

	surface    *ImageSurface
	lastRender renderStats
	updateFunc func() error

	clickHandlers []clickHandler
	nextHandlerID uint32

	// Tooling
	ScreenshotDir   string
	screenshotQueue []string
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	touchBuf        []ebiten.TouchID
}

// NewScene creates a scene for a width×height canvas and seeds it. The first
// transition starts on the first Advance (or Update) call.
func NewScene(width, height int, cfg Config) (*Scene, error) {
	s := &Scene{
		cfg:           cfg,
		rng:           newRand(cfg.Seed),
		ScreenshotDir: "screenshots",
		epoch:         time.Now(),
	}
	s.driver = NewDriver(&s.cfg)
	s.clock = s.monotonicMs
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// monotonicMs is the default clock: ms since the scene was created.
func (s *Scene) monotonicMs() float64 {
	return msec(time.Since(s.epoch))
}

// Resize reinitializes the scene for a new canvas size. Any transition in
// flight and the pending successor timer are cancelled first, then points
// and text samples are regenerated and the state machine restarts from
// StateInitial. A resize to the current size is a no-op.
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width == s.width && height == s.height && s.points != nil {
		return nil
	}
	s.driver.Cancel()
	s.next.cancel()
	s.clickable = false

	s.width, s.height = width, height
	s.reseed()
	return nil
}

// reseed rebuilds points and text samples and schedules the first state.
func (s *Scene) reseed() {
	w, h := float64(s.width), float64(s.height)
	n := PointCount(s.width, s.height, s.cfg)
	s.points = NewPoints(n, w, h, s.cfg.SeedRadius, s.rng)

	res, err := Rasterize(s.cfg.Text, s.width, s.height, s.cfg.Raster, s.rng)
	if err != nil {
		s.debugf("rasterize failed, using letter grid: %v", err)
		res = RasterResult{Pixels: LetterGrid(s.cfg.Text, w, h, s.rng), Fallback: true}
	}
	s.raster = res
	s.textPixels = res.Pixels

	s.state = StateInitial
	s.next.arm(s.nowMs)
	s.debugf("seeded %d points on %dx%d, %d text pixels (font %.0fpt, stride %d, fallback %v)",
		n, s.width, s.height, len(s.textPixels), res.FontSize, res.Density, res.Fallback)
}

// Advance runs one frame of scene logic at nowMs: scripted input, the
// successor timer, the driver tick and the live wave. Headless hosts call
// it directly; Update calls it with the scene clock.
func (s *Scene) Advance(nowMs float64) {
	s.nowMs = nowMs
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()

	if s.next.fire(nowMs) {
		s.transition(s.cfg.Cycle.Next(s.state))
	}

	switch s.driver.Phase() {
	case PhaseRunning:
		var t0 time.Time
		if s.debug {
			t0 = time.Now()
		}
		res := s.driver.Tick(nowMs)
		if s.debug {
			s.debugTick(time.Since(t0))
		}
		if res == TickDone {
			s.settle()
		}
	case PhaseSettled:
		if s.state == StateWave && s.cfg.LiveWave {
			s.followWave()
		}
	}
}

// transition starts animating toward state to.
func (s *Scene) transition(to State) {
	s.state = to
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.driver.Begin(to, s.points, s.layoutEnv())
	if s.debug {
		s.debugf("state %s: layout of %d points took %v", to, len(s.points), time.Since(t0))
	}
}

// settle runs when every point reached its target: it arms the click gate
// after the last state of a gated cycle and schedules the successor.
func (s *Scene) settle() {
	if s.cfg.Cycle.ClickGate && s.state == s.cfg.Cycle.Last() {
		s.clickable = true
	}
	s.settledAt = s.nowMs
	s.next.arm(s.nowMs + msec(s.cfg.Pause))
	s.debugf("state %s settled after %.0fms", s.state, s.driver.Elapsed(s.nowMs))
}

// followWave re-derives the wave layout and pins every point to it, so the
// spike keeps moving while the scene rests. The wave clock resumes from the
// one the tween aimed at; the real clock ran ahead by the whole transition.
func (s *Scene) followWave() {
	env := s.layoutEnv()
	env.ClockMs = s.driver.LayoutClock() + (s.nowMs - s.settledAt)
	ApplyLayout(StateWave, s.points, env)
	for i := range s.points {
		s.points[i].settle()
	}
}

func (s *Scene) layoutEnv() LayoutEnv {
	return LayoutEnv{
		Width:         float64(s.width),
		Height:        float64(s.height),
		ClockMs:       s.nowMs,
		TextPixels:    s.textPixels,
		SpiralSpacing: s.cfg.SpiralSpacing,
	}
}

// Click advances the cycle by exactly one step if the scene is clickable,
// clearing the flag. The pending timer and any running transition are
// cancelled first so only one transition is ever in flight.
func (s *Scene) Click() bool {
	if !s.clickable {
		return false
	}
	s.clickable = false
	s.next.cancel()
	s.driver.Cancel()
	s.transition(s.cfg.Cycle.Next(s.state))
	s.debugf("click advanced to %s", s.state)
	return true
}

// Close stops all scheduled work. The scene must not be advanced afterwards.
func (s *Scene) Close() {
	s.driver.Cancel()
	s.next.cancel()
	s.clickable = false
}

// --- ebiten.Game ---

// Update processes input and advances the scene using its clock.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if err := s.processInput(); err != nil {
		return err
	}
	s.Advance(s.clock())
	return nil
}

// Draw renders the points onto screen, then overlays and screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.surface == nil {
		s.surface = NewImageSurface(screen)
	}
	s.surface.SetTarget(screen)

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.Render(s.surface)
	if s.debug {
		s.debugDraw(time.Since(t0))
	}
	if s.showFPS {
		s.drawFPS(screen)
	}
	s.flushScreenshots(func() imageSource { return ebitenSource{screen} })
}

// Layout follows the window size, reinitializing the scene whenever it
// changes. Degenerate sizes (a minimized window) keep the last canvas.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := s.Resize(outsideWidth, outsideHeight); err != nil {
		s.debugf("%v", err)
	}
	return s.width, s.height
}

// --- Accessors ---

// Config returns the scene's configuration.
func (s *Scene) Config() Config { return s.cfg }

// Size returns the canvas size.
func (s *Scene) Size() (int, int) { return s.width, s.height }

// State returns the current animation state.
func (s *Scene) State() State { return s.state }

// Phase returns the driver phase of the current transition.
func (s *Scene) Phase() Phase { return s.driver.Phase() }

// Clickable reports whether a click would advance the cycle.
func (s *Scene) Clickable() bool { return s.clickable }

// Points returns the point arena. The returned slice MUST NOT be resized.
func (s *Scene) Points() []Point { return s.points }

// TextPixels returns the ink samples for the current canvas size.
func (s *Scene) TextPixels() []Vec2 { return s.textPixels }

// Raster reports how the text samples were produced: font size, stride and
// whether the letter-grid fallback was used.
func (s *Scene) Raster() RasterResult { return s.raster }

// SetClock replaces the millisecond clock Update reads. Nil restores the
// monotonic default.
func (s *Scene) SetClock(clock func() float64) {
	if clock == nil {
		clock = s.monotonicMs
	}
	s.clock = clock
}

// SetUpdateFunc registers a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, state changes,
// seeding details and per-frame timings are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
