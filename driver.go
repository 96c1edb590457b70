package signal

import "github.com/tanema/gween/ease"

// Phase is where a Driver is within one transition.
type Phase uint8

const (
	PhaseIdle    Phase = iota // no transition in flight
	PhaseRunning              // points are travelling
	PhaseSettled              // every point reached its target
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// TickResult tells the caller whether to keep ticking.
type TickResult uint8

const (
	TickContinue TickResult = iota // call Tick again next frame
	TickDone                       // nothing left to animate
)

// Driver advances one transition at a time. Begin snapshots the points and
// applies the target layout; Tick moves every point along its own delayed,
// eased timeline until all of them have arrived.
//
// The driver holds on to the point slice between Begin and settlement; the
// caller must not reseed it without calling Cancel first.
type Driver struct {
	points   []Point
	state    State
	phase    Phase
	started  bool
	startMs  float64
	layoutMs float64
	budget   float64
	duration float64
	easing   ease.TweenFunc
	cfg      *Config
}

// NewDriver creates an idle driver using cfg's timing and easing.
func NewDriver(cfg *Config) *Driver {
	return &Driver{cfg: cfg}
}

// Begin starts a transition to state: every point's start is snapshotted
// from its current values, then the layout writes the targets. The clock
// starts on the first Tick.
func (d *Driver) Begin(state State, points []Point, env LayoutEnv) {
	for i := range points {
		points[i].snapshot()
	}
	ApplyLayout(state, points, env)

	d.points = points
	d.state = state
	d.layoutMs = env.ClockMs
	d.phase = PhaseRunning
	d.started = false
	d.budget = d.cfg.delayBudget(len(points))
	d.duration = msec(d.cfg.Duration)
	d.easing = d.cfg.Easing
}

// Tick advances the running transition to nowMs. Points still inside their
// delay stay frozen at their start. It returns TickDone once every point has
// reached progress 1, at which point the driver is settled.
func (d *Driver) Tick(nowMs float64) TickResult {
	if d.phase != PhaseRunning {
		return TickDone
	}
	if !d.started {
		d.started = true
		d.startMs = nowMs
	}
	elapsed := nowMs - d.startMs
	n := len(d.points)

	done := true
	for i := range d.points {
		p := &d.points[i]
		t, moving := pointProgress(i, n, elapsed, d.budget, d.duration)
		if !moving {
			done = false
			continue
		}
		if t >= 1 {
			p.settle()
			continue
		}
		done = false
		p.step(Ease(d.easing, t))
	}

	if done {
		d.phase = PhaseSettled
		return TickDone
	}
	return TickContinue
}

// Cancel abandons the transition in flight. Points keep whatever position
// they had reached.
func (d *Driver) Cancel() {
	d.phase = PhaseIdle
	d.points = nil
	d.started = false
}

// Phase returns the driver's current phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// State returns the target state of the current or last transition.
func (d *Driver) State() State {
	return d.state
}

// LayoutClock returns the clock the targets of the current or last
// transition were computed at.
func (d *Driver) LayoutClock() float64 {
	return d.layoutMs
}

// Elapsed returns the ms since the transition's first tick.
func (d *Driver) Elapsed(nowMs float64) float64 {
	if !d.started {
		return 0
	}
	return nowMs - d.startMs
}

// delayTimer is a one-shot deadline checked once per frame. It stands in
// for a host setTimeout and is cancelled the same way.
type delayTimer struct {
	at    float64
	armed bool
}

func (t *delayTimer) arm(at float64) {
	t.at = at
	t.armed = true
}

func (t *delayTimer) cancel() {
	t.armed = false
}

// fire reports whether the deadline passed, disarming the timer if so.
func (t *delayTimer) fire(nowMs float64) bool {
	if !t.armed || nowMs < t.at {
		return false
	}
	t.armed = false
	return true
}
