package signal

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	State  string  `json:"state,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Scene via SetTestRunner.
//
// Supported actions:
//
//	{"action": "click", "x": 10, "y": 20}
//	{"action": "resize", "width": 800, "height": 400}
//	{"action": "wait", "frames": 30}
//	{"action": "settle", "state": "text"}
//	{"action": "screenshot", "label": "text-settled"}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	awaiting  *testStep
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "wait", "screenshot":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse test script: step %d: resize %dx%d: %w",
					i, st.Width, st.Height, ErrInvalidDimensions)
			}
		case "settle":
			if st.State != "" {
				if _, ok := parseState(st.State); !ok {
					return nil, fmt.Errorf("parse test script: step %d: unknown state %q", i, st.State)
				}
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Advance before injected events are processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Advance.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.awaiting != nil {
		if !settledIn(s, r.awaiting.State) {
			return
		}
		r.awaiting = nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.awaiting = &st
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.awaiting == nil && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// settledIn reports whether the scene's current transition has settled, in
// the named state if one is given.
func settledIn(s *Scene, name string) bool {
	if s.Phase() != PhaseSettled {
		return false
	}
	if name == "" {
		return true
	}
	want, _ := parseState(name)
	return s.State() == want
}

func parseState(name string) (State, bool) {
	for st := StateInitial; st <= StateText; st++ {
		if st.String() == name {
			return st, true
		}
	}
	return StateInitial, false
}
