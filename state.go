package signal

// State identifies an animation phase. Each substantive state has its own
// layout; StateInitial only seeds the scene and hands over to its successor.
type State uint8

const (
	StateInitial State = iota // one-time setup, advances immediately
	StateCircle               // golden-angle spiral
	StateHexagon              // honeycomb of hexagons
	StateWave                 // travelling EKG spike
	StateText                 // rasterized text silhouette
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateCircle:
		return "circle"
	case StateHexagon:
		return "hexagon"
	case StateWave:
		return "wave"
	case StateText:
		return "text"
	default:
		return "unknown"
	}
}

// Cycle is the ordered ring of substantive states a scene loops through.
// StateInitial is never a member; its successor is States[0].
type Cycle struct {
	States []State
	// ClickGate makes the scene clickable once the last state of the ring has
	// settled. A click then advances exactly one step.
	ClickGate bool
}

// ClassicCycle loops circle → wave → text and becomes clickable after text.
var ClassicCycle = Cycle{
	States:    []State{StateCircle, StateWave, StateText},
	ClickGate: true,
}

// HexCycle loops hexagon → wave → text without any click gate.
var HexCycle = Cycle{
	States: []State{StateHexagon, StateWave, StateText},
}

// Len returns the number of substantive states in the ring.
func (c Cycle) Len() int {
	return len(c.States)
}

// First returns the first substantive state, or StateInitial for an empty ring.
func (c Cycle) First() State {
	if len(c.States) == 0 {
		return StateInitial
	}
	return c.States[0]
}

// Last returns the final state of the ring, the one that arms the click gate.
func (c Cycle) Last() State {
	if len(c.States) == 0 {
		return StateInitial
	}
	return c.States[len(c.States)-1]
}

// Next returns the successor of s. States outside the ring, StateInitial
// included, lead to the first state.
func (c Cycle) Next(s State) State {
	for i, st := range c.States {
		if st == s {
			return c.States[(i+1)%len(c.States)]
		}
	}
	return c.First()
}
