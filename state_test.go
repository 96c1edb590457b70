package signal

import "testing"

func TestCycleNext(t *testing.T) {
	tests := []struct {
		name  string
		cycle Cycle
		from  State
		want  State
	}{
		{"classic initial", ClassicCycle, StateInitial, StateCircle},
		{"classic circle", ClassicCycle, StateCircle, StateWave},
		{"classic wave", ClassicCycle, StateWave, StateText},
		{"classic text wraps", ClassicCycle, StateText, StateCircle},
		{"classic foreign state", ClassicCycle, StateHexagon, StateCircle},
		{"hex initial", HexCycle, StateInitial, StateHexagon},
		{"hex text wraps", HexCycle, StateText, StateHexagon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cycle.Next(tt.from); got != tt.want {
				t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestCycleReturnsToFirstAfterLen(t *testing.T) {
	for _, c := range []Cycle{ClassicCycle, HexCycle} {
		s := c.Next(StateInitial)
		first := s
		for i := 0; i < c.Len(); i++ {
			s = c.Next(s)
		}
		if s != first {
			t.Errorf("after %d advances got %s, want %s", c.Len(), s, first)
		}
	}
}

func TestEmptyCycle(t *testing.T) {
	var c Cycle
	if c.First() != StateInitial || c.Last() != StateInitial || c.Next(StateText) != StateInitial {
		t.Error("empty cycle should stay at StateInitial")
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateInitial: "initial",
		StateCircle:  "circle",
		StateHexagon: "hexagon",
		StateWave:    "wave",
		StateText:    "text",
		State(42):    "unknown",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}

func TestParseStateRoundTrip(t *testing.T) {
	for st := StateInitial; st <= StateText; st++ {
		got, ok := parseState(st.String())
		if !ok || got != st {
			t.Errorf("parseState(%q) = %s, %v", st.String(), got, ok)
		}
	}
	if _, ok := parseState("spiral"); ok {
		t.Error("parseState accepted an unknown name")
	}
}
