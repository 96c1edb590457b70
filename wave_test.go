package signal

import (
	"math"
	"testing"
)

func TestWaveSegments(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{300, 50},
		{500, 50},
		{809, 80},
		{1000, 100},
		{2560, 100},
	}
	for _, tt := range tests {
		if got := WaveSegments(tt.width); got != tt.want {
			t.Errorf("WaveSegments(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestSpikePositionPeriodic(t *testing.T) {
	const segments = 80
	for _, clock := range []float64{0, 1234, 4999} {
		a := SpikePosition(clock, segments)
		b := SpikePosition(clock+3*WavePeriodMs, segments)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("SpikePosition(%v) = %v, one period later %v", clock, a, b)
		}
		if a < 0 || a >= segments {
			t.Errorf("SpikePosition(%v) = %v, outside [0, %d)", clock, a, segments)
		}
	}
	if got := SpikePosition(2500, segments); got != 40 {
		t.Errorf("SpikePosition(2500) = %v, want 40", got)
	}
}

func TestWaveSpikeMaximalAtNearestSegment(t *testing.T) {
	const w, h = 800.0, 400.0
	segments := WaveSegments(w)
	for _, clock := range []float64{0, 1234, 2500, 3333, 4900, 7777} {
		spike := SpikePosition(clock, segments)
		nearest := int(math.Round(spike))

		best, bestDisp := -1, math.Inf(-1)
		for i := 0; i < segments; i++ {
			wp := WaveSample(i, segments, clock, w, h)
			if wp.Displacement > bestDisp {
				best, bestDisp = i, wp.Displacement
			}
		}
		if best != nearest {
			t.Errorf("clock %v: max displacement at segment %d, want %d (spike %.3f)", clock, best, nearest, spike)
		}
	}
}

func TestWaveSampleDeterministicAndInCanvas(t *testing.T) {
	const w, h, n = 1200.0, 500.0, 3000
	for i := 0; i < n; i += 7 {
		a := WaveSample(i, n, 1800, w, h)
		b := WaveSample(i, n, 1800, w, h)
		if a != b {
			t.Fatalf("WaveSample(%d) not deterministic", i)
		}
		if a.Pos.X < w*waveMargin-1e-9 || a.Pos.X > w*(1-waveMargin)+1e-9 {
			t.Fatalf("point %d x = %v outside margins", i, a.Pos.X)
		}
		if a.Pos.Y < 0 || a.Pos.Y > h {
			t.Fatalf("point %d y = %v outside canvas", i, a.Pos.Y)
		}
		if a.Intensity < 0 || a.Intensity > 1 {
			t.Fatalf("point %d intensity %v", i, a.Intensity)
		}
	}
}

func TestEKGShapeRegions(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"R peak", 0, 1},
		{"R flank", 0.5, 0.75},
		{"S dip", 1.5, -0.15},
		{"T bump", 2.75, 0.2},
	}
	for _, tt := range tests {
		if got := ekgShape(tt.d, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: ekgShape(%v) = %v, want %v", tt.name, tt.d, got, tt.want)
		}
	}
	for _, ripple := range []float64{0, 1, 2, 3, 4} {
		if got := ekgShape(10, ripple); math.Abs(got) > 0.02 {
			t.Errorf("baseline ripple %v = %v, exceeds 0.02", ripple, got)
		}
	}
}
