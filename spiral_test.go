package signal

import (
	"math"
	"testing"
)

func TestSpiralRadiusMonotone(t *testing.T) {
	const cx, cy = 400.0, 200.0
	center := Vec2{cx, cy}
	prev := -1.0
	for i := 0; i < 5000; i++ {
		r := SpiralPoint(i, 6, cx, cy).Dist(center)
		if r < prev {
			t.Fatalf("radius decreased at i=%d: %v < %v", i, r, prev)
		}
		prev = r
	}
}

func TestSpiralPointClosedForm(t *testing.T) {
	p := SpiralPoint(10, 6, 0, 0)
	r := 6 * math.Sqrt(10)
	a := 10 * math.Pi * (3 - math.Sqrt(5))
	if math.Abs(p.X-r*math.Cos(a)) > 1e-9 || math.Abs(p.Y-r*math.Sin(a)) > 1e-9 {
		t.Errorf("SpiralPoint(10) = %+v", p)
	}
	if SpiralPoint(0, 6, 3, 4) != (Vec2{3, 4}) {
		t.Error("index 0 should sit on the center")
	}
}

func TestSpiralSpacingFitted(t *testing.T) {
	const w, h, n = 1000.0, 600.0, 4000
	k := spiralSpacing(0, n, w, h)
	outer := SpiralPoint(n-1, k, 0, 0).Dist(Vec2{})
	if math.Abs(outer-spiralFill*h) > 1e-6 {
		t.Errorf("outermost radius = %v, want %v", outer, spiralFill*h)
	}
	if got := spiralSpacing(6, n, w, h); got != 6 {
		t.Errorf("explicit spacing = %v, want 6", got)
	}
	if got := spiralSpacing(0, 1, w, h); got != 0 {
		t.Errorf("single point spacing = %v, want 0", got)
	}
}
