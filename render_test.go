package signal

import (
	"image/color"
	"testing"
)

type fillCall struct {
	x, y, r float64
	c       Color
}

// recordSurface is a Surface that records what was drawn.
type recordSurface struct {
	w, h    int
	cleared []Color
	circles []fillCall
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }
func (s *recordSurface) Fill(c Color) { s.cleared = append(s.cleared, c) }
func (s *recordSurface) FillCircle(x, y, r float64, c Color) {
	s.circles = append(s.circles, fillCall{x, y, r, c})
}

func TestRenderPointsCullsAndHides(t *testing.T) {
	opaque := Color{1, 0, 0, 1}
	points := []Point{
		{Pos: Vec2{10, 10}, Color: opaque},
		{Pos: Vec2{-1, 50}, Color: opaque},     // within one radius of the edge
		{Pos: Vec2{-100, -100}, Color: opaque}, // far outside
		{Pos: Vec2{50, 50}, Color: ColorTransparent},
		{Pos: Vec2{99, 99}, Color: Color{0, 0, 1, 0.5}},
	}
	surf := &recordSurface{w: 100, h: 100}
	st := renderPoints(surf, points, ColorWhite, 2)

	if len(surf.cleared) != 1 || surf.cleared[0] != ColorWhite {
		t.Errorf("background fills = %v, want one white fill", surf.cleared)
	}
	if st.drawn != 3 || st.culled != 1 || st.hidden != 1 {
		t.Errorf("stats = %+v, want drawn 3 culled 1 hidden 1", st)
	}
	if len(surf.circles) != 3 {
		t.Fatalf("drew %d circles, want 3", len(surf.circles))
	}
	if c := surf.circles[0]; c.x != 10 || c.y != 10 || c.r != 2 || c.c != opaque {
		t.Errorf("first circle = %+v", c)
	}
}

func TestRenderDoesNotMutatePoints(t *testing.T) {
	s := newTestScene(t, testConfig())
	s.Advance(0)
	s.Advance(40)
	before := make([]Point, len(s.Points()))
	copy(before, s.Points())

	s.Render(&recordSurface{w: 400, h: 300})
	for i := range before {
		if s.Points()[i] != before[i] {
			t.Fatalf("Render changed point %d", i)
		}
	}
	if s.lastRender.drawn+s.lastRender.culled+s.lastRender.hidden != len(before) {
		t.Errorf("render stats %+v do not cover %d points", s.lastRender, len(before))
	}
}

func TestGGSurfaceDrawsDisc(t *testing.T) {
	surf := NewGGSurface(40, 30)
	if w, h := surf.Size(); w != 40 || h != 30 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	surf.Fill(ColorWhite)
	surf.FillCircle(20, 15, 4, Color{1, 0, 0, 1})

	img := surf.Image()
	center := color.RGBAModel.Convert(img.At(20, 15)).(color.RGBA)
	if center.R < 250 || center.G > 5 || center.B > 5 {
		t.Errorf("center pixel = %+v, want red", center)
	}
	corner := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if corner.R < 250 || corner.G < 250 || corner.B < 250 {
		t.Errorf("corner pixel = %+v, want white", corner)
	}
}
