package signal

// renderStats counts what one Render call did.
type renderStats struct {
	drawn  int
	culled int
	hidden int
}

// Render clears surf to the background and draws every visible point.
// Points further than one point radius outside the canvas are culled and
// fully transparent points are skipped; neither changes any point state.
func (s *Scene) Render(surf Surface) {
	s.lastRender = renderPoints(surf, s.points, s.cfg.Background, s.cfg.PointRadius)
}

func renderPoints(surf Surface, points []Point, bg Color, radius float64) renderStats {
	surf.Fill(bg)
	w, h := surf.Size()
	bounds := Rect{0, 0, float64(w), float64(h)}.Inset(-radius)

	var st renderStats
	for i := range points {
		p := &points[i]
		if p.Color.A <= 0 {
			st.hidden++
			continue
		}
		if !bounds.Contains(p.Pos.X, p.Pos.Y) {
			st.culled++
			continue
		}
		surf.FillCircle(p.Pos.X, p.Pos.Y, radius, p.Color)
		st.drawn++
	}
	return st
}
