package signal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshMs is how often the overlay text is redrawn.
const fpsRefreshMs = 500

// fpsOverlay is a small panel showing FPS, TPS and the current state. It is
// redrawn every ~0.5 seconds into its own image.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	op         ebiten.DrawImageOptions
}

// SetShowFPS toggles the FPS overlay in the top-left corner.
func (s *Scene) SetShowFPS(show bool) {
	s.showFPS = show
}

func (s *Scene) drawFPS(screen *ebiten.Image) {
	o := &s.fps
	if o.img == nil {
		// 140x48 is enough for three short lines of debug font.
		o.img = ebiten.NewImage(140, 48)
		o.lastUpdate = -fpsRefreshMs
	}
	if s.nowMs-o.lastUpdate >= fpsRefreshMs {
		o.lastUpdate = s.nowMs
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s (%d)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.state, len(s.points)))
	}
	screen.DrawImage(o.img, &o.op)
}
