package signal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool
	// Resizable lets the user resize the window. Every resize reseeds the
	// scene for the new canvas.
	Resizable bool
	// Debug enables debug logging on the scene.
	Debug bool
}

// Run opens a window and runs scene until the window is closed or Escape is
// pressed. A clean exit returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = scene.Size()
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetShowFPS(cfg.ShowFPS)
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	defer scene.Close()

	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
