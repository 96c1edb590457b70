package signal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ClickContext describes a click or tap delivered to the scene.
type ClickContext struct {
	X, Y float64
	// Touch is true when the click came from a touch release.
	Touch bool
	// Advanced reports whether the click moved the cycle forward.
	Advanced bool
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	hs := h.scene.clickHandlers
	for i := range hs {
		if hs[i].id == h.id {
			h.scene.clickHandlers = append(hs[:i], hs[i+1:]...)
			return
		}
	}
}

// OnClick registers fn to be called for every click or tap inside the
// canvas, whether or not it advanced the cycle.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.nextHandlerID++
	s.clickHandlers = append(s.clickHandlers, clickHandler{id: s.nextHandlerID, fn: fn})
	return CallbackHandle{id: s.nextHandlerID, scene: s}
}

// processInput is called from Scene.Update to handle mouse, touch and key
// input. It returns ebiten.Termination when the user asks to quit.
func (s *Scene) processInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.deliverClick(float64(s.width)/2, float64(s.height)/2, false)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.deliverClick(float64(mx), float64(my), false)
	}

	s.touchBuf = inpututil.AppendJustReleasedTouchIDs(s.touchBuf[:0])
	for _, tid := range s.touchBuf {
		tx, ty := inpututil.TouchPositionInPreviousTick(tid)
		s.deliverClick(float64(tx), float64(ty), true)
	}
	return nil
}

// deliverClick forwards a click at (x, y) to the cycle and to registered
// handlers. Clicks outside the canvas are ignored.
func (s *Scene) deliverClick(x, y float64, touch bool) {
	if !(Rect{0, 0, float64(s.width), float64(s.height)}).Contains(x, y) {
		return
	}
	ctx := ClickContext{X: x, Y: y, Touch: touch}
	ctx.Advanced = s.Click()
	// Handlers may remove themselves.
	handlers := append([]clickHandler(nil), s.clickHandlers...)
	for _, h := range handlers {
		h.fn(ctx)
	}
}
