package signal

// syntheticEvent is a single injected input event. Screen coordinates are
// used, matching what a screenshot shows.
type syntheticEvent struct {
	kind          syntheticKind
	x, y          float64
	width, height int
}

type syntheticKind uint8

const (
	syntheticClick syntheticKind = iota
	syntheticResize
)

// InjectClick queues a click at the given screen coordinates. The event is
// consumed on the next Advance and goes through the same path as a real
// mouse release, click gate included.
func (s *Scene) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectResize queues a canvas resize, as if the host window had changed.
func (s *Scene) InjectResize(width, height int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticResize, width: width, height: height})
}

// processInjected pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticClick:
		s.deliverClick(evt.x, evt.y, false)
	case syntheticResize:
		if err := s.Resize(evt.width, evt.height); err != nil {
			s.debugf("injected resize: %v", err)
		}
	}
	return true
}
